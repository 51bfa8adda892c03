package inventory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/logger"
	"github.com/georgemunganga/stockroom-api/internal/validate"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api", h.listItems)
	r.Get("/api/", h.listItems)
	r.Get("/api/product/{id}", h.getItem)
	r.Post("/api/product", h.listItemsByIDs)
	r.Post("/api/product/", h.listItemsByIDs)
}

type message struct {
	Message string `json:"message"`
}

type itemResponse struct {
	Message string      `json:"message"`
	Value   *ItemDetail `json:"value"`
}

type idsRequest struct {
	Keys json.RawMessage `json:"keys"`
}

var serverError = message{Message: "Server Error"}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		logger.WithRequestID(h.log, r).Error("list inventory failed", zap.Error(err))
		respond(w, http.StatusInternalServerError, serverError)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ProductID(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, message{Message: "Invalid product id."})
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			respond(w, http.StatusNotFound, message{Message: "Product Not Found."})
			return
		}
		logger.WithRequestID(h.log, r).Error("get inventory item failed", zap.Int64("id", id), zap.Error(err))
		respond(w, http.StatusInternalServerError, serverError)
		return
	}
	respond(w, http.StatusOK, itemResponse{Message: "Received", Value: item})
}

func (h *Handler) listItemsByIDs(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, message{Message: "error with array"})
		return
	}
	ids, err := validate.IDs(req.Keys)
	if err != nil {
		respond(w, http.StatusBadRequest, message{Message: "error with array"})
		return
	}

	items, err := h.service.ListItemsByIDs(r.Context(), ids)
	if err != nil {
		logger.WithRequestID(h.log, r).Error("list inventory by ids failed", zap.Int("count", len(ids)), zap.Error(err))
		respond(w, http.StatusInternalServerError, serverError)
		return
	}
	respond(w, http.StatusOK, items)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
