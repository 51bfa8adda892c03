package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/logger"
	"github.com/georgemunganga/stockroom-api/internal/validate"
)

type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/login", h.login)
	router.Post("/api/login/", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	if err := validate.Credentials(req.Username, req.Password); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Username and Password field is empty."})
		return
	}

	log := logger.WithRequestID(h.log, r).With(zap.String("username", req.Username))

	err := h.service.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		log.Info("login succeeded")
		respond(w, http.StatusOK, map[string]string{"message": "Login successful."})
	case apperr.CodeOf(err) == CodeUnknownUser:
		log.Info("login rejected", zap.String("reason", CodeUnknownUser))
		respond(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username and password."})
	case apperr.CodeOf(err) == CodePasswordMismatch:
		log.Info("login rejected", zap.String("reason", CodePasswordMismatch))
		respond(w, http.StatusUnauthorized, map[string]string{"message": "Username or password were incorrect."})
	default:
		log.Error("login lookup failed", zap.Error(err))
		respond(w, http.StatusInternalServerError, map[string]string{"error": "Server error."})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
