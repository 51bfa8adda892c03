package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler reports liveness and process uptime.
type Handler struct {
	started time.Time
	now     func() time.Time
}

// NewHandler returns a Handler measuring uptime from started.
func NewHandler(started time.Time) *Handler {
	return &Handler{started: started, now: time.Now}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.health)
}

type status struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status{
		Status: "OK",
		Uptime: h.now().Sub(h.started).Seconds(),
	})
}
