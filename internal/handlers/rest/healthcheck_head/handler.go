package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler - readiness. Во время остановки отдаёт 503, чтобы балансировщик
// перестал присылать запросы, пока дорабатывают начатые.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{
		draining: draining,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if h.draining.Load() {
		w.Header().Set("Connection", "close")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
