package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
)

// Middleware отклоняет новые запросы, когда сервер уже гасит ongoingCtx.
// Начатые запросы дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					_ = respond.JSON(w, http.StatusServiceUnavailable, dto.Error{Error: "service is shutting down"})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
