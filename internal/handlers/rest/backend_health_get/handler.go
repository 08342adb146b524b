package backend_health_get

import (
	"errors"
	"net/http"

	"storefront/internal/gateway/rest/backend"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/view/dashboard"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "backend_health_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := dto.BackendHealth{Status: "ok"}

	if err := h.service.Health(r.Context()); err != nil {
		h.log.Warn("backend health check failed", logger.NewField("error", err))

		body.Message = dashboard.MessageBackendUnreachable
		if errors.Is(err, backend.ErrBackendMisconfigured) {
			status = http.StatusBadGateway
			body.Status = "misconfigured"
		} else {
			status = http.StatusServiceUnavailable
			body.Status = "unreachable"
		}
	}

	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
