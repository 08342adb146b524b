package checkout_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "checkout_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session"]

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrSessionNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.log.Error("get checkout session",
			logger.NewField("session_id", sessionID),
			logger.NewField("error", err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := respond.JSON(w, http.StatusOK, dto.FromSession(session)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
