package customers_get

import (
	"errors"
	"net/http"

	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/view"
	"storefront/internal/view/dashboard"
	"storefront/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	views Views
}

func New(log handlerLogger, views Views) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "customers_get")),
		views: views,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewID := respond.ViewID(r)

	state, err := h.views.LoadCustomers(r.Context(), viewID)
	if err != nil {
		if errors.Is(err, dashboard.ErrDiscarded) {
			h.log.Debug("customers result discarded", logger.NewField("view_id", viewID))
			h.write(w, http.StatusConflict, dto.Error{Error: err.Error()})
			return
		}
		h.log.Error("load customers", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if state.Phase == view.PhaseFailed {
		h.log.Warn("customers view failed",
			logger.NewField("message", state.Message),
			logger.NewField("diagnostic", state.Diagnostic),
		)
	}

	h.write(w, http.StatusOK, dto.FromView(viewID, state, dto.FromCustomer, dashboard.EmptyCustomers))
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
