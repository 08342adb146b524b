package customer_orders_get

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/customer"
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
		log:   log.With(logger.NewField("handler", "customer_orders_get")),
		views: views,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID := strings.TrimSpace(mux.Vars(r)["id"])
	if customerID == "" {
		h.write(w, http.StatusBadRequest, dto.Error{Error: customer.ErrInvalidCustomerID.Error()})
		return
	}
	viewID := respond.ViewID(r)

	state, err := h.views.LoadCustomerOrders(r.Context(), viewID, customerID)
	if err != nil {
		if errors.Is(err, dashboard.ErrDiscarded) {
			h.log.Debug("customer orders result discarded",
				logger.NewField("view_id", viewID),
				logger.NewField("customer_id", customerID),
			)
			h.write(w, http.StatusConflict, dto.Error{Error: err.Error()})
			return
		}
		h.log.Error("load customer orders", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if state.Phase == view.PhaseFailed {
		h.log.Warn("customer orders view failed",
			logger.NewField("customer_id", customerID),
			logger.NewField("message", state.Message),
			logger.NewField("diagnostic", state.Diagnostic),
		)
	}

	h.write(w, http.StatusOK, dto.FromView(viewID, state, dto.FromOrder, dashboard.EmptyCustomerOrders))
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
