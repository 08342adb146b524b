package orders_get

import (
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/order"
	"storefront/internal/view"
	"storefront/internal/view/dashboard"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	views   Views
	filters []string
}

func New(log handlerLogger, views Views) *Handler {
	filters := []string{order.FilterAll}
	for _, status := range entities.OrderStatuses {
		filters = append(filters, status.String())
	}

	return &Handler{
		log:     log.With(logger.NewField("handler", "orders_get")),
		views:   views,
		filters: filters,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := order.ParseFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.write(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	viewID := respond.ViewID(r)

	state, err := h.views.LoadOrders(r.Context(), viewID, filter)
	if err != nil {
		if errors.Is(err, dashboard.ErrDiscarded) {
			h.log.Debug("orders result discarded", logger.NewField("view_id", viewID))
			h.write(w, http.StatusConflict, dto.Error{Error: err.Error()})
			return
		}
		h.log.Error("load orders", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if state.Phase == view.PhaseFailed {
		h.log.Warn("orders view failed",
			logger.NewField("message", state.Message),
			logger.NewField("diagnostic", state.Diagnostic),
		)
	}

	h.write(w, http.StatusOK, dto.OrderBoard{
		View:    dto.FromView(viewID, state, dto.FromOrder, dashboard.EmptyOrders),
		Filters: h.filters,
	})
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
