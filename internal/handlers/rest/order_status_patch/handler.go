package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/order"
	"storefront/internal/view/dashboard"
	"storefront/pkg/logger"
	"storefront/pkg/restclient"
)

type Handler struct {
	log   handlerLogger
	views Views
}

func New(log handlerLogger, views Views) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "order_status_patch")),
		views: views,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(mux.Vars(r)["id"])

	var req dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, dto.Error{Error: "invalid request body", Message: dashboard.MessageUpdateFailed})
		return
	}
	status := entities.OrderStatusType(strings.ToLower(strings.TrimSpace(req.Status)))
	viewID := respond.ViewID(r)

	state, err := h.views.UpdateOrderStatus(r.Context(), viewID, orderID, status)
	if err != nil {
		h.writeError(w, orderID, err)
		return
	}

	h.log.Info("order status updated",
		logger.NewField("order_id", orderID),
		logger.NewField("status", status.String()),
	)

	response := dto.OrderStatusUpdateResponse{
		ID:     orderID,
		Status: status.String(),
	}
	if viewID != "" {
		board := dto.FromView(viewID, state, dto.FromOrder, dashboard.EmptyOrders)
		response.View = &board
	}

	h.write(w, http.StatusOK, response)
}

func (h *Handler) writeError(w http.ResponseWriter, orderID string, err error) {
	body := dto.Error{Error: err.Error(), Message: dashboard.MessageUpdateFailed}

	var reqErr *restclient.RequestError
	switch {
	case errors.Is(err, order.ErrInvalidOrderID), errors.Is(err, order.ErrInvalidStatus):
		h.write(w, http.StatusBadRequest, body)
	case errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound:
		h.write(w, http.StatusNotFound, body)
	case errors.Is(err, restclient.ErrHTTPStatus), errors.Is(err, restclient.ErrTransport):
		h.log.Warn("update order status",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
		h.write(w, http.StatusBadGateway, body)
	default:
		h.log.Error("update order status",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
