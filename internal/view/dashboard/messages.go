package dashboard

import (
	"errors"

	"storefront/internal/gateway/rest/backend"
	"storefront/pkg/envelope"
	"storefront/pkg/restclient"
)

var ErrDiscarded = errors.New("view was closed or switched to another target, result discarded")

const (
	MessageBackendUnreachable = "Backend is not reachable. Check BACKEND_BASE_URL and that backend is deployed and accessible."
	MessageUpdateFailed       = "Failed to update order status"

	EmptyCustomers      = "No customers found."
	EmptyCustomerOrders = "No orders found for this customer."
	EmptyOrders         = "No orders found. Orders will appear here after customers place them."
)

// describe переводит ошибку загрузки в сообщение для пользователя и диагностику.
func describe(err error, what string) (message, diagnostic string) {
	if errors.Is(err, backend.ErrBackendUnreachable) || errors.Is(err, backend.ErrBackendMisconfigured) {
		return MessageBackendUnreachable, err.Error()
	}

	var shapeErr *envelope.ShapeError
	if errors.As(err, &shapeErr) {
		return "Unexpected response from backend when fetching " + what + ".", shapeErr.Diagnostic
	}

	var reqErr *restclient.RequestError
	if errors.As(err, &reqErr) {
		return "Failed to load " + what + ": " + reqErr.Message, err.Error()
	}

	return "Failed to load " + what + ": " + err.Error(), ""
}
