//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"storefront/internal/entities"
)

type Gateway interface {
	Health(ctx context.Context) error
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
