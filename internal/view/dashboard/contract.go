//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"

	"storefront/internal/entities"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
}

type OrderService interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
