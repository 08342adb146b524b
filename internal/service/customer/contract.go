//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"storefront/internal/entities"
)

type Gateway interface {
	Health(ctx context.Context) error
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error)
}
