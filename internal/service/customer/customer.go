package customer

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/entities"
)

type Customer struct {
	gateway Gateway
}

func New(gateway Gateway) *Customer {
	return &Customer{
		gateway: gateway,
	}
}

// ListCustomers сначала проверяет health, чтобы отличить недоступный
// бэкенд от пустого списка.
func (s *Customer) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	if err := s.gateway.Health(ctx); err != nil {
		return []entities.Customer{}, fmt.Errorf("list customers: %w", err)
	}

	customers, err := s.gateway.ListCustomers(ctx)
	if err != nil {
		return []entities.Customer{}, fmt.Errorf("list customers: %w", err)
	}

	return customers, nil
}

func (s *Customer) ListCustomerOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return []entities.Order{}, ErrInvalidCustomerID
	}

	orders, err := s.gateway.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return []entities.Order{}, fmt.Errorf("list orders of customer %s: %w", customerID, err)
	}

	return orders, nil
}
