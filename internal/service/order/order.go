package order

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/entities"
)

// FilterAll - значение фильтра для всех заказов.
const FilterAll = "all"

type Service struct {
	gateway Gateway
}

func New(gateway Gateway) *Service {
	return &Service{
		gateway: gateway,
	}
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsKnown() {
		return []entities.Order{}, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}

	if err := s.gateway.Health(ctx); err != nil {
		return []entities.Order{}, fmt.Errorf("list orders: %w", err)
	}

	orders, err := s.gateway.ListOrders(ctx, filter)
	if err != nil {
		return []entities.Order{}, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus меняет статус на бэкенде. Существование заказа
// проверяет бэкенд, здесь только статус из перечисления.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	updated, err := s.gateway.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", orderID, err)
	}

	return updated, nil
}

// ParseFilter: "" и "all" - все заказы, иначе один из статусов.
func ParseFilter(raw string) (entities.OrderFilter, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == FilterAll {
		return entities.OrderFilter{}, nil
	}

	status := entities.OrderStatusType(value)
	if !status.IsKnown() {
		return entities.OrderFilter{}, fmt.Errorf("%w: %s", ErrInvalidStatus, raw)
	}
	return entities.OrderFilter{Status: &status}, nil
}
