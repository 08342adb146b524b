package dashboard

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/entities"
	"storefront/internal/service/order"
	"storefront/internal/view"
)

// OrderBoard - экран управления заказами: фильтр по статусу и смена статуса.
type OrderBoard struct {
	orders OrderService
	guard  view.Guard

	mu    sync.Mutex
	state view.State[entities.Order]
}

func NewOrderBoard(orders OrderService) *OrderBoard {
	return &OrderBoard{
		orders: orders,
		state:  view.Idle[entities.Order](),
	}
}

func filterTarget(filter entities.OrderFilter) string {
	if filter.Status == nil {
		return order.FilterAll
	}
	return filter.Status.String()
}

func (v *OrderBoard) Load(ctx context.Context, filter entities.OrderFilter) (view.State[entities.Order], error) {
	target := filterTarget(filter)

	ticket := v.guard.Begin(target)
	v.update(func(s view.State[entities.Order]) view.State[entities.Order] { return s.Started(target) })

	orders, err := v.orders.ListOrders(ctx, filter)

	if !v.guard.Accept(ticket) {
		return v.State(), ErrDiscarded
	}

	next := v.update(func(s view.State[entities.Order]) view.State[entities.Order] {
		if err != nil {
			return s.Failed(describe(err, "orders"))
		}
		return s.Succeeded(orders)
	})
	return next, nil
}

// UpdateStatus меняет статус на бэкенде и только после подтверждения
// обновляет статус этого заказа в локальном списке. Повторной загрузки нет.
// При ошибке локальный список не меняется.
func (v *OrderBoard) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (view.State[entities.Order], error) {
	if _, err := v.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return v.State(), fmt.Errorf("%s: %w", MessageUpdateFailed, err)
	}

	modify := entities.OrderModify{Status: &status}
	next := v.update(func(s view.State[entities.Order]) view.State[entities.Order] {
		applied, _ := s.MutationApplied(
			func(o entities.Order) bool { return o.ID == orderID },
			modify.Apply,
		)
		return applied
	})
	return next, nil
}

func (v *OrderBoard) State() view.State[entities.Order] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *OrderBoard) Close() {
	v.guard.Close()
}

func (v *OrderBoard) update(fn func(view.State[entities.Order]) view.State[entities.Order]) view.State[entities.Order] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.state
}
