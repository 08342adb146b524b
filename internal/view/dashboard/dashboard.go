package dashboard

import (
	"context"
	"time"

	"storefront/internal/entities"
	"storefront/internal/view"
)

// Dashboard держит экземпляры экранов админки по X-View-ID.
// Каждый экземпляр владеет своим состоянием независимо от остальных.
type Dashboard struct {
	customers      *view.Registry[*CustomerList]
	customerOrders *view.Registry[*CustomerOrders]
	orderBoards    *view.Registry[*OrderBoard]
	orderService   OrderService
}

func New(customers CustomerService, orders OrderService, idleTTL time.Duration) *Dashboard {
	return &Dashboard{
		customers: view.NewRegistry(idleTTL, func() *CustomerList {
			return NewCustomerList(customers)
		}),
		customerOrders: view.NewRegistry(idleTTL, func() *CustomerOrders {
			return NewCustomerOrders(customers)
		}),
		orderBoards: view.NewRegistry(idleTTL, func() *OrderBoard {
			return NewOrderBoard(orders)
		}),
		orderService: orders,
	}
}

func (d *Dashboard) LoadCustomers(ctx context.Context, viewID string) (view.State[entities.Customer], error) {
	return d.customers.Acquire(viewID).Load(ctx)
}

func (d *Dashboard) LoadCustomerOrders(ctx context.Context, viewID, customerID string) (view.State[entities.Order], error) {
	return d.customerOrders.Acquire(viewID).Load(ctx, customerID)
}

func (d *Dashboard) LoadOrders(ctx context.Context, viewID string, filter entities.OrderFilter) (view.State[entities.Order], error) {
	return d.orderBoards.Acquire(viewID).Load(ctx, filter)
}

// UpdateOrderStatus применяет смену статуса к экрану viewID, если он открыт.
// Без открытого экрана статус меняется только на бэкенде.
func (d *Dashboard) UpdateOrderStatus(ctx context.Context, viewID, orderID string, status entities.OrderStatusType) (view.State[entities.Order], error) {
	board, ok := d.orderBoards.Lookup(viewID)
	if !ok {
		board = NewOrderBoard(d.orderService)
	}
	return board.UpdateStatus(ctx, orderID, status)
}

// CloseView закрывает все экраны с этим id. Их незавершённые загрузки отбрасываются.
func (d *Dashboard) CloseView(viewID string) {
	d.customers.Release(viewID)
	d.customerOrders.Release(viewID)
	d.orderBoards.Release(viewID)
}

func (d *Dashboard) EvictIdle() int {
	return d.customers.EvictIdle() + d.customerOrders.EvictIdle() + d.orderBoards.EvictIdle()
}

func (d *Dashboard) OpenViews() int {
	return d.customers.Len() + d.customerOrders.Len() + d.orderBoards.Len()
}
