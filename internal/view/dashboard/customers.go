package dashboard

import (
	"context"
	"sync"

	"storefront/internal/entities"
	"storefront/internal/view"
)

// CustomerList - экран списка клиентов.
type CustomerList struct {
	customers CustomerService
	guard     view.Guard

	mu    sync.Mutex
	state view.State[entities.Customer]
}

func NewCustomerList(customers CustomerService) *CustomerList {
	return &CustomerList{
		customers: customers,
		state:     view.Idle[entities.Customer](),
	}
}

func (v *CustomerList) Load(ctx context.Context) (view.State[entities.Customer], error) {
	ticket := v.guard.Begin("")
	v.update(func(s view.State[entities.Customer]) view.State[entities.Customer] { return s.Started("") })

	customers, err := v.customers.ListCustomers(ctx)

	if !v.guard.Accept(ticket) {
		return v.State(), ErrDiscarded
	}

	next := v.update(func(s view.State[entities.Customer]) view.State[entities.Customer] {
		if err != nil {
			return s.Failed(describe(err, "customers"))
		}
		return s.Succeeded(customers)
	})
	return next, nil
}

func (v *CustomerList) State() view.State[entities.Customer] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CustomerList) Close() {
	v.guard.Close()
}

func (v *CustomerList) update(fn func(view.State[entities.Customer]) view.State[entities.Customer]) view.State[entities.Customer] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.state
}

// CustomerOrders - история заказов выбранного клиента. Target - id клиента.
type CustomerOrders struct {
	customers CustomerService
	guard     view.Guard

	mu    sync.Mutex
	state view.State[entities.Order]
}

func NewCustomerOrders(customers CustomerService) *CustomerOrders {
	return &CustomerOrders{
		customers: customers,
		state:     view.Idle[entities.Order](),
	}
}

func (v *CustomerOrders) Load(ctx context.Context, customerID string) (view.State[entities.Order], error) {
	ticket := v.guard.Begin(customerID)
	v.update(func(s view.State[entities.Order]) view.State[entities.Order] { return s.Started(customerID) })

	orders, err := v.customers.ListCustomerOrders(ctx, customerID)

	// пока ждали ответ, могли выбрать другого клиента
	if !v.guard.Accept(ticket) {
		return v.State(), ErrDiscarded
	}

	next := v.update(func(s view.State[entities.Order]) view.State[entities.Order] {
		if err != nil {
			return s.Failed(describe(err, "customer orders"))
		}
		return s.Succeeded(orders)
	})
	return next, nil
}

func (v *CustomerOrders) State() view.State[entities.Order] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CustomerOrders) Close() {
	v.guard.Close()
}

func (v *CustomerOrders) update(fn func(view.State[entities.Order]) view.State[entities.Order]) view.State[entities.Order] {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = fn(v.state)
	return v.state
}
