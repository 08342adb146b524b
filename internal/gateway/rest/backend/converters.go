package backend

import (
	"encoding/json"
	"strings"
	"time"

	"storefront/internal/entities"
)

func toCustomerList(dtos []customerDTO) []entities.Customer {
	customers := make([]entities.Customer, 0, len(dtos))
	for _, dto := range dtos {
		customers = append(customers, toCustomer(dto))
	}
	return customers
}

func toCustomer(dto customerDTO) entities.Customer {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = strings.TrimSpace(dto.FirstName + " " + dto.LastName)
	}

	return entities.Customer{
		ID:         firstNonEmpty(string(dto.ID), string(dto.MongoID)),
		Name:       name,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Address:    toAddress(dto.Address),
		OrderCount: firstCount(dto.TotalOrders, dto.OrderCount),
		CreatedAt:  firstTime(dto.CreatedAt.Time(), dto.CreatedAtCamel.Time()),
	}
}

func toAddress(dto addressDTO) entities.Address {
	if dto.postal == nil {
		return entities.Address{Text: dto.text}
	}

	p := dto.postal
	return entities.Address{Postal: &entities.PostalAddress{
		Complex:  p.Complex,
		Street:   firstNonEmpty(p.Street, p.Line1),
		Town:     p.Town,
		City:     p.City,
		Province: firstNonEmpty(p.Province, p.State),
		Zip:      firstNonEmpty(p.Zip, p.PostalCode),
	}}
}

func toOrderList(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toOrder(dto))
	}
	return orders
}

func toOrder(dto orderDTO) entities.Order {
	customerID := string(dto.CustomerID)
	customerName := dto.CustomerName
	if dto.Customer != nil {
		customerID = firstNonEmpty(customerID, string(dto.Customer.ID))
		customerName = firstNonEmpty(customerName, dto.Customer.Name)
	}

	items := make([]entities.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, entities.LineItem{
			ProductID: firstNonEmpty(string(item.ProductID), string(item.ID)),
			Title:     item.Title,
			UnitPrice: item.Price.Decimal(),
			Quantity:  item.Quantity,
		})
	}

	return entities.Order{
		ID:               firstNonEmpty(string(dto.ID), string(dto.MongoID)),
		CustomerID:       customerID,
		CustomerName:     firstNonEmpty(customerName, dto.Name),
		Total:            dto.Total.Decimal(),
		Status:           entities.OrderStatusType(dto.Status),
		CreatedAt:        firstTime(dto.CreatedAt.Time(), dto.CreatedAtCamel.Time()),
		Items:            items,
		PaymentReference: dto.PaymentReference,
	}
}

func toNewOrderRequest(order entities.NewOrder) newOrderRequest {
	items := make([]cartItemRequest, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, cartItemRequest{
			ID:       item.ID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	a := order.Address
	return newOrderRequest{
		Email: order.Email,
		Name:  order.Name,
		Phone: order.Phone,
		Address: postalRequest{
			Complex:  a.Complex,
			Street:   a.Street,
			Town:     a.Town,
			City:     a.City,
			Province: a.Province,
			Zip:      a.Zip,
		},
		Items:            items,
		Total:            json.Number(order.Total.StringFixed(2)),
		PaymentReference: order.PaymentReference,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstCount(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstTime(values ...time.Time) time.Time {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}
