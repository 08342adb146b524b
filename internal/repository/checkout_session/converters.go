package checkout_session

import (
	"fmt"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

func FromDomain(s *entities.CheckoutSession) *SessionRedis {
	if s == nil {
		return nil
	}

	model := &SessionRedis{
		ID:    s.ID,
		State: s.State.String(),
		Form: FormRedis{
			Email:     s.Form.Email,
			Phone:     s.Form.Phone,
			FirstName: s.Form.FirstName,
			LastName:  s.Form.LastName,
			Address:   AddressRedis(s.Form.Address),
		},
		Cart: make([]CartItemRedis, 0, len(s.Cart)),
		Payment: PaymentRedis{
			PublicKey:   s.Payment.PublicKey,
			Email:       s.Payment.Email,
			Amount:      s.Payment.Amount.String(),
			AmountMinor: s.Payment.AmountMinor,
			Currency:    s.Payment.Currency,
			Reference:   s.Payment.Reference,
		},
		PaymentReference: s.PaymentReference,
		Message:          s.Message,
		History:          make([]string, 0, len(s.History)),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	for _, item := range s.Cart {
		model.Cart = append(model.Cart, CartItemRedis(item))
	}
	for _, f := range s.Payment.CustomFields {
		model.Payment.CustomFields = append(model.Payment.CustomFields, CustomFieldRedis(f))
	}
	for _, state := range s.History {
		model.History = append(model.History, state.String())
	}
	if s.Order != nil {
		model.Order = fromDomainOrder(s.Order)
	}

	return model
}

func fromDomainOrder(o *entities.Order) *OrderRedis {
	model := &OrderRedis{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		Total:            o.Total.String(),
		Status:           o.Status.String(),
		CreatedAt:        o.CreatedAt,
		PaymentReference: o.PaymentReference,
	}
	for _, item := range o.Items {
		model.Items = append(model.Items, LineItemRedis{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
		})
	}
	return model
}

func ToDomain(m *SessionRedis) (*entities.CheckoutSession, error) {
	if m == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(m.Payment.Amount)
	if err != nil {
		return nil, fmt.Errorf("session %s payment amount: %w", m.ID, err)
	}

	session := &entities.CheckoutSession{
		ID:    m.ID,
		State: entities.CheckoutState(m.State),
		Form: entities.CheckoutForm{
			Email:     m.Form.Email,
			Phone:     m.Form.Phone,
			FirstName: m.Form.FirstName,
			LastName:  m.Form.LastName,
			Address:   entities.PostalAddress(m.Form.Address),
		},
		Cart: make(entities.Cart, 0, len(m.Cart)),
		Payment: entities.PaymentSetup{
			PublicKey:   m.Payment.PublicKey,
			Email:       m.Payment.Email,
			Amount:      amount,
			AmountMinor: m.Payment.AmountMinor,
			Currency:    m.Payment.Currency,
			Reference:   m.Payment.Reference,
		},
		PaymentReference: m.PaymentReference,
		Message:          m.Message,
		History:          make([]entities.CheckoutState, 0, len(m.History)),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	for _, item := range m.Cart {
		session.Cart = append(session.Cart, entities.CartItem(item))
	}
	for _, f := range m.Payment.CustomFields {
		session.Payment.CustomFields = append(session.Payment.CustomFields, entities.PaymentCustomField(f))
	}
	for _, state := range m.History {
		session.History = append(session.History, entities.CheckoutState(state))
	}
	if m.Order != nil {
		order, err := toDomainOrder(m.Order)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", m.ID, err)
		}
		session.Order = order
	}

	return session, nil
}

func toDomainOrder(m *OrderRedis) (*entities.Order, error) {
	total, err := decimal.NewFromString(m.Total)
	if err != nil {
		return nil, fmt.Errorf("order %s total: %w", m.ID, err)
	}

	order := &entities.Order{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		CustomerName:     m.CustomerName,
		Total:            total,
		Status:           entities.OrderStatusType(m.Status),
		CreatedAt:        m.CreatedAt,
		PaymentReference: m.PaymentReference,
	}
	for _, item := range m.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("order %s item %s price: %w", m.ID, item.ProductID, err)
		}
		order.Items = append(order.Items, entities.LineItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: price,
			Quantity:  item.Quantity,
		})
	}
	return order, nil
}
