package dto

import (
	"time"

	"storefront/internal/entities"
	"storefront/internal/gateway/payment/paystack"
	"storefront/internal/view"
)

func FromCustomer(c entities.Customer) Customer {
	out := Customer{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address.String(),
		OrderCount: c.OrderCount,
		CreatedAt:  timeOrNil(c.CreatedAt),
	}
	if c.Address.Postal != nil {
		postal := FromPostalAddress(*c.Address.Postal)
		out.Postal = &postal
	}
	return out
}

func FromPostalAddress(a entities.PostalAddress) Address {
	return Address(a)
}

func ToPostalAddress(a Address) entities.PostalAddress {
	return entities.PostalAddress(a)
}

func FromOrder(o entities.Order) Order {
	out := Order{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		Total:            o.Total.StringFixed(2),
		Status:           o.Status.String(),
		StatusKnown:      o.Status.IsKnown(),
		Tone:             string(o.Status.Tone()),
		CreatedAt:        timeOrNil(o.CreatedAt),
		Items:            make([]LineItem, 0, len(o.Items)),
		PaymentReference: o.PaymentReference,
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, LineItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		})
	}
	return out
}

// FromView переводит состояние экрана в ответ. emptyText показывается
// только для загруженного пустого списка.
func FromView[T, D any](viewID string, s view.State[T], convert func(T) D, emptyText string) View[D] {
	out := View[D]{
		ViewID:     viewID,
		Phase:      string(s.Phase),
		Target:     s.Target,
		Items:      make([]D, 0, len(s.Items)),
		Message:    s.Message,
		Diagnostic: s.Diagnostic,
	}
	for _, item := range s.Items {
		out.Items = append(out.Items, convert(item))
	}
	if s.Phase == view.PhaseReady && len(s.Items) == 0 {
		out.EmptyText = emptyText
	}
	return out
}

func ToCheckoutForm(req CheckoutRequest) entities.CheckoutForm {
	return entities.CheckoutForm{
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   ToPostalAddress(req.Address),
	}
}

func ToCart(items []CartItem) entities.Cart {
	cart := make(entities.Cart, 0, len(items))
	for _, item := range items {
		cart = append(cart, entities.CartItem(item))
	}
	return cart
}

func FromSession(s *entities.CheckoutSession) CheckoutSession {
	out := CheckoutSession{
		ID:               s.ID,
		State:            s.State.String(),
		History:          make([]string, 0, len(s.History)),
		Message:          s.Message,
		PaymentReference: s.PaymentReference,
	}
	for _, state := range s.History {
		out.History = append(out.History, state.String())
	}
	// параметры виджета нужны браузеру только пока ждём оплату
	if s.State == entities.CheckoutSubmitting {
		payment := FromPaymentSetup(s.Payment)
		out.Payment = &payment
	}
	if s.Order != nil {
		order := FromOrder(*s.Order)
		out.Order = &order
	}
	return out
}

func FromPaymentSetup(p entities.PaymentSetup) PaymentSetup {
	out := PaymentSetup{
		Key:         p.PublicKey,
		Email:       p.Email,
		Amount:      p.AmountMinor,
		AmountMajor: p.Amount.StringFixed(2),
		Currency:    p.Currency,
		Ref:         p.Reference,
		Metadata:    PaymentMetadata{CustomFields: make([]PaymentCustomField, 0, len(p.CustomFields))},
		ScriptURL:   paystack.ScriptURL,
	}
	for _, f := range p.CustomFields {
		out.Metadata.CustomFields = append(out.Metadata.CustomFields, PaymentCustomField(f))
	}
	return out
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
