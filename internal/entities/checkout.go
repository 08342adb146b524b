package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID       string
	Title    string
	Price    string // как показан на витрине, например "R1,299.99"
	Quantity int
}

type Cart []CartItem

// ParsePrice оставляет только цифры и точку.
func ParsePrice(display string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, display)
	}
	return d, nil
}

func (c CartItem) LineTotal() (decimal.Decimal, error) {
	price, err := ParsePrice(c.Price)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(c.Quantity))), nil
}

// Subtotal = сумма price * quantity по всем позициям.
func (c Cart) Subtotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range c {
		line, err := item.LineTotal()
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %s: %w", item.ID, err)
		}
		total = total.Add(line)
	}
	return total, nil
}

type CheckoutForm struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Address   PostalAddress
}

func (f CheckoutForm) FullName() string {
	return strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName)
}

// NewOrder - тело POST /orders после успешной оплаты.
type NewOrder struct {
	Email            string
	Name             string
	Phone            string
	Address          PostalAddress
	Items            []CartItem
	Total            decimal.Decimal
	PaymentReference string
}

type PaymentCustomField struct {
	DisplayName  string
	VariableName string
	Value        string
}

// PaymentSetup - параметры для инициализации платёжного виджета в браузере.
type PaymentSetup struct {
	PublicKey    string
	Email        string
	Amount       decimal.Decimal
	AmountMinor  int64
	Currency     string
	Reference    string
	CustomFields []PaymentCustomField
}

type CheckoutState string

const (
	CheckoutFillingForm      CheckoutState = "filling_form"
	CheckoutSubmitting       CheckoutState = "submitting"
	CheckoutPaymentSucceeded CheckoutState = "payment_succeeded"
	CheckoutPaymentCancelled CheckoutState = "payment_cancelled"
	CheckoutSubmittingOrder  CheckoutState = "submitting_order"
	CheckoutOrderSaved       CheckoutState = "order_saved"
	CheckoutOrderSaveFailed  CheckoutState = "order_save_failed"
)

func (s CheckoutState) String() string {
	return string(s)
}

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutOrderSaved || s == CheckoutOrderSaveFailed
}

type CheckoutSession struct {
	ID               string
	State            CheckoutState
	Form             CheckoutForm
	Cart             Cart
	Payment          PaymentSetup
	PaymentReference string
	Order            *Order
	Message          string
	History          []CheckoutState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Transition переводит сессию в новое состояние и дописывает его в историю.
func (s *CheckoutSession) Transition(to CheckoutState, at time.Time) {
	s.State = to
	s.History = append(s.History, to)
	s.UpdatedAt = at
}

// Clone - глубокая копия, хранилища не должны делить срезы с вызывающим.
func (s CheckoutSession) Clone() CheckoutSession {
	s.Cart = append(Cart(nil), s.Cart...)
	s.History = append([]CheckoutState(nil), s.History...)
	s.Payment.CustomFields = append([]PaymentCustomField(nil), s.Payment.CustomFields...)
	if s.Order != nil {
		order := *s.Order
		order.Items = append([]LineItem(nil), order.Items...)
		s.Order = &order
	}
	return s
}
