package paystack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

const (
	DefaultCurrency = "ZAR"

	// PlaceholderPublicKey подставляется, если ключ не задан. В production запрещён.
	PlaceholderPublicKey = "pk_test_xxxxxxxxxxxxxxxxxxxxxxxx"

	// ScriptURL - inline виджет, который браузер загружает сам.
	ScriptURL = "https://js.paystack.co/v1/inline.js"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

var hundred = decimal.NewFromInt(100)

type Config struct {
	PublicKey string
	Currency  string
}

// Gateway собирает параметры для hosted виджета оплаты. Сам платёж
// проходит в браузере, сюда возвращается только reference.
type Gateway struct {
	publicKey    string
	currency     string
	newReference func() string
}

func New(cfg Config) *Gateway {
	key := strings.TrimSpace(cfg.PublicKey)
	if key == "" {
		key = PlaceholderPublicKey
	}
	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Gateway{
		publicKey:    key,
		currency:     currency,
		newReference: uuid.NewString,
	}
}

type SetupRequest struct {
	Email           string
	Amount          decimal.Decimal
	Phone           string
	Name            string
	DeliveryAddress string
}

func (g *Gateway) Setup(_ context.Context, req SetupRequest) (entities.PaymentSetup, error) {
	if !req.Amount.IsPositive() {
		return entities.PaymentSetup{}, fmt.Errorf("paystack setup: %w: %s", ErrInvalidAmount, req.Amount)
	}

	return entities.PaymentSetup{
		PublicKey:   g.publicKey,
		Email:       req.Email,
		Amount:      req.Amount,
		AmountMinor: MinorUnits(req.Amount),
		Currency:    g.currency,
		Reference:   g.newReference(),
		CustomFields: []entities.PaymentCustomField{
			{DisplayName: "Mobile Number", VariableName: "mobile_number", Value: req.Phone},
			{DisplayName: "Name", VariableName: "customer_name", Value: req.Name},
			{DisplayName: "Delivery Address", VariableName: "delivery_address", Value: req.DeliveryAddress},
		},
	}, nil
}

func (g *Gateway) UsesPlaceholderKey() bool {
	return IsPlaceholderKey(g.publicKey)
}

// MinorUnits = round(amount * 100).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || key == PlaceholderPublicKey || strings.Contains(key, "xxxx")
}
