//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"storefront/internal/entities"
	"storefront/internal/gateway/payment/paystack"
	"storefront/pkg/logger"
)

type OrderGateway interface {
	CreateOrder(ctx context.Context, order entities.NewOrder) (*entities.Order, error)
}

type PaymentGateway interface {
	Setup(ctx context.Context, req paystack.SetupRequest) (entities.PaymentSetup, error)
}

type SessionStore interface {
	Save(ctx context.Context, session entities.CheckoutSession) error
	Get(ctx context.Context, id string) (*entities.CheckoutSession, error)
	// Claim атомарно захватывает сессию для разрешения оплаты.
	// false без ошибки - сессию уже разрешает другой вызов.
	Claim(ctx context.Context, id string) (bool, error)
	Release(ctx context.Context, id string) error
}

type flowLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
