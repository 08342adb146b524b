//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_payment_post_test
package checkout_payment_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, sessionID string, outcome checkout.Outcome) (*entities.CheckoutSession, error)
}
