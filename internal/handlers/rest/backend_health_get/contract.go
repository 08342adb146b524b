//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backend_health_get_test
package backend_health_get

import (
	"context"

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
	Health(ctx context.Context) error
}
