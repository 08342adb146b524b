//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=view_delete_test
package view_delete

import (
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Views interface {
	CloseView(viewID string)
}
