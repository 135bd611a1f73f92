//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_reference_get_test
package payment_reference_get

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GenerateReference(ctx context.Context, actor entities.Actor, globalID string) (string, error)
}
