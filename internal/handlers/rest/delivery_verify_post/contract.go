//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_verify_post_test
package delivery_verify_post

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
	VerifyAndComplete(ctx context.Context, actor entities.Actor, globalID string, proof entities.PaymentProof) (*entities.Order, error)
}
