//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=verification_test
package verification

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	GetByGlobalID(ctx context.Context, globalID string) (*entities.Order, error)
}

type Lifecycle interface {
	Transition(
		ctx context.Context,
		actor entities.Actor,
		globalID string,
		target entities.DeliveryStatusType,
		verification *entities.PaymentVerification,
	) (*entities.Order, error)
}
