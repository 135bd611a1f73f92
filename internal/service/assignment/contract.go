//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fulfillment/internal/entities"
)

type OrderRepository interface {
	GetByGlobalID(ctx context.Context, globalID string) (*entities.Order, error)

	// BindCourier - условная привязка: только pending и еще без курьера.
	BindCourier(ctx context.Context, globalID string, courierID int64) error
}

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
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

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
