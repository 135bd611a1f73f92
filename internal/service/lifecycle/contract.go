//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	GetByGlobalID(ctx context.Context, globalID string) (*entities.Order, error)

	// UpdateStatus - условный коммит: строка обновляется только если
	// delivery_status все еще равен from. Ноль строк = гонка проиграна.
	UpdateStatus(ctx context.Context, globalID string, from, to entities.DeliveryStatusType) (*entities.Order, error)
}
