//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
}

// AddressEnricher дополняет адрес координатами. Реализация обязана быть
// безопасной к сбоям: вернуть адрес с fallback-координатами, а не ошибку.
type AddressEnricher interface {
	Enrich(ctx context.Context, address entities.Address) entities.Address
}
