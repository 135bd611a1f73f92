//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_test
package listing

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	List(ctx context.Context, scope entities.ListScope) ([]entities.Order, int64, error)
}

type Lister interface {
	List(
		ctx context.Context,
		actor entities.Actor,
		page int,
		pageSize int,
		filter entities.DeliveryFilter,
	) (*entities.DeliveryPage, error)
}
