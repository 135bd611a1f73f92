package listing

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"github.com/AlekSi/pointer"
)

type Listing struct {
	repository Repository
}

func New(repository Repository) *Listing {
	return &Listing{repository: repository}
}

// List возвращает страницу доставок в зоне видимости актора: админ видит
// все, курьер - только свои привязанные. Страницы нумеруются с единицы;
// страница за пределами результата - пустая страница, а не ошибка.
func (l *Listing) List(
	ctx context.Context,
	actor entities.Actor,
	page int,
	pageSize int,
	filter entities.DeliveryFilter,
) (*entities.DeliveryPage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if pageSize == 0 {
		pageSize = entities.DefaultPageSize
	}
	if pageSize < 0 {
		return nil, ErrInvalidPageSize
	}

	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	scope := entities.ListScope{
		Filter: filter,
		Limit:  uint64(pageSize),
		Offset: uint64(page-1) * uint64(pageSize),
	}

	switch {
	case actor.Has(entities.CapabilityAdmin):
		// без ограничения по курьеру
	case actor.Has(entities.CapabilityCourier):
		scope.CourierID = pointer.To(actor.ID)
	default:
		return nil, ErrNotPermitted
	}

	items, total, err := l.repository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &entities.DeliveryPage{
		Items:         items,
		Page:          page,
		PageSize:      pageSize,
		TotalMatching: total,
		TotalPages:    totalPages,
	}, nil
}

func validateFilter(filter entities.DeliveryFilter) error {
	switch filter.Status {
	case entities.FilterAll,
		entities.DeliveryPending.String(),
		entities.DeliveryAssigned.String(),
		entities.DeliveryOutForDelivery.String(),
		entities.DeliveryDelivered.String(),
		entities.DeliveryCancelled.String():
	default:
		return fmt.Errorf("%w: status %q", ErrUnknownFilter, filter.Status)
	}

	switch filter.Type {
	case entities.FilterAll,
		entities.DeliveryOrder.String(),
		entities.DeliveryRefund.String():
	default:
		return fmt.Errorf("%w: type %q", ErrUnknownFilter, filter.Type)
	}

	return nil
}
