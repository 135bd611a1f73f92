package intake

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"github.com/google/uuid"
)

// Intake принимает заказы из checkout-событий и кладет их в pending.
// Прием идемпотентен по global id: повторная доставка того же события
// дает ErrDuplicateOrder, который consumer пропускает без ретрая.
type Intake struct {
	repository Repository
	enricher   AddressEnricher
}

func New(repository Repository, enricher AddressEnricher) *Intake {
	return &Intake{
		repository: repository,
		enricher:   enricher,
	}
}

func (i *Intake) Ingest(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if err := validate(order); err != nil {
		return nil, err
	}

	// состояние доставки назначает только этот сервис, что бы ни пришло в событии
	order.DeliveryStatus = entities.DeliveryPending
	order.CourierID = nil
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}

	// обогащение не блокирует прием: при недоступном геокодере
	// enricher подставляет fallback-координаты
	order.ShippingAddress = i.enricher.Enrich(ctx, order.ShippingAddress)

	created, err := i.repository.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("ingest order %d: %w", order.ID, err)
	}

	return created, nil
}

func validate(order entities.Order) error {
	if uuid.Validate(order.GlobalID) != nil {
		return fmt.Errorf("%w: global id is not a uuid", ErrInvalidOrder)
	}
	if order.ID <= 0 {
		return fmt.Errorf("%w: public order number is required", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}

	switch order.Type {
	case entities.DeliveryOrder, entities.DeliveryRefund:
	default:
		return fmt.Errorf("%w: unknown delivery type %q", ErrInvalidOrder, order.Type)
	}

	switch order.PaymentMethod {
	case entities.PaymentCashOnDelivery, entities.PaymentPrepaid:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, order.PaymentMethod)
	}

	if expected := order.SubtotalCents + order.ShippingCents - order.DiscountCents; order.TotalCents != expected {
		return fmt.Errorf("%w: total %d, expected %d", ErrTotalMismatch, order.TotalCents, expected)
	}

	return nil
}
