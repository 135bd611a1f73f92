package assignment

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/lifecycle"
	"github.com/google/uuid"
)

// Assignment привязывает ровно одного активного курьера к pending-заказу.
// Выбор кандидата - решение админа, никакой балансировки здесь нет.
type Assignment struct {
	orderRepository   OrderRepository
	courierRepository CourierRepository
	lifecycle         Lifecycle
	txManager         TxManager
}

func New(
	orderRepository OrderRepository,
	courierRepository CourierRepository,
	lc Lifecycle,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		orderRepository:   orderRepository,
		courierRepository: courierRepository,
		lifecycle:         lc,
		txManager:         txManager,
	}
}

// Assign выполняет привязку и переход pending -> assigned одной транзакцией:
// либо оба коммитятся, либо оба откатываются. Заказ не может остаться
// "привязан, но pending" или "assigned, но без курьера".
func (a *Assignment) Assign(ctx context.Context, actor entities.Actor, globalID string, courierID int64) (*entities.Order, error) {
	if uuid.Validate(globalID) != nil {
		return nil, ErrInvalidGlobalID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !actor.Has(entities.CapabilityAdmin) {
		return nil, fmt.Errorf("%w: assignment requires admin capability", lifecycle.ErrNotPermitted)
	}

	var assigned *entities.Order

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		// флаг активности читается в момент назначения, без кеша
		courier, err := a.courierRepository.GetByID(ctx, courierID)
		if err != nil {
			if errors.Is(err, ErrCourierNotFound) {
				return fmt.Errorf("%w: courier %d", ErrNoEligibleCourier, courierID)
			}
			return fmt.Errorf("get courier: %w", err)
		}
		if !courier.Active {
			return fmt.Errorf("%w: courier %d is inactive", ErrNoEligibleCourier, courierID)
		}

		err = a.orderRepository.BindCourier(ctx, globalID, courier.ID)
		if err != nil {
			return fmt.Errorf("bind courier: %w", err)
		}

		assigned, err = a.lifecycle.Transition(ctx, actor, globalID, entities.DeliveryAssigned, nil)
		if err != nil {
			return fmt.Errorf("commit assignment transition: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}
