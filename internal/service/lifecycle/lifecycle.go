package lifecycle

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"github.com/google/uuid"
)

// Lifecycle - единственная точка, решающая легальность смены
// delivery_status и коммитящая ее.
type Lifecycle struct {
	repository Repository
}

func New(repository Repository) *Lifecycle {
	return &Lifecycle{
		repository: repository,
	}
}

type edge struct {
	from entities.DeliveryStatusType
	to   entities.DeliveryStatusType
}

type requirement struct {
	admin        bool // admin capability открывает ребро
	boundCourier bool // привязанный курьер открывает ребро
	verification bool // вход в delivered требует успешной верификации оплаты
}

// Таблица переходов. Ребра, которых здесь нет, не существуют.
var transitions = map[edge]requirement{
	{entities.DeliveryPending, entities.DeliveryAssigned}:         {admin: true},
	{entities.DeliveryAssigned, entities.DeliveryOutForDelivery}:  {boundCourier: true},
	{entities.DeliveryOutForDelivery, entities.DeliveryDelivered}: {boundCourier: true, verification: true},
	{entities.DeliveryPending, entities.DeliveryCancelled}:        {admin: true, boundCourier: true},
	{entities.DeliveryAssigned, entities.DeliveryCancelled}:       {admin: true, boundCourier: true},
}

// Transition проверяет ребро current->target по таблице, права актора и
// платежный гейт, затем условно коммитит новый статус. Повтор перехода в
// уже достигнутый статус - no-op успех для админа или привязанного
// курьера (клиент мог ретраить по таймауту).
func (l *Lifecycle) Transition(
	ctx context.Context,
	actor entities.Actor,
	globalID string,
	target entities.DeliveryStatusType,
	verification *entities.PaymentVerification,
) (*entities.Order, error) {
	if uuid.Validate(globalID) != nil {
		return nil, ErrInvalidGlobalID
	}
	if !isKnownStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, target)
	}

	order, err := l.repository.GetByGlobalID(ctx, globalID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.DeliveryStatus == target {
		// идемпотентный ретрай: тело заказа получает только актор,
		// который вправе им распоряжаться
		if !actor.Has(entities.CapabilityAdmin) && !actor.IsBoundCourier(order) {
			return nil, fmt.Errorf("%w: repeat of %s", ErrNotPermitted, target)
		}
		return order, nil
	}

	req, ok := transitions[edge{from: order.DeliveryStatus, to: target}]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.DeliveryStatus, target)
	}

	if !l.isAuthorized(actor, order, req) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNotPermitted, order.DeliveryStatus, target)
	}

	if req.verification && (verification == nil || !verification.Verified) {
		return nil, ErrPaymentUnverified
	}

	// Условие по текущему персистентному статусу на момент коммита:
	// проигравший гонку получает ErrInvalidTransition, не двойной переход.
	updated, err := l.repository.UpdateStatus(ctx, globalID, order.DeliveryStatus, target)
	if err != nil {
		return nil, fmt.Errorf("commit transition %s -> %s: %w", order.DeliveryStatus, target, err)
	}

	return updated, nil
}

func (l *Lifecycle) isAuthorized(actor entities.Actor, order *entities.Order, req requirement) bool {
	if req.admin && actor.Has(entities.CapabilityAdmin) {
		return true
	}
	if req.boundCourier && actor.IsBoundCourier(order) {
		return true
	}
	return false
}

func isKnownStatus(s entities.DeliveryStatusType) bool {
	switch s {
	case entities.DeliveryPending,
		entities.DeliveryAssigned,
		entities.DeliveryOutForDelivery,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
