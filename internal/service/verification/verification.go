package verification

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/lifecycle"
	"github.com/google/uuid"
)

// Verification гейтит переход out_for_delivery -> delivered: заказ никогда
// не помечается доставленным на неверифицированной оплате. Запись
// верификации живет только внутри запроса и не персистится.
type Verification struct {
	repository Repository
	lifecycle  Lifecycle
	payeeVPA   string
	payeeName  string
}

func New(repository Repository, lc Lifecycle, payeeVPA, payeeName string) *Verification {
	return &Verification{
		repository: repository,
		lifecycle:  lc,
		payeeVPA:   payeeVPA,
		payeeName:  payeeName,
	}
}

// VerifyAndComplete проверяет доказательство оплаты по методу заказа и при
// успехе ровно один раз вызывает переход в delivered. Ошибка перехода после
// успешной верификации возвращается как есть - caller должен отличать ее
// от ошибки верификации.
func (v *Verification) VerifyAndComplete(
	ctx context.Context,
	actor entities.Actor,
	globalID string,
	proof entities.PaymentProof,
) (*entities.Order, error) {
	order, err := v.guardedOrder(ctx, actor, globalID)
	if err != nil {
		return nil, err
	}

	switch order.PaymentMethod {
	case entities.PaymentCashOnDelivery:
		if !proof.CashConfirmed {
			return nil, fmt.Errorf("%w: cash receipt is not confirmed by the courier", ErrVerificationFailed)
		}
	case entities.PaymentPrepaid:
		if proof.EnteredOrderID == nil {
			return nil, fmt.Errorf("%w: order id is required for prepaid verification", ErrVerificationFailed)
		}
		// строгое строковое равенство: "04821" для заказа 4821 не проходит
		if *proof.EnteredOrderID != strconv.FormatInt(order.ID, 10) {
			return nil, fmt.Errorf("%w: Invalid Order ID", ErrVerificationFailed)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %s", ErrVerificationFailed, order.PaymentMethod)
	}

	record := &entities.PaymentVerification{
		Method:     order.PaymentMethod,
		Verified:   true,
		VerifiedAt: time.Now().UTC(),
	}

	return v.lifecycle.Transition(ctx, actor, globalID, entities.DeliveryDelivered, record)
}

// GenerateReference детерминированно строит UPI-ссылку на доплату для
// COD-заказа. Генерация идемпотентна и сама по себе НИЧЕГО не верифицирует:
// после расчета клиентом курьер отдельно подтверждает наличные.
func (v *Verification) GenerateReference(ctx context.Context, actor entities.Actor, globalID string) (string, error) {
	order, err := v.guardedOrder(ctx, actor, globalID)
	if err != nil {
		return "", err
	}

	if order.PaymentMethod != entities.PaymentCashOnDelivery {
		return "", ErrNotCashOnDelivery
	}

	params := url.Values{}
	params.Set("pa", v.payeeVPA)
	params.Set("pn", v.payeeName)
	params.Set("am", formatAmount(order.TotalCents))
	params.Set("cu", "INR")
	params.Set("tr", fmt.Sprintf("ORD-%d", order.ID))
	params.Set("tn", fmt.Sprintf("Order %d", order.ID))

	// url.Values.Encode сортирует ключи - одинаковый вход дает
	// байт-в-байт одинаковую ссылку
	return "upi://pay?" + params.Encode(), nil
}

func (v *Verification) guardedOrder(ctx context.Context, actor entities.Actor, globalID string) (*entities.Order, error) {
	if uuid.Validate(globalID) != nil {
		return nil, ErrInvalidGlobalID
	}

	order, err := v.repository.GetByGlobalID(ctx, globalID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !actor.IsBoundCourier(order) {
		return nil, fmt.Errorf("%w: verification requires the bound courier", lifecycle.ErrNotPermitted)
	}

	if order.DeliveryStatus != entities.DeliveryOutForDelivery {
		return nil, fmt.Errorf("%w: verification is only valid while out_for_delivery, order is %s",
			lifecycle.ErrInvalidTransition, order.DeliveryStatus)
	}

	return order, nil
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
