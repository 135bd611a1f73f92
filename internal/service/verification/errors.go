package verification

import "errors"

var (
	ErrInvalidGlobalID = errors.New("invalid global order id")

	// ErrVerificationFailed всегда локально восстановима: курьер может
	// повторить попытку без ограничений, статус заказа не меняется.
	ErrVerificationFailed = errors.New("payment verification failed")

	ErrNotCashOnDelivery = errors.New("payment reference is only available for cash-on-delivery orders")
)
