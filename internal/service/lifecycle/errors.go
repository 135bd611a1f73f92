package lifecycle

import "errors"

var (
	ErrInvalidGlobalID = errors.New("invalid global order id")
	ErrUnknownStatus   = errors.New("unknown delivery status")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
	ErrNotPermitted      = errors.New("actor is not permitted to perform this transition")
	ErrPaymentUnverified = errors.New("payment is not verified for delivered transition")
)
