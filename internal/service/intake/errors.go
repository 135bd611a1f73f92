package intake

import "errors"

var (
	ErrInvalidOrder = errors.New("order payload is invalid")

	// ErrTotalMismatch: total обязан равняться subtotal + shipping - discount.
	ErrTotalMismatch = errors.New("order total does not add up")

	// ErrDuplicateOrder: заказ с таким global id уже принят. Для consumer
	// это сигнал идемпотентного пропуска, а не сбоя.
	ErrDuplicateOrder = errors.New("order already ingested")
)
