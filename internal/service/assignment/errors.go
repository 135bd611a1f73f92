package assignment

import "errors"

var (
	ErrInvalidGlobalID  = errors.New("invalid global order id")
	ErrInvalidCourierID = errors.New("invalid courier id")

	ErrNoEligibleCourier = errors.New("courier is not an active delivery candidate")
	ErrCourierNotFound   = errors.New("courier not found")
)
