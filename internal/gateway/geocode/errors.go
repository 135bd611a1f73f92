package geocode

import "errors"

var (
	// ErrResolverUnavailable: геокодер не ответил или ответил мусором.
	// Enrich глотает эту ошибку и подставляет fallback-координаты.
	ErrResolverUnavailable = errors.New("geocode resolver is unavailable")

	// ErrAddressNotFound: резолвер ответил, но адрес не распознал.
	ErrAddressNotFound = errors.New("address could not be resolved")
)
