package listing

import "errors"

var (
	ErrInvalidPage     = errors.New("page must be a positive number")
	ErrInvalidPageSize = errors.New("page size must be a positive number")
	ErrUnknownFilter   = errors.New("unknown filter value")
	ErrNotPermitted    = errors.New("listing requires admin or courier capability")
)
