package rates

import "errors"

var (
	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("rates service: internal error")
)
