package anchorapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal is returned on transport or encoding failures
	ErrInternal = errors.New("anchorapi client: internal error")

	// ErrInvalidResponse is returned when the response cannot be decoded
	ErrInvalidResponse = errors.New("anchorapi client: invalid response")
)

// APIError is a structured error returned in the response envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anchorapi client: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
}
