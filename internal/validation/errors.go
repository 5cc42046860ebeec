package validation

import "errors"

var (
	ErrDataRequired = errors.New("data is required")
	ErrDataTooShort = errors.New("data must contain at least 1 character")
	ErrDataTooLong  = errors.New("data exceeds maximum length")
)
