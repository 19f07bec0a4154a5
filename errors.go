package base32

import "errors"

var (
	ErrMaxLengthExceeded = errors.New("base32 input exceeds max length")
	ErrInvalidInput      = errors.New("invalid base32 input")
)
