package algo

import "errors"

// Engine error kinds. Callers compare with errors.Is.
var (
	ErrInvalidSize       = errors.New("invalid size")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMalformedDate     = errors.New("malformed date")
	ErrOrderingMismatch  = errors.New("journey ordering mismatch")
)
