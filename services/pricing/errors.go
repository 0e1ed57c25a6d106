package pricing

import "errors"

var (
	// ErrUnknownSize means the size category has no table entry and no
	// fallback path exists.
	ErrUnknownSize = errors.New("unknown size category")
	// ErrInvalidInput covers malformed date or time parameters.
	ErrInvalidInput = errors.New("invalid input")
)
