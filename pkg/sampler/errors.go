package sampler

import "errors"

var (
	// ErrInvalidWidth is returned when the digit width is outside [MinDigits, MaxDigits].
	ErrInvalidWidth = errors.New("invalid digit width")
	// ErrInvalidCount is returned when more numbers are requested than the space holds.
	ErrInvalidCount = errors.New("invalid count")
	// ErrSamplingExhausted is returned when a draw limit set with WithMaxDraws runs out.
	ErrSamplingExhausted = errors.New("sampling exhausted")
)
