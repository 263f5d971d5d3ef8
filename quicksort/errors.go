package quicksort

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range that would do work
// (low < high) reaches outside the sequence.
var ErrInvalidRange = errors.New("invalid range")

// RangeError describes a rejected range. It unwraps to ErrInvalidRange.
type RangeError struct {
	Low  int
	High int
	Len  int
}

var _ error = (*RangeError)(nil)

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: [%d, %d] is outside a sequence of length %d",
		ErrInvalidRange.Error(), e.Low, e.High, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// CheckRange reports whether (low, high) may be sorted within a sequence of
// length n. Empty and single-element ranges (low >= high) are always
// accepted, since sorting them touches nothing.
func CheckRange(n, low, high int) error {
	if low >= high {
		return nil
	}

	if low < 0 || high >= n {
		return &RangeError{Low: low, High: high, Len: n}
	}

	return nil
}
