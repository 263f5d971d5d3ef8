package envutil

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
)

var (
	ErrOutOfRange = errors.New("value out of range")
	ErrInvalidURL = errors.New("invalid URL")
)

// Option modifies a Reader. String, Int and friends apply them in order.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a value for when the variable is unset.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing makes an unset variable an error.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate runs f on the value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}

// AtLeast returns a validator rejecting values below lowest.
func AtLeast[T cmp.Ordered](lowest T) func(T) error {
	return func(v T) error {
		if v < lowest {
			return fmt.Errorf("%w: %v is below %v", ErrOutOfRange, v, lowest)
		}

		return nil
	}
}

// AtMost returns a validator rejecting values above highest.
func AtMost[T cmp.Ordered](highest T) func(T) error {
	return func(v T) error {
		if v > highest {
			return fmt.Errorf("%w: %v is above %v", ErrOutOfRange, v, highest)
		}

		return nil
	}
}

// HTTPURL rejects URLs that are not absolute http or https URLs. A nil URL,
// such as a Default(nil) fallback, passes.
func HTTPURL(u *url.URL) error {
	if u == nil {
		return nil
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrInvalidURL, u.String())
	}

	return nil
}
