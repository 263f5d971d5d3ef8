// Package errors holds the sentinel errors shared across packages and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

// ErrPanicRecovery wraps a panic that was recovered and turned into an
// error, typically inside a worker goroutine.
var ErrPanicRecovery = errors.New("panic recovered")

// Collection accumulates errors from independent checks so they can be
// returned together. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored, so results can be added
// without checking them first.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear forgets every recorded error.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether at least one error was recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil, the single recorded error, or all of them joined
// with errors.Join.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
