// Package compare provides equality for types that define their own.
package compare

// Comparable is implemented by types that can decide equality with another
// value of the same type.
type Comparable[T any] interface {
	Equals(other T) bool
}

// EqualSlices reports whether a and b have the same length and pairwise
// equal elements.
func EqualSlices[T Comparable[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}

	return true
}
