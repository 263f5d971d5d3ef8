package sortable

import (
	"github.com/amp-labs/quicksort/compare"
)

// Sortable is a Comparable that also defines a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal
// to, or after b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted[T Sortable[T]](seq []T) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i].LessThan(seq[i-1]) {
			return false
		}
	}

	return true
}
