package quicksort

import (
	"cmp"

	"github.com/amp-labs/quicksort/sortable"
)

// Sort reorders seq[low..high] (inclusive) into non-decreasing order in
// place. It is a no-op when low >= high. Otherwise the range must lie
// within seq, or an error wrapping ErrInvalidRange is returned and seq is
// not modified.
func Sort(seq []int, low, high int) error {
	return Ordered(seq, low, high)
}

// SortAll sorts the whole of seq.
func SortAll(seq []int) error {
	return Sort(seq, 0, len(seq)-1)
}

// Ordered is Sort for any ordered element type.
func Ordered[T cmp.Ordered](seq []T, low, high int) error {
	return Func(seq, low, high, cmp.Less[T])
}

// Func is Sort with a caller-supplied strict ordering. less must report
// whether a sorts before b.
func Func[T any](seq []T, low, high int, less func(a, b T) bool) error {
	if err := CheckRange(len(seq), low, high); err != nil {
		return err
	}

	st := state[T]{seq: seq, less: less, pivot: PivotLast}
	st.recurse(low, high, 1)

	return nil
}

// Sortable sorts types that know how to order themselves.
func Sortable[T sortable.Sortable[T]](seq []T, low, high int) error {
	return Func(seq, low, high, func(a, b T) bool {
		return a.LessThan(b)
	})
}
