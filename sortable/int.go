package sortable

// Int wraps int so it satisfies Sortable[Int].
//
//	seq := []sortable.Int{3, 1, 2}
//	_ = quicksort.Sortable(seq, 0, 2) // [1 2 3]
//
// Convert back with a plain conversion: int(v).
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals reports numeric equality.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan reports whether i is numerically smaller than other.
func (i Int) LessThan(other Int) bool {
	return i < other
}

// Ints converts a plain slice. The result is a new slice.
func Ints(values []int) []Int {
	out := make([]Int, len(values))
	for i, v := range values {
		out[i] = Int(v)
	}

	return out
}

// Int64 wraps int64 so it satisfies Sortable[Int64].
type Int64 int64

var _ Sortable[Int64] = (*Int64)(nil)

func (i Int64) Equals(other Int64) bool {
	return i == other
}

func (i Int64) LessThan(other Int64) bool {
	return i < other
}
