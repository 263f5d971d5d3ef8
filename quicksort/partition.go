package quicksort

// span is an inclusive index range.
type span struct {
	low   int
	high  int
	depth int
}

// maxStackDepth bounds the explicit stack of the iterative variant. Pushing
// the larger half and continuing with the smaller one keeps the stack at
// most log2(n)+1 entries, which never exceeds 64 for an int-indexed slice.
const maxStackDepth = 64

// state carries everything one sort call needs. It is built on the
// caller's stack and never stored, so the sequential paths do not allocate.
type state[T any] struct {
	seq   []T
	less  func(a, b T) bool
	pivot Pivot
	stats *Stats
}

func (s *state[T]) swap(i, j int) {
	s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
	s.stats.swapped()
}

func (s *state[T]) lessAt(i, j int) bool {
	s.stats.compared()

	return s.less(s.seq[i], s.seq[j])
}

// medianOfThree moves the median of seq[low], seq[mid] and seq[high] into
// seq[high], so the Lomuto partition below can stay unchanged.
func (s *state[T]) medianOfThree(low, high int) {
	mid := low + (high-low)/2

	if s.lessAt(mid, low) {
		s.swap(low, mid)
	}

	if s.lessAt(high, low) {
		s.swap(low, high)
	}

	// seq[low] now holds the minimum; the median is the smaller of the rest.
	if s.lessAt(mid, high) {
		s.swap(mid, high)
	}
}

// partition splits seq[low..high] around seq[high] and returns the pivot's
// final index. Requires low < high.
func (s *state[T]) partition(low, high int) int {
	if s.pivot == PivotMedianOfThree && high-low >= 2 {
		s.medianOfThree(low, high)
	}

	pivot := s.seq[high]
	i := low - 1

	for j := low; j < high; j++ {
		s.stats.compared()

		if s.less(s.seq[j], pivot) {
			i++
			s.swap(i, j)
		}
	}

	s.swap(i+1, high)
	s.stats.partitioned()

	return i + 1
}

// recurse sorts seq[low..high], left half first.
func (s *state[T]) recurse(low, high, depth int) {
	if low >= high {
		return
	}

	s.stats.reached(depth)

	pi := s.partition(low, high)

	s.recurse(low, pi-1, depth+1)
	s.recurse(pi+1, high, depth+1)
}

// iterate sorts seq[low..high] with an explicit stack instead of recursion.
func (s *state[T]) iterate(low, high int) {
	var (
		stack [maxStackDepth]span
		top   int
	)

	for {
		for low < high {
			s.stats.reached(top + 1)

			pi := s.partition(low, high)

			if pi-low < high-pi {
				stack[top] = span{low: pi + 1, high: high}
				high = pi - 1
			} else {
				stack[top] = span{low: low, high: pi - 1}
				low = pi + 1
			}

			top++
		}

		if top == 0 {
			return
		}

		top--
		low, high = stack[top].low, stack[top].high
	}
}
