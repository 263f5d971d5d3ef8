package quicksort

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownPivot     = errors.New("unknown pivot strategy")
)

// Algorithm selects how a Sorter walks the partitions.
type Algorithm string

const (
	// Recursive partitions with plain function recursion, left half first.
	Recursive Algorithm = "recursive"

	// Iterative uses an explicit stack of pending ranges. Call-stack depth
	// stays constant even on adversarial input.
	Iterative Algorithm = "iterative"

	// Parallel partitions the top of the range sequentially and then sorts
	// the independent sub-ranges concurrently.
	Parallel Algorithm = "parallel"
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{Recursive, Iterative, Parallel}
}

// ParseAlgorithm converts a name such as "iterative" into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case Recursive, Iterative, Parallel:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// Pivot selects how each partition picks its pivot element.
type Pivot string

const (
	// PivotLast uses the last element of the range.
	PivotLast Pivot = "last"

	// PivotMedianOfThree uses the median of the first, middle and last
	// elements, which avoids the quadratic case on sorted input.
	PivotMedianOfThree Pivot = "median3"
)

// ParsePivot converts a name such as "last" into a Pivot.
func ParsePivot(name string) (Pivot, error) {
	switch p := Pivot(strings.ToLower(strings.TrimSpace(name))); p {
	case PivotLast, PivotMedianOfThree:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPivot, name)
	}
}

func (p Pivot) String() string {
	return string(p)
}

const (
	// DefaultParallelCutoff is the range length below which the parallel
	// algorithm stops splitting and sorts sequentially.
	DefaultParallelCutoff = 2048
)

// Option configures a Sorter.
type Option func(*Sorter)

// WithAlgorithm selects the algorithm. Defaults to Recursive.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Sorter) {
		s.algorithm = alg
	}
}

// WithPivot selects the pivot strategy. Defaults to PivotLast.
func WithPivot(p Pivot) Option {
	return func(s *Sorter) {
		s.pivot = p
	}
}

// WithWorkers caps the number of concurrent leaves for the parallel
// algorithm. Values below 1 mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Sorter) {
		s.workers = n
	}
}

// WithParallelCutoff sets the range length under which the parallel
// algorithm stops splitting. Values below 2 restore the default.
func WithParallelCutoff(n int) Option {
	return func(s *Sorter) {
		s.cutoff = n
	}
}

// WithStats makes the Sorter accumulate counters into stats.
func WithStats(stats *Stats) Option {
	return func(s *Sorter) {
		s.stats = stats
	}
}

// WithLogger overrides the logger taken from the context.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sorter) {
		s.logger = logger
	}
}

func (s *Sorter) normalize() {
	if s.algorithm == "" {
		s.algorithm = Recursive
	}

	if s.pivot == "" {
		s.pivot = PivotLast
	}

	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	if s.cutoff < 2 {
		s.cutoff = DefaultParallelCutoff
	}
}
