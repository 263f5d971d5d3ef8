package quicksort

import (
	"go.uber.org/atomic"
)

// Stats counts the work done by one or more sort calls. It is safe for
// concurrent use, so the leaves of a parallel sort can share a single
// instance. A nil *Stats is valid and records nothing.
type Stats struct {
	comparisons atomic.Int64
	swaps       atomic.Int64
	partitions  atomic.Int64
	maxDepth    atomic.Int64
}

// StatsSnapshot is a point-in-time copy of a Stats.
type StatsSnapshot struct {
	Comparisons int64 `json:"comparisons" yaml:"comparisons"`
	Swaps       int64 `json:"swaps"       yaml:"swaps"`
	Partitions  int64 `json:"partitions"  yaml:"partitions"`
	MaxDepth    int64 `json:"maxDepth"    yaml:"maxDepth"`
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}

	return StatsSnapshot{
		Comparisons: s.comparisons.Load(),
		Swaps:       s.swaps.Load(),
		Partitions:  s.partitions.Load(),
		MaxDepth:    s.maxDepth.Load(),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	if s == nil {
		return
	}

	s.comparisons.Store(0)
	s.swaps.Store(0)
	s.partitions.Store(0)
	s.maxDepth.Store(0)
}

func (s *Stats) compared() {
	if s != nil {
		s.comparisons.Inc()
	}
}

func (s *Stats) swapped() {
	if s != nil {
		s.swaps.Inc()
	}
}

func (s *Stats) partitioned() {
	if s != nil {
		s.partitions.Inc()
	}
}

// reached records that a partition happened at the given depth (1-based).
func (s *Stats) reached(depth int) {
	if s == nil {
		return
	}

	d := int64(depth)

	for {
		current := s.maxDepth.Load()
		if d <= current || s.maxDepth.CompareAndSwap(current, d) {
			return
		}
	}
}
