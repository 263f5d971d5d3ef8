package quicksort

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amp-labs/quicksort/contexts"
	"github.com/amp-labs/quicksort/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/amp-labs/quicksort/quicksort") //nolint:gochecknoglobals

// Sorter is a reusable sort configuration. It holds no data between calls
// and is safe for concurrent use as long as callers sort different
// sequences.
type Sorter struct {
	algorithm Algorithm
	pivot     Pivot
	workers   int
	cutoff    int
	stats     *Stats
	logger    *slog.Logger
}

// New returns a Sorter. Without options it behaves exactly like Sort.
func New(opts ...Option) *Sorter {
	s := &Sorter{}

	for _, opt := range opts {
		opt(s)
	}

	s.normalize()

	return s
}

// Algorithm returns the configured algorithm.
func (s *Sorter) Algorithm() Algorithm {
	return s.algorithm
}

// Pivot returns the configured pivot strategy.
func (s *Sorter) Pivot() Pivot {
	return s.pivot
}

// Workers returns the concurrency limit used by the parallel algorithm.
func (s *Sorter) Workers() int {
	return s.workers
}

// Stats returns the counters this Sorter writes to, or nil.
func (s *Sorter) Stats() *Stats {
	return s.stats
}

// Sort reorders seq[low..high] in place using the configured algorithm.
func (s *Sorter) Sort(ctx context.Context, seq []int, low, high int) error {
	return Run(ctx, s, seq, low, high, cmp.Less[int])
}

// SortAll sorts the whole of seq.
func (s *Sorter) SortAll(ctx context.Context, seq []int) error {
	return s.Sort(ctx, seq, 0, len(seq)-1)
}

// Run sorts seq[low..high] with an arbitrary element type and ordering,
// using the configuration of s. A nil Sorter uses the defaults.
func Run[T any](ctx context.Context, s *Sorter, seq []T, low, high int, less func(a, b T) bool) (err error) {
	if s == nil {
		s = New()
	}

	ctx = contexts.EnsureContext(ctx)
	count := max(high-low+1, 0)

	ctx, span := tracer.Start(ctx, "quicksort.Sort")
	span.SetAttributes(
		attribute.String("quicksort.algorithm", s.algorithm.String()),
		attribute.String("quicksort.pivot", s.pivot.String()),
		attribute.Int("quicksort.length", count),
	)

	start := time.Now()

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()

		s.observe(ctx, start, count, err)
	}()

	if err = s.validate(); err != nil {
		return err
	}

	if err = CheckRange(len(seq), low, high); err != nil {
		return err
	}

	st := state[T]{
		seq:   seq,
		less:  less,
		pivot: s.pivot,
		stats: s.stats,
	}

	switch s.algorithm {
	case Recursive:
		st.recurse(low, high, 1)
	case Iterative:
		st.iterate(low, high)
	case Parallel:
		err = st.parallel(ctx, low, high, s.workers, s.cutoff)
	}

	return err
}

// validate rejects values that did not come from the exported constants.
// Names are not normalized here; use ParseAlgorithm and ParsePivot for
// user input.
func (s *Sorter) validate() error {
	switch s.algorithm {
	case Recursive, Iterative, Parallel:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.algorithm)
	}

	switch s.pivot {
	case PivotLast, PivotMedianOfThree:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPivot, s.pivot)
	}

	return nil
}

// observe records metrics and a debug line for a finished call.
func (s *Sorter) observe(ctx context.Context, start time.Time, count int, err error) {
	elapsed := time.Since(start)
	outcome := outcomeOf(err)

	recordSort(s.algorithm, outcome, count, elapsed)

	log := s.logger
	if log == nil {
		log = logger.Get(ctx)
	}

	log.Debug("sorted range",
		"algorithm", s.algorithm,
		"pivot", s.pivot,
		"length", count,
		"outcome", outcome,
		"elapsed", elapsed)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrInvalidRange):
		return outcomeInvalidRange
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCanceled
	default:
		return outcomeError
	}
}

// String describes the configuration, for logs.
func (s *Sorter) String() string {
	return fmt.Sprintf("quicksort(algorithm=%s, pivot=%s, workers=%d, cutoff=%d)",
		s.algorithm, s.pivot, s.workers, s.cutoff)
}
