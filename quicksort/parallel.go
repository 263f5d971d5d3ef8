package quicksort

import (
	"context"

	"github.com/amp-labs/quicksort/contexts"
	"github.com/amp-labs/quicksort/simultaneously"
)

// leavesPerWorker gives the pool some slack so that one unlucky, oversized
// leaf does not leave the other workers idle.
const leavesPerWorker = 4

// parallel partitions seq[low..high] breadth-first until the pending
// ranges are short enough (or numerous enough), then sorts those disjoint
// ranges concurrently. Every leaf is finished with the sequential
// recursion, so the result is identical to recurse(low, high).
func (s *state[T]) parallel(ctx context.Context, low, high, workers, cutoff int) error {
	if workers < 2 || high-low+1 <= cutoff {
		s.recurse(low, high, 1)

		return nil
	}

	leaves, err := s.split(ctx, low, high, cutoff, workers*leavesPerWorker)
	if err != nil {
		return err
	}

	tasks := make([]func(context.Context) error, 0, len(leaves))

	for _, leaf := range leaves {
		tasks = append(tasks, func(context.Context) error {
			s.recurse(leaf.low, leaf.high, leaf.depth)

			return nil
		})
	}

	return simultaneously.DoCtx(ctx, workers, tasks...)
}

// split returns the non-trivial leaf ranges left after partitioning the top
// of the tree. Leaves never overlap.
func (s *state[T]) split(ctx context.Context, low, high, cutoff, maxLeaves int) ([]span, error) {
	var leaves []span

	queue := []span{{low: low, high: high, depth: 1}}

	for len(queue) > 0 {
		if !contexts.IsContextAlive(ctx) {
			return nil, ctx.Err()
		}

		next := queue[0]
		queue = queue[1:]

		if next.low >= next.high {
			continue
		}

		if next.high-next.low+1 <= cutoff || len(leaves)+len(queue)+1 >= maxLeaves {
			leaves = append(leaves, next)

			continue
		}

		s.stats.reached(next.depth)

		pi := s.partition(next.low, next.high)

		queue = append(queue,
			span{low: next.low, high: pi - 1, depth: next.depth + 1},
			span{low: pi + 1, high: next.high, depth: next.depth + 1})
	}

	return leaves, nil
}
