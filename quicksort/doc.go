// Package quicksort sorts integer sequences in place over an inclusive
// index range using a Lomuto partition.
//
// # Overview
//
// The package-level functions ([Sort], [SortAll], [Ordered], [Func] and
// [Sortable]) are the plain entry points. They take the sequence and an
// inclusive range (low, high), validate the range once, and then reorder
// seq[low..high] into non-decreasing order without allocating:
//
//	seq := []int{10, 7, 8, 9, 1, 5}
//	if err := quicksort.Sort(seq, 0, len(seq)-1); err != nil {
//	    return err
//	}
//	// seq is now [1 5 7 8 9 10]
//
// A range with low >= high is always a no-op and never an error. This
// covers empty sequences (0, -1) and single elements (i, i). Any other
// range must satisfy 0 <= low and high < len(seq), otherwise the call
// fails with an error wrapping [ErrInvalidRange] and the sequence is left
// untouched.
//
// # Pivot choice
//
// The pivot is the last element of the range. Already sorted or reverse
// sorted input therefore costs O(n²) comparisons. [PivotMedianOfThree]
// trades that worst case away, but it has to be requested explicitly
// through a [Sorter].
//
// # Sorter
//
// [Sorter] bundles the configuration for the heavier variants: the
// iterative algorithm (bounded call stack), the parallel algorithm
// (independent sub-ranges sorted on a worker pool), counters ([Stats]),
// Prometheus metrics and an OpenTelemetry span per call.
//
//	sorter := quicksort.New(
//	    quicksort.WithAlgorithm(quicksort.Parallel),
//	    quicksort.WithWorkers(8),
//	)
//	err := sorter.Sort(ctx, seq, 0, len(seq)-1)
//
// # Stability
//
// Elements equal to the pivot are not moved left of it, so the sort is
// not stable. Only the ordering and the multiset of values are
// guaranteed.
package quicksort
