// Package sortable provides the Sortable interface and wrapper types that
// let primitive values be sorted through it.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/quicksort/compare.Comparable]
// with LessThan. The quicksort package accepts any slice of Sortable
// values through [github.com/amp-labs/quicksort/quicksort.Sortable]:
//
//	seq := []sortable.Int{10, 7, 8, 9, 1, 5}
//	_ = quicksort.Sortable(seq, 0, len(seq)-1)
//	// seq is now [1 5 7 8 9 10]
//
// # Custom types
//
// Implement both methods. LessThan must be a strict ordering: it returns
// false for equal values, otherwise the partition moves equal elements
// around needlessly.
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// # Thread safety
//
// The wrapper types are plain values. Sorting a slice of them mutates the
// slice, which must not be shared with concurrent readers while it runs.
package sortable
