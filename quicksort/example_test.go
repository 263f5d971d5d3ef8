package quicksort_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/quicksort/quicksort"
	"github.com/amp-labs/quicksort/sortable"
)

func ExampleSort() {
	values := []int{10, 7, 8, 9, 1, 5}

	if err := quicksort.Sort(values, 0, len(values)-1); err != nil {
		panic(err)
	}

	fmt.Println(values)
	// Output: [1 5 7 8 9 10]
}

func ExampleSort_invalidRange() {
	values := []int{1, 2, 3}

	err := quicksort.Sort(values, 0, 5)
	fmt.Println(errors.Is(err, quicksort.ErrInvalidRange))
	fmt.Println(err)
	// Output:
	// true
	// invalid range: [0, 5] is outside a sequence of length 3
}

func ExampleFunc() {
	words := []string{"pear", "Apple", "fig", "banana"}

	_ = quicksort.Func(words, 0, len(words)-1, func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	fmt.Println(words)
	// Output: [Apple banana fig pear]
}

func ExampleSortable() {
	values := sortable.Ints([]int{3, 1, 2})

	_ = quicksort.Sortable(values, 0, len(values)-1)

	fmt.Println(values)
	// Output: [1 2 3]
}

func ExampleSorter() {
	var stats quicksort.Stats

	sorter := quicksort.New(
		quicksort.WithAlgorithm(quicksort.Iterative),
		quicksort.WithStats(&stats),
	)

	values := []int{10, 7, 8, 9, 1, 5}
	if err := sorter.SortAll(context.Background(), values); err != nil {
		panic(err)
	}

	snap := stats.Snapshot()
	fmt.Println(values, snap.Partitions, snap.Swaps)
	// Output: [1 5 7 8 9 10] 4 5
}
