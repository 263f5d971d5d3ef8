package quicksort

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess      = "success"
	outcomeInvalidRange = "invalid_range"
	outcomeCanceled     = "canceled"
	outcomeError        = "error"

	// algorithmUnknown labels calls from a Sorter built with an algorithm
	// name outside Algorithms(), keeping label cardinality fixed.
	algorithmUnknown = "unknown"
)

var (
	// sortsTotal counts Sorter calls by algorithm and outcome.
	//
	// Labels:
	//   - algorithm: recursive, iterative, parallel or unknown.
	//   - outcome: success, invalid_range, canceled or error.
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_sorts_total",
		Help: "The total number of calls to Sorter.Sort",
	}, []string{"algorithm", "outcome"})

	// elementsSorted counts the elements covered by successful calls.
	elementsSorted = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "quicksort_elements_sorted_total",
		Help: "The total number of elements in successfully sorted ranges",
	}, []string{"algorithm"})

	// sortDuration tracks how long a call takes, in milliseconds. Small
	// ranges finish well under a millisecond, hence the fractional buckets.
	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "quicksort_sort_duration_millis",
		Help: "The time it takes to sort a range, in milliseconds",
		Buckets: []float64{
			0.01, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000,
		},
	}, []string{"algorithm"})
)

// init creates every algorithm/outcome series up front so dashboards see
// zeros instead of gaps before the first call.
func init() {
	for _, alg := range Algorithms() {
		for _, outcome := range []string{outcomeSuccess, outcomeInvalidRange, outcomeCanceled, outcomeError} {
			sortsTotal.WithLabelValues(alg.String(), outcome).Add(0)
		}

		elementsSorted.WithLabelValues(alg.String()).Add(0)
	}

	sortsTotal.WithLabelValues(algorithmUnknown, outcomeError).Add(0)
}

// metricLabel maps alg to a bounded label value.
func metricLabel(alg Algorithm) string {
	switch alg {
	case Recursive, Iterative, Parallel:
		return alg.String()
	default:
		return algorithmUnknown
	}
}

func recordSort(alg Algorithm, outcome string, count int, elapsed time.Duration) {
	label := metricLabel(alg)

	sortsTotal.WithLabelValues(label, outcome).Inc()
	sortDuration.WithLabelValues(label).Observe(float64(elapsed.Microseconds()) / 1000.0) //nolint:mnd

	if outcome == outcomeSuccess {
		elementsSorted.WithLabelValues(label).Add(float64(count))
	}
}
