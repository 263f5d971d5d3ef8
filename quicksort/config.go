package quicksort

import (
	"context"

	"github.com/amp-labs/quicksort/envutil"
)

// Environment variables read by NewFromEnv.
const (
	EnvAlgorithm      = "QSORT_ALGORITHM"
	EnvPivot          = "QSORT_PIVOT"
	EnvWorkers        = "QSORT_WORKERS"
	EnvParallelCutoff = "QSORT_PARALLEL_CUTOFF"
)

// NewFromEnv builds a Sorter from QSORT_* environment variables (or
// context overrides, see envutil.WithEnvOverride). Explicit options are
// applied afterwards and win over the environment.
func NewFromEnv(ctx context.Context, opts ...Option) (*Sorter, error) {
	alg, err := envutil.Map(envutil.String(ctx, EnvAlgorithm), ParseAlgorithm).
		WithDefault(Recursive).
		Value()
	if err != nil {
		return nil, err
	}

	pivot, err := envutil.Map(envutil.String(ctx, EnvPivot), ParsePivot).
		WithDefault(PivotLast).
		Value()
	if err != nil {
		return nil, err
	}

	workers, err := envutil.Int[int](ctx, EnvWorkers, envutil.Default(0)).Value()
	if err != nil {
		return nil, err
	}

	cutoff, err := envutil.Int[int](ctx, EnvParallelCutoff,
		envutil.Default(DefaultParallelCutoff),
		envutil.Validate(envutil.AtLeast(2))).Value() //nolint:mnd
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithAlgorithm(alg),
		WithPivot(pivot),
		WithWorkers(workers),
		WithParallelCutoff(cutoff),
	}

	return New(append(base, opts...)...), nil
}
