package envutil

import (
	"context"

	"github.com/amp-labs/quicksort/contexts"
)

type envContextKey string

// WithEnvOverride makes readers created with ctx see value for key,
// regardless of the process environment. Mostly useful in tests, where
// t.Setenv would rule out t.Parallel.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
