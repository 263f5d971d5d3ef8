// Package envutil reads typed configuration from environment variables.
//
//	workers := envutil.Int[int](ctx, "QSORT_WORKERS", envutil.Default(4)).ValueOrElse(4)
//
// Every reader first consults overrides stored in the context (see
// WithEnvOverride) and then the process environment.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// get returns a Reader for key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{key: key, present: ok, value: val}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads a raw string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a boolean in any form strconv.ParseBool accepts.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), parseBool), opts)
}

// Int reads a base-10 integer into any signed integer type. Values that do
// not fit in I are rejected rather than truncated.
func Int[I ~int | ~int8 | ~int16 | ~int32 | ~int64](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	bits := int(unsafe.Sizeof(I(0))) * 8 //nolint:mnd

	rdr := Map(get(ctx, key), func(s string) (I, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
		if err != nil {
			return 0, err
		}

		return I(n), nil
	})

	return apply(rdr, opts)
}

// Float reads a decimal or scientific floating point number.
func Float(ctx context.Context, key string, opts ...Option[float64]) Reader[float64] {
	rdr := Map(get(ctx, key), func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})

	return apply(rdr, opts)
}

// Duration reads a value such as "5s" or "250ms".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), time.ParseDuration), opts)
}

// URL reads an absolute or relative URL.
func URL(ctx context.Context, key string, opts ...Option[*url.URL]) Reader[*url.URL] {
	return apply(Map(get(ctx, key), url.Parse), opts)
}

// SlogLevel reads one of debug, info, warn or error (any case).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func parseSlogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}
