package envutil_test

import (
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/amp-labs/quicksort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRequired = errors.New("required")

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestString(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		t.Setenv("QSORT_TEST_STRING", "hello")

		reader := envutil.String(t.Context(), "QSORT_TEST_STRING")
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
		assert.True(t, reader.HasValue())
		assert.Equal(t, "QSORT_TEST_STRING=hello", reader.String())
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "QSORT_TEST_STRING_MISSING")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
		assert.Equal(t, "QSORT_TEST_STRING_MISSING=<not set>", reader.String())
	})

	t.Run("with default", func(t *testing.T) {
		t.Parallel()

		value, err := envutil.String(t.Context(), "QSORT_TEST_STRING_MISSING", envutil.Default("default")).Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("if missing", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String(t.Context(), "QSORT_TEST_STRING_MISSING", envutil.IfMissing[string](errRequired))
		_, err := reader.Value()
		require.ErrorIs(t, err, errRequired)
	})
}

func TestContextOverride(t *testing.T) {
	t.Setenv("QSORT_TEST_OVERRIDE", "from-env")

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_OVERRIDE", "from-context")

	assert.Equal(t, "from-context", envutil.String(ctx, "QSORT_TEST_OVERRIDE").ValueOrElse(""))
	assert.Equal(t, "from-env", envutil.String(t.Context(), "QSORT_TEST_OVERRIDE").ValueOrElse(""))
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{" t ", true},
		{"false", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_BOOL", tt.value)

			got, err := envutil.Bool(ctx, "QSORT_TEST_BOOL").Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_BOOL", "maybe")
		reader := envutil.Bool(ctx, "QSORT_TEST_BOOL")

		assert.True(t, reader.HasError())
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		assert.True(t, reader.ValueOrElse(true))
	})
}

func TestInt(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_INT", " 42 ")

	got, err := envutil.Int[int](ctx, "QSORT_TEST_INT").Value()
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got64, err := envutil.Int[int64](ctx, "QSORT_TEST_INT").Value()
	require.NoError(t, err)
	assert.Equal(t, int64(42), got64)

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_INT", "1")

		_, err := envutil.Int[int](ctx, "QSORT_TEST_INT", envutil.Validate(envutil.AtLeast(2))).Value()
		require.ErrorIs(t, err, envutil.ErrOutOfRange)
	})

	t.Run("does not fit the target type", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_INT", "300")

		_, err := envutil.Int[int8](ctx, "QSORT_TEST_INT").Value()
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		require.ErrorIs(t, err, strconv.ErrRange)

		got, err := envutil.Int[int16](ctx, "QSORT_TEST_INT").Value()
		require.NoError(t, err)
		assert.Equal(t, int16(300), got)

		ctx = envutil.WithEnvOverride(ctx, "QSORT_TEST_INT", "-129")
		_, err = envutil.Int[int8](ctx, "QSORT_TEST_INT").Value()
		require.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_INT", "four")

		_, err := envutil.Int[int](ctx, "QSORT_TEST_INT", envutil.Default(4)).Value()
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_DURATION", "250ms")

	got, err := envutil.Duration(ctx, "QSORT_TEST_DURATION").Value()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got)
}

func TestURL(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_URL", "http://collector:4318/v1/traces")

	got, err := envutil.URL(ctx, "QSORT_TEST_URL").Value()
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", got.Host)

	t.Run("http only", func(t *testing.T) {
		t.Parallel()

		for value, ok := range map[string]bool{
			"https://collector:4318": true,
			"http://localhost:4318/": true,
			"collector:4318":         false,
			"/v1/traces":             false,
			"ftp://collector":        false,
		} {
			ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_URL", value)

			_, err := envutil.URL(ctx, "QSORT_TEST_URL", envutil.Validate(envutil.HTTPURL)).Value()
			if ok {
				require.NoError(t, err, value)
			} else {
				require.ErrorIs(t, err, envutil.ErrInvalidURL, value)
			}
		}
	})

	t.Run("unset with nil default", func(t *testing.T) {
		t.Parallel()

		got, err := envutil.URL(t.Context(), "QSORT_TEST_URL_UNSET",
			envutil.Default[*url.URL](nil),
			envutil.Validate(envutil.HTTPURL)).Value()
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
	}

	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_LEVEL", value)

			got, err := envutil.SlogLevel(ctx, "QSORT_TEST_LEVEL").Value()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_LEVEL", "loud")

		_, err := envutil.SlogLevel(ctx, "QSORT_TEST_LEVEL").Value()
		require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_MAP", "abc")

	length, err := envutil.Map(envutil.String(ctx, "QSORT_TEST_MAP"), func(s string) (int, error) {
		return len(s), nil
	}).Value()
	require.NoError(t, err)
	assert.Equal(t, 3, length)

	missing := envutil.Map(envutil.String(ctx, "QSORT_TEST_MAP_MISSING"), func(s string) (int, error) {
		t.Fatal("must not be called for a missing value")

		return 0, nil
	})
	assert.False(t, missing.HasValue())
	assert.Equal(t, 7, missing.WithDefault(7).ValueOrElse(0))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "QSORT_TEST_FLOAT", "0.25")
	unit := envutil.Validate(func(v float64) error {
		if err := envutil.AtLeast(0.0)(v); err != nil {
			return err
		}

		return envutil.AtMost(1.0)(v)
	})

	got, err := envutil.Float(ctx, "QSORT_TEST_FLOAT", unit).Value()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-9)

	ctx = envutil.WithEnvOverride(ctx, "QSORT_TEST_FLOAT", "1.5")
	_, err = envutil.Float(ctx, "QSORT_TEST_FLOAT", unit).Value()
	require.ErrorIs(t, err, envutil.ErrOutOfRange)

	ctx = envutil.WithEnvOverride(ctx, "QSORT_TEST_FLOAT", "half")
	_, err = envutil.Float(ctx, "QSORT_TEST_FLOAT", unit).Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}
