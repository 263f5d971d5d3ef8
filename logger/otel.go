package logger

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/amp-labs/quicksort/envutil"
	"github.com/amp-labs/quicksort/shutdown"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// newOTelHandler builds an slog handler that exports records over
// OTLP/HTTP. OTEL_EXPORTER_OTLP_LOGS_ENDPOINT selects the collector; when
// unset the exporter falls back to its own defaults. The provider is
// flushed by a shutdown hook.
func newOTelHandler(ctx context.Context, app string) (slog.Handler, error) {
	var opts []otlploghttp.Option

	endpoint, err := envutil.URL(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT",
		envutil.Default[*url.URL](nil),
		envutil.Validate(envutil.HTTPURL)).Value()
	if err != nil {
		return nil, err
	}

	if endpoint != nil {
		opts = append(opts, otlploghttp.WithEndpointURL(endpoint.String()))
	}

	exporter, err := otlploghttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	shutdown.BeforeShutdown(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Warn("failed to flush OpenTelemetry logs", "error", err)
		}
	})

	return otelslog.NewHandler(app, otelslog.WithLoggerProvider(provider)), nil
}
