package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/amp-labs/quicksort/envutil"
	"github.com/amp-labs/quicksort/logger"
	"github.com/amp-labs/quicksort/quicksort"
	"github.com/amp-labs/quicksort/shutdown"
	"github.com/amp-labs/quicksort/telemetry"
	"github.com/amp-labs/quicksort/verify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const appName = "qsort"

var ErrUnknownFormat = errors.New("unknown output format")

type flags struct {
	input     string
	demo      bool
	algorithm string
	pivot     string
	workers   int
	cutoff    int
	low       int
	high      int
	format    string
	verify    bool
	stats     bool
	metrics   bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName + " [integers...]",
		Short: "Sort integers in place with quicksort",
		Long: `Sort integers with a Lomuto-partition quicksort and print them space separated.

Values are taken from the arguments, from --input, from --demo, or from stdin.
Configuration defaults come from QSORT_ALGORITHM, QSORT_PIVOT, QSORT_WORKERS
and QSORT_PARALLEL_CUTOFF; flags override them.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "read a YAML or JSON list of integers from `file`")
	fl.BoolVar(&f.demo, "demo", false, "sort the built-in example array")
	fl.StringVarP(&f.algorithm, "algorithm", "a", string(quicksort.Recursive), "recursive, iterative or parallel")
	fl.StringVarP(&f.pivot, "pivot", "p", string(quicksort.PivotLast), "last or median3")
	fl.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 means GOMAXPROCS)")
	fl.IntVar(&f.cutoff, "cutoff", quicksort.DefaultParallelCutoff, "range length under which parallel sorting stops splitting")
	fl.IntVar(&f.low, "low", 0, "first index of the range to sort")
	fl.IntVar(&f.high, "high", -1, "last index of the range to sort (default: last element)")
	fl.StringVarP(&f.format, "format", "f", formatText, "output format: text or yaml")
	fl.BoolVar(&f.verify, "verify", false, "check that the output is a sorted permutation of the input")
	fl.BoolVar(&f.stats, "stats", false, "print comparison and swap counters to stderr")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics to stderr")

	cmd.MarkFlagsMutuallyExclusive("input", "demo")
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.ConfigureLogging(ctx, appName, logger.WithOutput(cmd.ErrOrStderr()))
	setupTelemetry(ctx)

	runId := uuid.New().String()
	ctx = logger.WithRunId(ctx, runId)
	log := logger.Get(ctx)

	if f.format != formatText && f.format != formatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f.format)
	}

	values, err := readValues(cmd, args, f)
	if err != nil {
		return err
	}

	var stats quicksort.Stats

	opts, err := flagOptions(cmd, f, &stats)
	if err != nil {
		return err
	}

	sorter, err := quicksort.NewFromEnv(ctx, opts...)
	if err != nil {
		return err
	}

	low, high := f.low, f.high
	if !cmd.Flags().Changed("high") {
		high = len(values) - 1
	}

	before := verify.Fingerprint(values)
	start := time.Now()

	if err := sorter.Sort(ctx, values, low, high); err != nil {
		log.Error("sort failed", "error", logger.AnnotateError(err, "low", low, "high", high, "length", len(values)))

		return err
	}

	log.Debug("sort finished", "sorter", sorter.String(), "length", len(values), "elapsed", time.Since(start))

	if f.verify {
		if err := checkResult(before, values, low, high); err != nil {
			log.Error("verification failed", "error", err)

			return err
		}
	}

	return writeResults(cmd, f, runId, sorter, values, before, &stats)
}

// flagOptions turns explicitly set flags into options that override the
// environment.
func flagOptions(cmd *cobra.Command, f *flags, stats *quicksort.Stats) ([]quicksort.Option, error) {
	opts := []quicksort.Option{quicksort.WithStats(stats)}
	changed := cmd.Flags().Changed

	if changed("algorithm") {
		alg, err := quicksort.ParseAlgorithm(f.algorithm)
		if err != nil {
			return nil, err
		}

		opts = append(opts, quicksort.WithAlgorithm(alg))
	}

	if changed("pivot") {
		pivot, err := quicksort.ParsePivot(f.pivot)
		if err != nil {
			return nil, err
		}

		opts = append(opts, quicksort.WithPivot(pivot))
	}

	if changed("workers") {
		opts = append(opts, quicksort.WithWorkers(f.workers))
	}

	if changed("cutoff") {
		opts = append(opts, quicksort.WithParallelCutoff(f.cutoff))
	}

	return opts, nil
}

func readValues(cmd *cobra.Command, args []string, f *flags) ([]int, error) {
	switch {
	case f.demo:
		return demoValues(), nil
	case f.input != "":
		return readFile(f.input)
	case len(args) > 0:
		return parseInts(args)
	default:
		return readWords(cmd.InOrStdin())
	}
}

// checkResult verifies the sorted range and that nothing was lost or
// invented anywhere in the sequence.
func checkResult(before verify.Print, values []int, low, high int) error {
	if low == 0 && high == len(values)-1 {
		return verify.Check(before, values)
	}

	if err := verify.CheckSorted(values, low, high); err != nil {
		return err
	}

	return verify.CheckPermutation(before, verify.Fingerprint(values))
}

func writeResults(
	cmd *cobra.Command,
	f *flags,
	runId string,
	sorter *quicksort.Sorter,
	values []int,
	before verify.Print,
	stats *quicksort.Stats,
) error {
	out := cmd.OutOrStdout()

	switch f.format {
	case formatYAML:
		rep := report{
			RunId:     runId,
			Algorithm: sorter.Algorithm(),
			Pivot:     sorter.Pivot(),
			Sorted:    values,
		}

		if f.verify {
			rep.Fingerprint = &before
		}

		if f.stats {
			snap := stats.Snapshot()
			rep.Stats = &snap
		}

		if err := writeYAML(out, rep); err != nil {
			return err
		}
	default:
		if err := writeText(out, values); err != nil {
			return err
		}
	}

	return writeDiagnostics(cmd.ErrOrStderr(), f, len(values), stats)
}

func writeDiagnostics(w io.Writer, f *flags, length int, stats *quicksort.Stats) error {
	if f.stats && f.format == formatText {
		if err := writeStats(w, length, stats.Snapshot()); err != nil {
			return err
		}
	}

	if f.metrics {
		return writeMetrics(w)
	}

	return nil
}

// setupTelemetry starts tracing when OTEL_ENABLED is set. Failures only
// disable tracing; sorting still works.
func setupTelemetry(ctx context.Context) {
	env := envutil.String(ctx, "QSORT_ENV", envutil.Default("local")).ValueOrElse("local")

	cfg, err := telemetry.LoadConfigFromEnv(ctx, env)
	if err != nil {
		logger.Get(ctx).Warn("invalid telemetry configuration, tracing disabled", "error", err)

		return
	}

	if err := telemetry.Initialize(ctx, cfg); err != nil {
		logger.Get(ctx).Warn("failed to initialize tracing", "error", err)

		return
	}

	shutdown.BeforeShutdown(func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			logger.Get().Warn("failed to flush traces", "error", err)
		}
	})
}
