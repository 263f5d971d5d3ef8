package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amp-labs/quicksort/quicksort"
	"github.com/amp-labs/quicksort/verify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// writeText prints every value followed by a space, then a newline.
func writeText(w io.Writer, values []int) error {
	buf := make([]byte, 0, len(values)*4) //nolint:mnd

	for _, v := range values {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
	}

	buf = append(buf, '\n')

	_, err := w.Write(buf)

	return err
}

type report struct {
	RunId       string                   `yaml:"runId"`
	Algorithm   quicksort.Algorithm      `yaml:"algorithm"`
	Pivot       quicksort.Pivot          `yaml:"pivot"`
	Sorted      []int                    `yaml:"sorted,flow"`
	Fingerprint *verify.Print            `yaml:"fingerprint,omitempty"`
	Stats       *quicksort.StatsSnapshot `yaml:"stats,omitempty"`
}

func writeYAML(w io.Writer, r report) error {
	return writeYAMLValue(w, r)
}

func writeYAMLValue(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// writeStats prints the counters with locale digit grouping.
func writeStats(w io.Writer, length int, snap quicksort.StatsSnapshot) error {
	p := message.NewPrinter(language.English)

	_, err := p.Fprintf(w, "elements=%d comparisons=%d swaps=%d partitions=%d max_depth=%d\n",
		length, snap.Comparisons, snap.Swaps, snap.Partitions, snap.MaxDepth)

	return err
}

// writeMetrics dumps the default Prometheus registry in text exposition
// format.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
