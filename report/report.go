// Package report writes benchmark results to the console table, the
// analysis CSV and the sorted output file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/kabu1204/go-sortbench/bench"
	"github.com/kabu1204/go-sortbench/dataset"
	"github.com/pkg/errors"
)

const (
	MetricTime        = "Time"
	MetricComparisons = "Comparisons"

	rowFormat = "%-20s %-15s %-20s %-20s %-10s\n"
)

type row struct {
	algorithm string
	kind      dataset.Kind
	metric    string
	value     int64
	lines     int
}

// rows flattens results: per distribution, a Time row for every run followed
// by a Comparisons row for every run that counted.
func rows[E any](results []bench.Result[E]) []row {
	var out []row
	for start := 0; start < len(results); {
		end := start
		for end < len(results) && results[end].Distribution == results[start].Distribution {
			end++
		}
		group := results[start:end]
		for _, res := range group {
			out = append(out, row{res.Algorithm, res.Distribution, MetricTime, res.Elapsed.Nanoseconds(), res.Lines})
		}
		for _, res := range group {
			if res.Comparisons != nil && !res.Comparisons.IsNone() {
				out = append(out, row{res.Algorithm, res.Distribution, MetricComparisons, int64(res.Comparisons.Get()), res.Lines})
			}
		}
		start = end
	}
	return out
}

// Console prints a fixed-width table, times in nanoseconds.
func Console[E any](w io.Writer, results []bench.Result[E]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, rowFormat, "Algorithm", "List Type", "Metric", "Value", "Lines")
	for _, r := range rows(results) {
		fmt.Fprintf(bw, rowFormat, r.algorithm, r.kind, r.metric, humanize.Comma(r.value), fmt.Sprint(r.lines))
	}
	return errors.Wrap(bw.Flush(), "writing console report")
}

// Analysis appends one "algorithm,list type,lines,metric,value" line per row.
func Analysis[E any](w io.Writer, results []bench.Result[E]) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows(results) {
		fmt.Fprintf(bw, "%s,%s,%d,%s,%d\n", r.algorithm, r.kind, r.lines, r.metric, r.value)
	}
	return errors.Wrap(bw.Flush(), "writing analysis")
}

// Sorted writes every kept output, one element per line, in result order.
func Sorted[E any](w io.Writer, results []bench.Result[E]) error {
	bw := bufio.NewWriter(w)
	for _, res := range results {
		for _, e := range res.Output {
			fmt.Fprintln(bw, e)
		}
	}
	return errors.Wrap(bw.Flush(), "writing sorted output")
}

type Total struct {
	Algorithm string
	Runs      int
	Elapsed   time.Duration
}

// Summary totals elapsed time per algorithm, ordered by algorithm name.
func Summary[E any](results []bench.Result[E]) []Total {
	totals := treemap.NewWithStringComparator()
	for _, res := range results {
		t := Total{Algorithm: res.Algorithm}
		if v, ok := totals.Get(res.Algorithm); ok {
			t = v.(Total)
		}
		t.Runs++
		t.Elapsed += res.Elapsed
		totals.Put(res.Algorithm, t)
	}

	out := make([]Total, 0, totals.Size())
	it := totals.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Total))
	}
	return out
}
