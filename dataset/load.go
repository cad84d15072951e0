// Package dataset reads stock records and derives the sorted, shuffled and
// reversed inputs the benchmark runs on.
package dataset

import (
	"bufio"
	"io"
	"reflect"
	"strings"

	"github.com/kabu1204/go-sortbench/record"
	"github.com/kabu1204/go-sortbench/stream"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "dataset")

// ErrNoData is returned when a source yields no usable record.
var ErrNoData = errors.New("no data available")

type LoadOptions struct {
	Lines     int // stop after this many records, 0 for all
	SkipLines int // raw lines dropped before parsing
	Dedupe    bool
}

type numberedLine struct {
	no   int
	text string
}

type parsedLine struct {
	no  int
	rec record.Record
	err error
}

// lineIterator feeds a stream from a reader one line at a time. It stops
// early once fail is called.
type lineIterator struct {
	scanner *bufio.Scanner
	no      int
	err     error
}

func newLineIterator(r io.Reader) *lineIterator {
	return &lineIterator{scanner: bufio.NewScanner(r)}
}

func (it *lineIterator) Next() (interface{}, bool) {
	if it.err != nil || !it.scanner.Scan() {
		return nil, false
	}
	it.no++
	return numberedLine{no: it.no, text: it.scanner.Text()}, true
}

func (it *lineIterator) Len() int { return -1 }

func (it *lineIterator) fail(err error) {
	if it.err == nil {
		it.err = err
	}
}

func (it *lineIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return errors.Wrap(it.scanner.Err(), "reading records")
}

// Load parses "symbol,price" lines from r. Blank lines and lines without
// exactly two fields are skipped; a price that is not a number aborts the
// load.
func Load(r io.Reader, opts LoadOptions) ([]record.Record, error) {
	src := newLineIterator(r)

	pipeline := stream.From(src).
		Skip(int64(opts.SkipLines)).
		Filter(func(e interface{}) bool {
			return strings.TrimSpace(e.(numberedLine).text) != ""
		}).
		Map(func(e interface{}) interface{} {
			line := e.(numberedLine)
			rec, err := record.Parse(line.text)
			return parsedLine{no: line.no, rec: rec, err: err}
		}).
		Filter(func(e interface{}) bool {
			line := e.(parsedLine)
			switch {
			case line.err == nil:
				return true
			case errors.Cause(line.err) == record.ErrMalformed:
				log.WithField("line", line.no).Debug("skipping malformed line")
			default:
				src.fail(errors.Wrapf(line.err, "line %d", line.no))
			}
			return false
		}).
		Map(func(e interface{}) interface{} { return e.(parsedLine).rec })
	if opts.Dedupe {
		pipeline = pipeline.Distinct(func(e interface{}) string { return e.(record.Record).Symbol })
	}
	if opts.Lines > 0 {
		pipeline = pipeline.Limit(int64(opts.Lines))
	}
	log.WithField("pipeline", pipeline.String()).Debug("loading records")

	records := pipeline.ToSliceOf(reflect.TypeOf(record.Record{})).([]record.Record)
	if err := src.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	log.WithField("records", len(records)).Info("records loaded")
	return records, nil
}
