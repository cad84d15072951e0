package bench

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/kabu1204/go-sortbench/dataset"
	"github.com/kabu1204/go-sortbench/optional"
	"github.com/kabu1204/go-sortbench/types"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "bench")

var ErrNotSorted = errors.New("output not sorted")

// Result is the outcome of one algorithm on one distribution.
type Result[E any] struct {
	Algorithm    string
	Distribution dataset.Kind
	Lines        int
	Elapsed      time.Duration
	Comparisons  optional.Optional[int]
	Output       []E // set when the runner keeps outputs
}

// Runner runs every algorithm against every distribution, each run on its
// own copy of the input.
type Runner[E any] struct {
	Algorithms []Algorithm[E]
	Compare    types.Comparator[E]
	Workers    int  // concurrent runs, values below 1 mean 1
	Verify     bool // fail with ErrNotSorted when an output is out of order
	KeepOutput bool
}

// Run returns results ordered by distribution, then algorithm. It stops
// submitting runs once ctx is done.
func (r *Runner[E]) Run(ctx context.Context, dists []dataset.Distribution[E]) ([]Result[E], error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "creating worker pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	results := make([]Result[E], len(dists)*len(r.Algorithms))
	i := 0
submit:
	for _, d := range dists {
		for _, alg := range r.Algorithms {
			if err := ctx.Err(); err != nil {
				fail(errors.Wrap(err, "benchmark interrupted"))
				break submit
			}

			slot, d, alg := i, d, alg
			i++
			wg.Add(1)
			err := pool.Submit(func() {
				defer wg.Done()
				res, err := r.runOne(alg, d)
				if err != nil {
					fail(err)
					return
				}
				results[slot] = res
			})
			if err != nil {
				wg.Done()
				fail(errors.Wrap(err, "submitting run"))
				break submit
			}
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func (r *Runner[E]) runOne(alg Algorithm[E], d dataset.Distribution[E]) (res Result[E], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("%s on %s: %v", alg.Name, d.Kind, p)
		}
	}()

	work := slices.Clone(d.Data)

	start := time.Now()
	comparisons := alg.Run(work, r.Compare)
	elapsed := time.Since(start)
	if comparisons == nil {
		comparisons = optional.Empty[int]()
	}

	if r.Verify && !types.IsSorted(work, r.Compare) {
		return res, errors.Wrapf(ErrNotSorted, "%s on %s", alg.Name, d.Kind)
	}

	fields := logrus.Fields{
		"algorithm":    alg.Name,
		"distribution": d.Kind,
		"elapsed":      elapsed,
	}
	if !comparisons.IsNone() {
		fields["comparisons"] = comparisons.Get()
	}
	log.WithFields(fields).Debug("run finished")

	res = Result[E]{
		Algorithm:    alg.Name,
		Distribution: d.Kind,
		Lines:        len(d.Data),
		Elapsed:      elapsed,
		Comparisons:  comparisons,
	}
	if r.KeepOutput {
		res.Output = work
	}
	return res, nil
}
