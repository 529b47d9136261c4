package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
	"github.com/go-sif/tally/internal/stats"
	iutil "github.com/go-sif/tally/internal/util"
	"github.com/go-sif/tally/partition"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// coordinator launches one worker per Range, joins them all, then reads the Accumulator
type coordinator struct {
	opts *Options
	log  *logrus.Entry
}

// reduction is the outcome of the parallel phase of a run
type reduction struct {
	total    int64
	partials []tally.PartialResult
	elapsed  time.Duration
}

// allocPartials obtains per-worker result storage, converting allocation failures into errors
func allocPartials(n int) (partials []tally.PartialResult, err error) {
	if n < 1 || n > MaxNumWorkers {
		return nil, terrors.AllocationFailureError{What: "worker state", Size: n}
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				partials = nil
				err = terrors.AllocationFailureError{What: "worker state", Size: n}
				return
			}
			panic(r)
		}
	}()
	return make([]tally.PartialResult, n), nil
}

// reduce runs the parallel phase over a Dataset. Every launched worker has been joined
// by the time reduce returns, whatever the outcome.
func (c *coordinator) reduce(ctx context.Context, ds tally.Dataset, statsTracker *stats.RunStatistics) (*reduction, error) {
	plan, err := partition.Plan(ds.Len(), c.opts.NumWorkers)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to partition dataset")
	}
	partials, err := allocPartials(len(plan))
	if err != nil {
		return nil, err
	}
	if c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		if err := partition.Validate(plan, ds.Len()); err != nil {
			c.log.WithError(err).Warn("Partition plan is malformed")
		}
	}

	acc := c.opts.AccumulatorFactory()
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	slots := semaphore.NewWeighted(int64(c.opts.MaxConcurrency))
	var wg sync.WaitGroup
	var workerErrsLock sync.Mutex
	var workerErrs *multierror.Error
	var launchErr error

	start := time.Now()
	for i, r := range plan {
		if err := ctx.Err(); err != nil {
			launchErr = terrors.WorkerLaunchError{WorkerID: i, Cause: err}
			break
		}
		if err := slots.Acquire(ctx, 1); err != nil {
			launchErr = terrors.WorkerLaunchError{WorkerID: i, Cause: err}
			break
		}
		w := &worker{
			id:         i,
			span:       r,
			ds:         ds,
			acc:        acc,
			checkEvery: c.opts.CancelCheckInterval,
			log:        c.log,
		}
		c.log.Debugf("Launching worker %d over %s", i, r)
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			defer slots.Release(1)
			res, err := w.run(workerCtx)
			if err != nil {
				workerErrsLock.Lock()
				workerErrs = multierror.Append(workerErrs, err)
				workerErrsLock.Unlock()
				// one failed worker dooms the run
				cancel()
				return
			}
			partials[w.id] = res
			statsTracker.EndWorker(w.id, res.Elapsed, w.span.Len())
		}(w)
	}
	if launchErr != nil {
		// release the workers which did start
		cancel()
	}
	wg.Wait()
	elapsed := time.Since(start)

	if launchErr != nil {
		c.log.WithError(launchErr).Error("Aborting run after launch failure")
		return nil, launchErr
	}
	if err := workerErrs.ErrorOrNil(); err != nil {
		c.log.Errorf("%d worker(s) failed:\n%s", len(workerErrs.Errors), iutil.FormatMultiError(workerErrs.Errors))
		return nil, errors.Wrap(err, "Parallel reduction failed")
	}
	return &reduction{
		total:    acc.Total(),
		partials: partials,
		elapsed:  elapsed,
	}, nil
}
