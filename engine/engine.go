package engine

import (
	"context"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/aggregate"
	"github.com/go-sif/tally/dataset"
	"github.com/go-sif/tally/internal/rcache"
	"github.com/go-sif/tally/internal/stats"
	"github.com/go-sif/tally/verify"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Engine performs verified parallel reductions over Datasets. An Engine may be
// reused, and used from multiple goroutines; each Run has its own Accumulator.
type Engine struct {
	opts  *Options
	cache rcache.ReportCache
}

// New creates an Engine. opts may be nil, in which case every default applies.
func New(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = &Options{}
	} else {
		opts = CloneOptions(opts)
	}
	ensureDefaultOptionsValues(opts)
	if opts.NumWorkers < 1 {
		return nil, errors.Errorf("NumWorkers %d must be at least 1", opts.NumWorkers)
	}
	if opts.MaxConcurrency < 1 {
		return nil, errors.Errorf("MaxConcurrency %d must be at least 1", opts.MaxConcurrency)
	}
	if opts.CancelCheckInterval < 1 {
		return nil, errors.Errorf("CancelCheckInterval %d must be at least 1", opts.CancelCheckInterval)
	}
	e := &Engine{opts: opts}
	if opts.ReportCacheSize > 0 {
		cache, err := rcache.NewLRU(opts.ReportCacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	return e, nil
}

// Run is a convenience which creates an Engine and performs a single run with it
func Run(ctx context.Context, ds tally.Dataset, opts *Options) (*tally.Report, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, ds)
}

// Run reduces ds in parallel, verifies the total against a sequential recomputation,
// and aggregates it by category and sector. When verification fails, the Report is
// returned alongside the error for diagnostics only.
func (e *Engine) Run(ctx context.Context, ds tally.Dataset) (*tally.Report, error) {
	if ds == nil {
		return nil, errors.New("Dataset must not be nil")
	}
	if e.cache == nil || ctx.Err() != nil || mutated(ds) {
		// a cached Report is only valid for a live run over unchanged Records
		return e.run(ctx, ds)
	}
	key := rcache.Key{Fingerprint: ds.Fingerprint(), Length: ds.Len(), Workers: e.opts.NumWorkers}
	return e.cache.GetOrCompute(key, func() (*tally.Report, error) {
		return e.run(ctx, ds)
	})
}

// mutated returns true iff ds no longer matches the fingerprint taken at construction
func mutated(ds tally.Dataset) bool {
	return dataset.Fingerprint(ds.Window(0, ds.Len())) != ds.Fingerprint()
}

func (e *Engine) run(ctx context.Context, ds tally.Dataset) (*tally.Report, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "Unable to generate run ID")
	}
	runLog := e.opts.Logger.WithField("run", id.String())
	statsTracker := &stats.RunStatistics{}
	statsTracker.Start(e.opts.NumWorkers)
	defer func() {
		statsTracker.Finish()
		if e.opts.StatisticsHandler != nil {
			e.opts.StatisticsHandler(id.String(), statsTracker)
		}
	}()

	runLog.Infof("Reducing %d records with %d workers", ds.Len(), e.opts.NumWorkers)
	c := &coordinator{opts: e.opts, log: runLog}
	red, err := c.reduce(ctx, ds, statsTracker)
	if err != nil {
		return nil, err
	}
	statsTracker.SetParallelTime(red.elapsed)

	check, verr := verify.Check(ds, red.total)
	statsTracker.SetSequentialTime(check.SequentialTime)
	categories, sectors := aggregate.Tally(ds)
	report := &tally.Report{
		RunID:           id.String(),
		Workers:         e.opts.NumWorkers,
		Total:           red.total,
		PerWorker:       red.partials,
		Verification:    check.Verification,
		SequentialTotal: check.SequentialTotal,
		Categories:      categories,
		Sectors:         sectors,
		ParallelTime:    statsTracker.GetParallelTime(),
		SequentialTime:  statsTracker.GetSequentialTime(),
		Speedup:         statsTracker.Speedup(),
		WorkerStats:     statsTracker.GetWorkerStats(),
		Fingerprint:     ds.Fingerprint(),
	}
	if verr != nil {
		runLog.WithFields(logrus.Fields{
			"parallel":   red.total,
			"sequential": check.SequentialTotal,
		}).Error("Verification failed")
		return report, errors.Wrap(verr, "Verification failed")
	}
	runLog.WithFields(logrus.Fields{
		"total":   report.Total,
		"speedup": report.Speedup,
	}).Infof("Verification: %s", report.Verification)
	return report, nil
}
