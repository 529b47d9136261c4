package engine

import (
	"github.com/go-sif/tally"
	"github.com/go-sif/tally/accumulators"
	"github.com/go-sif/tally/logging"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultNumWorkers is the fixed worker count used unless configured otherwise
	DefaultNumWorkers = 10
	// MaxNumWorkers bounds the per-run worker state the coordinator will allocate
	MaxNumWorkers = 1 << 16
)

// Options configure an Engine
type Options struct {
	NumWorkers          int                      // the number of workers (and Ranges) per run. Defaults to 10.
	MaxConcurrency      int                      // the number of workers allowed to run at once. Defaults to NumWorkers.
	CancelCheckInterval int                      // how many Records a worker reduces between checks for cancellation. Defaults to 4096.
	AccumulatorFactory  tally.AccumulatorFactory // produces the Accumulator for each run. Defaults to accumulators.NewSum.
	Logger              *logrus.Logger           // destination for log messages. Defaults to an INFO-level logger on stderr.
	ReportCacheSize     int                      // the number of verified Reports to retain, keyed by Dataset fingerprint. Defaults to 0 (no caching).
	StatisticsHandler   StatisticsHandler        // if set, receives the statistics of every run which was not served from the cache
}

// StatisticsHandler receives the statistics of a finished run, successful or not
type StatisticsHandler func(runID string, stats tally.RuntimeStatistics)

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	return &Options{
		NumWorkers:          opts.NumWorkers,
		MaxConcurrency:      opts.MaxConcurrency,
		CancelCheckInterval: opts.CancelCheckInterval,
		AccumulatorFactory:  opts.AccumulatorFactory,
		Logger:              opts.Logger,
		ReportCacheSize:     opts.ReportCacheSize,
		StatisticsHandler:   opts.StatisticsHandler,
	}
}

func ensureDefaultOptionsValues(opts *Options) {
	if opts.NumWorkers == 0 {
		opts.NumWorkers = DefaultNumWorkers
	}
	if opts.MaxConcurrency == 0 {
		opts.MaxConcurrency = opts.NumWorkers
	}
	if opts.CancelCheckInterval == 0 {
		opts.CancelCheckInterval = 4096
	}
	if opts.AccumulatorFactory == nil {
		opts.AccumulatorFactory = accumulators.NewSum
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(logging.InfoLevel)
	}
}
