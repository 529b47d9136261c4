package testing

import (
	"context"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	"github.com/go-sif/tally/engine"
	"github.com/go-sif/tally/logging"
)

// RunGenerated generates n Records and runs them through a quiet Engine
func RunGenerated(ctx context.Context, n int, conf *dataset.GenerateConf, opts *engine.Options) (*tally.Report, *dataset.Dataset, error) {
	ds, err := dataset.Generate(n, conf)
	if err != nil {
		return nil, nil, err
	}
	report, err := RunDataset(ctx, ds, opts)
	return report, ds, err
}

// RunDataset runs a Dataset through a quiet Engine
func RunDataset(ctx context.Context, ds tally.Dataset, opts *engine.Options) (*tally.Report, error) {
	if opts == nil {
		opts = &engine.Options{}
	} else {
		opts = engine.CloneOptions(opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return engine.Run(ctx, ds, opts)
}
