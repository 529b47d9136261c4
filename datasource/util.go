// Package datasource holds what the concrete DataSources have in common
package datasource

import (
	"context"
	"io"

	"github.com/go-sif/tally"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Opener opens one input of a DataSource, along with a name for error messages
type Opener struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// ParseAll parses every input concurrently and concatenates the resulting Records in
// the order of openers, so that the same inputs always produce the same Dataset
func ParseAll(ctx context.Context, parser tally.Parser, openers []Opener) ([]tally.Record, error) {
	parsed := make([][]tally.Record, len(openers))
	g, gctx := errgroup.WithContext(ctx)
	for i, o := range openers {
		i, o := i, o
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := o.Open()
			if err != nil {
				return errors.Wrapf(err, "Unable to open %s", o.Name)
			}
			defer r.Close()
			records, err := parser.Parse(r)
			if err != nil {
				return errors.Wrapf(err, "Unable to parse %s", o.Name)
			}
			parsed[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := 0
	for _, records := range parsed {
		total += len(records)
	}
	all := make([]tally.Record, 0, total)
	for _, records := range parsed {
		all = append(all, records...)
	}
	return all, nil
}
