// Package dataset provides the immutable, owned Dataset which Tally reduces, along with
// helpers to construct one from a DataSource or from synthetic data.
package dataset

import (
	"context"
	"runtime"

	"github.com/go-sif/tally"
	terrors "github.com/go-sif/tally/errors"
	"github.com/pkg/errors"
)

// DefaultMinLength is the length a Dataset must exceed unless configured otherwise
const DefaultMinLength = 1000

// Dataset is an ordered sequence of Records which is never mutated after construction
type Dataset struct {
	records     []tally.Record
	fingerprint uint64
}

// New constructs a Dataset, taking ownership of records. The caller must not modify
// records afterwards. Returns a DatasetTooSmallError unless len(records) > minLength.
func New(records []tally.Record, minLength int) (*Dataset, error) {
	if len(records) <= minLength {
		return nil, terrors.DatasetTooSmallError{Length: len(records), Min: minLength}
	}
	return &Dataset{
		records:     records,
		fingerprint: Fingerprint(records),
	}, nil
}

// Load constructs a Dataset from the Records produced by a DataSource
func Load(ctx context.Context, src tally.DataSource, minLength int) (*Dataset, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to load records from data source")
	}
	return New(records, minLength)
}

// Len returns the number of Records in this Dataset
func (d *Dataset) Len() int {
	return len(d.records)
}

// Window returns a borrowed view of the Records in [start, end). The view's capacity
// is clipped so that appending to it can never reach a neighbouring window.
func (d *Dataset) Window(start, end int) []tally.Record {
	return d.records[start:end:end]
}

// Fingerprint returns the content hash computed when this Dataset was constructed
func (d *Dataset) Fingerprint() uint64 {
	return d.fingerprint
}

// allocRecords obtains storage for n Records, converting allocation failures into errors
func allocRecords(n int, maxRecords int) (records []tally.Record, err error) {
	if n < 0 || (maxRecords > 0 && n > maxRecords) {
		return nil, terrors.AllocationFailureError{What: "dataset", Size: n}
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				records = nil
				err = terrors.AllocationFailureError{What: "dataset", Size: n}
				return
			}
			panic(r)
		}
	}()
	return make([]tally.Record, n), nil
}
