package tally

import (
	"context"
	"io"
)

// A Parser turns raw input into Records, preserving input order
type Parser interface {
	Parse(r io.Reader) ([]Record, error)
}

// A DataSource is the input boundary of Tally: it produces the ordered Records
// from which a Dataset is constructed.
type DataSource interface {
	Load(ctx context.Context) ([]Record, error)
}
