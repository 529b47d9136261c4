package rcache

import (
	"fmt"

	"github.com/go-sif/tally"
)

// Key identifies a run whose Report may be reused
type Key struct {
	Fingerprint uint64
	Length      int
	Workers     int
}

// String returns a textual representation of this Key, used for per-key locking
func (k Key) String() string {
	return fmt.Sprintf("%016x/%d/%d", k.Fingerprint, k.Length, k.Workers)
}

// ReportCache is a cache for verified Reports
type ReportCache interface {
	// GetOrCompute returns the cached Report for key, or runs compute and caches its
	// result if that result was verified. Concurrent calls for the same key are serialized.
	GetOrCompute(key Key, compute func() (*tally.Report, error)) (*tally.Report, error)
	CurrentSize() int
	Purge()
}
