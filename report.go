package tally

import "time"

// Verification is the outcome of comparing a parallel total with its sequential recomputation
type Verification int

const (
	// Unverified indicates that no verification pass has run
	Unverified Verification = iota
	// Match indicates that the parallel and sequential totals are identical
	Match
	// Mismatch indicates that the parallel and sequential totals disagree
	Mismatch
)

// String returns the textual representation of this Verification
func (v Verification) String() string {
	switch v {
	case Match:
		return "MATCH"
	case Mismatch:
		return "MISMATCH"
	default:
		return "UNVERIFIED"
	}
}

// MarshalText implements encoding.TextMarshaler
func (v Verification) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// PartialResult is produced exactly once by each worker of a run
type PartialResult struct {
	WorkerID int
	Range    Range
	Sum      int64
	Elapsed  time.Duration
}

// Tally is a count and a sum over a group of Records
type Tally struct {
	Count int64
	Sum   int64
}

// CategoryTally groups Records by Category
type CategoryTally map[Category]Tally

// SectorTally groups Records by Sector
type SectorTally map[Sector]Tally

// WorkerStats summarizes the elapsed times of the workers of a run
type WorkerStats struct {
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Report is the output boundary of Tally: everything a consumer needs from one run.
// A Report returned alongside an error is for diagnostics only and must not be used
// downstream.
type Report struct {
	RunID           string
	Workers         int
	Total           int64
	PerWorker       []PartialResult
	Verification    Verification
	SequentialTotal int64
	Categories      CategoryTally
	Sectors         SectorTally
	ParallelTime    time.Duration
	SequentialTime  time.Duration
	Speedup         float64 // SequentialTime / ParallelTime
	WorkerStats     WorkerStats
	Fingerprint     uint64
	Cached          bool // true iff this Report was served from the report cache
}

// PartialSum returns the sum of all PerWorker sums
func (r *Report) PartialSum() int64 {
	var total int64
	for _, p := range r.PerWorker {
		total += p.Sum
	}
	return total
}
