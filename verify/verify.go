// Package verify cross-checks a parallel total against a sequential recomputation.
package verify

import (
	"time"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	terrors "github.com/go-sif/tally/errors"
)

// Sequential recomputes the total of a Dataset in a single loop, returning the total
// and the wall time the loop took
func Sequential(ds tally.Dataset) (int64, time.Duration) {
	start := time.Now()
	var total int64
	for _, r := range ds.Window(0, ds.Len()) {
		total += int64(r.Value)
	}
	return total, time.Since(start)
}

// Result is the outcome of a verification pass
type Result struct {
	Verification    tally.Verification
	SequentialTotal int64
	SequentialTime  time.Duration
}

// Check compares a parallel total against a sequential recomputation. A disagreement is
// reported as Mismatch together with a VerificationMismatchError. Check also confirms
// that the Dataset's content still matches the fingerprint taken at construction, and
// returns a DatasetMutatedError otherwise.
func Check(ds tally.Dataset, parallelTotal int64) (*Result, error) {
	seqTotal, elapsed := Sequential(ds)
	res := &Result{
		Verification:    tally.Match,
		SequentialTotal: seqTotal,
		SequentialTime:  elapsed,
	}
	if after := dataset.Fingerprint(ds.Window(0, ds.Len())); after != ds.Fingerprint() {
		res.Verification = tally.Mismatch
		return res, terrors.DatasetMutatedError{Before: ds.Fingerprint(), After: after}
	}
	if seqTotal != parallelTotal {
		res.Verification = tally.Mismatch
		return res, terrors.VerificationMismatchError{Parallel: parallelTotal, Sequential: seqTotal}
	}
	return res, nil
}
