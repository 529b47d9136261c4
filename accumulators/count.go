package accumulators

import (
	"sync/atomic"

	"github.com/go-sif/tally"
)

// Counter wraps an AccumulatorFactory so that every Accumulator it produces also
// counts how many times Add was called
func Counter(facc tally.AccumulatorFactory) func() *Count {
	return func() *Count {
		return &Count{Accumulator: facc()}
	}
}

// Count counts the partial sums folded into an underlying Accumulator
type Count struct {
	tally.Accumulator
	count uint64
}

// GetCount returns the number of times Add has been called
func (a *Count) GetCount() uint64 {
	return atomic.LoadUint64(&a.count)
}

// Add folds a partial sum into the underlying Accumulator
func (a *Count) Add(partial int64) {
	a.Accumulator.Add(partial)
	atomic.AddUint64(&a.count, 1)
}
