package tally

// An Accumulator is the single piece of mutable state shared by the workers of a run.
// Every worker calls Add exactly once, with its partial sum; Total is read by the
// coordinator only after all workers have finished. Implementations are responsible
// for making Add safe for concurrent use.
type Accumulator interface {
	Add(partial int64) // Add folds a worker's partial sum into this Accumulator
	Total() int64      // Total returns the accumulated value
}

// AccumulatorFactory produces a fresh, zeroed Accumulator for each run
type AccumulatorFactory func() Accumulator
