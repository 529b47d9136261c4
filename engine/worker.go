package engine

import (
	"context"
	"time"

	"github.com/go-sif/tally"
	iutil "github.com/go-sif/tally/internal/util"
	"github.com/sirupsen/logrus"
)

// worker reduces exactly one Range of a Dataset and folds the result into the run's Accumulator
type worker struct {
	id         int
	span       tally.Range
	ds         tally.Dataset
	acc        tally.Accumulator
	checkEvery int
	log        *logrus.Entry
}

// reduce sums the Range without holding any lock; no other worker reads these indices
func (w *worker) reduce(ctx context.Context, r tally.Range) (int64, error) {
	var sum int64
	for i, rec := range w.ds.Window(r.Start, r.End) {
		if i%w.checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		sum += int64(rec.Value)
	}
	return sum, nil
}

// run reduces this worker's Range, then adds the partial sum to the Accumulator exactly once.
// A cancelled or failed worker never touches the Accumulator.
func (w *worker) run(ctx context.Context) (tally.PartialResult, error) {
	res := tally.PartialResult{WorkerID: w.id, Range: w.span}
	op := iutil.SafeRangeOperation(w.id, func(r tally.Range) (int64, error) {
		start := time.Now()
		sum, err := w.reduce(ctx, r)
		res.Elapsed = time.Since(start)
		if err != nil {
			return 0, err
		}
		w.acc.Add(sum)
		return sum, nil
	})
	sum, err := op(w.span)
	if err != nil {
		return res, err
	}
	res.Sum = sum
	w.log.WithFields(logrus.Fields{
		"worker": w.id,
		"range":  w.span.String(),
		"sum":    sum,
	}).Debugf("Worker %d finished in %v", w.id, res.Elapsed)
	return res, nil
}
