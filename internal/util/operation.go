package util

import (
	"fmt"

	"github.com/go-sif/tally"
)

// RangeOperation reduces a single Range of a Dataset to a partial sum
type RangeOperation func(r tally.Range) (int64, error)

// SafeRangeOperation wraps a RangeOperation such that panics are recovered and nice error messages are constructed
func SafeRangeOperation(workerID int, op RangeOperation) (safeOp RangeOperation) {
	return func(r tally.Range) (sum int64, err error) {
		defer func() {
			if p := recover(); p != nil {
				sum = 0
				if anErr, ok := p.(error); ok {
					err = fmt.Errorf("Worker %d Panic: %w\nRange: %s\n%s", workerID, anErr, r, GetTrace())
				} else {
					err = fmt.Errorf("Worker %d Panic: %v\nRange: %s\n%s", workerID, p, r, GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Worker %d Error: %w\nRange: %s", workerID, err, r)
			}
		}()
		sum, err = op(r)
		return
	}
}
