// Package partition divides a Dataset into contiguous, near-equal Ranges, one per worker.
package partition

import (
	"fmt"

	"github.com/go-sif/tally"
)

// Plan divides n Records among w workers. The first n%w Ranges receive one extra
// Record; when n < w the trailing Ranges are empty. Ranges are returned in order and
// together cover exactly [0, n).
func Plan(n int, w int) ([]tally.Range, error) {
	if w < 1 {
		return nil, fmt.Errorf("worker count %d must be at least 1", w)
	}
	if n < 0 {
		return nil, fmt.Errorf("dataset length %d must not be negative", n)
	}
	base := n / w
	remainder := n % w
	plan := make([]tally.Range, w)
	start := 0
	for i := range plan {
		size := base
		if i < remainder {
			size++
		}
		plan[i] = tally.Range{Start: start, End: start + size}
		start += size
	}
	return plan, nil
}

// Validate checks that plan is a well-formed partitioning of [0, n): contiguous,
// ordered, gap-free, and with Range lengths differing by at most one.
func Validate(plan []tally.Range, n int) error {
	if len(plan) == 0 {
		return fmt.Errorf("plan has no ranges")
	}
	if plan[0].Start != 0 {
		return fmt.Errorf("first range %s does not start at 0", plan[0])
	}
	if last := plan[len(plan)-1]; last.End != n {
		return fmt.Errorf("last range %s does not end at %d", last, n)
	}
	minLen, maxLen := plan[0].Len(), plan[0].Len()
	for i, r := range plan {
		if r.End < r.Start {
			return fmt.Errorf("range %d %s is inverted", i, r)
		}
		if i > 0 && plan[i-1].End != r.Start {
			return fmt.Errorf("range %d %s does not follow range %d %s", i, r, i-1, plan[i-1])
		}
		if r.Len() < minLen {
			minLen = r.Len()
		}
		if r.Len() > maxLen {
			maxLen = r.Len()
		}
	}
	if maxLen-minLen > 1 {
		return fmt.Errorf("range lengths differ by %d", maxLen-minLen)
	}
	return nil
}
