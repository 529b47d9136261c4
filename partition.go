package tally

import "fmt"

// A Range is a half-open interval [Start, End) of Dataset indices, assigned to exactly one worker
type Range struct {
	Start int
	End   int
}

// Len returns the number of Records covered by this Range
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty returns true iff this Range covers no Records
func (r Range) Empty() bool {
	return r.Start == r.End
}

// String returns a textual representation of this Range
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
