package errors

import (
	"fmt"
)

// AllocationFailureError occurs when memory for a Dataset or for per-worker state cannot be obtained
type AllocationFailureError struct {
	What string
	Size int
}

// Error returns a textual representation of this AllocationFailureError
func (e AllocationFailureError) Error() string {
	return fmt.Sprintf("Unable to allocate %s of size %d", e.What, e.Size)
}

// WorkerLaunchError occurs when a worker cannot be started
type WorkerLaunchError struct {
	WorkerID int
	Cause    error
}

// Error returns a textual representation of this WorkerLaunchError
func (e WorkerLaunchError) Error() string {
	return fmt.Sprintf("Unable to launch worker %d: %v", e.WorkerID, e.Cause)
}

// Unwrap returns the reason a worker could not be launched
func (e WorkerLaunchError) Unwrap() error {
	return e.Cause
}

// VerificationMismatchError occurs when a parallel total disagrees with its sequential recomputation
type VerificationMismatchError struct {
	Parallel   int64
	Sequential int64
}

// Error returns a textual representation of this VerificationMismatchError
func (e VerificationMismatchError) Error() string {
	return fmt.Sprintf("Parallel total %d does not match sequential total %d", e.Parallel, e.Sequential)
}

// DatasetTooSmallError occurs when a Dataset does not exceed the configured minimum length
type DatasetTooSmallError struct {
	Length int
	Min    int
}

// Error returns a textual representation of this DatasetTooSmallError
func (e DatasetTooSmallError) Error() string {
	return fmt.Sprintf("Dataset length %d must be greater than %d", e.Length, e.Min)
}

// InvalidRecordError occurs when a line of input cannot be parsed into a Record
type InvalidRecordError struct {
	Line   int
	Reason string
}

// Error returns a textual representation of this InvalidRecordError
func (e InvalidRecordError) Error() string {
	return fmt.Sprintf("Invalid record on line %d: %s", e.Line, e.Reason)
}

// DatasetMutatedError occurs when a Dataset's content changes while it is being reduced
type DatasetMutatedError struct {
	Before uint64
	After  uint64
}

// Error returns a textual representation of this DatasetMutatedError
func (e DatasetMutatedError) Error() string {
	return fmt.Sprintf("Dataset fingerprint changed from %x to %x during reduction", e.Before, e.After)
}
