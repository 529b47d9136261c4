package tally

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a reduction run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the run
	GetRuntime() time.Duration
	// GetWorkerRuntimes returns the recorded elapsed time of each worker, indexed by worker ID
	GetWorkerRuntimes() []time.Duration
	// GetNumRecordsProcessed returns the number of Records reduced so far, counted by worker
	GetNumRecordsProcessed() []int64
	// GetWorkerStats summarizes worker runtimes
	GetWorkerStats() WorkerStats
}
