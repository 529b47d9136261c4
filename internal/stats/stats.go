package stats

import (
	"math"
	"time"

	"github.com/go-sif/tally"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunStatistics contains statistics about a reduction run. Each worker writes only
// its own slot, so EndWorker may be called concurrently for distinct worker IDs.
type RunStatistics struct {
	started          bool
	finished         bool
	startTime        time.Time
	totalRuntime     time.Duration
	workerRuntimes   []time.Duration
	recordsProcessed []int64
	parallelTime     time.Duration
	sequentialTime   time.Duration
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start(numWorkers int) {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.workerRuntimes = make([]time.Duration, numWorkers)
		rs.recordsProcessed = make([]int64, numWorkers)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	if rs.started && !rs.finished {
		rs.totalRuntime = time.Since(rs.startTime)
		rs.finished = true
	}
}

// EndWorker records the elapsed time and number of Records reduced by a worker
func (rs *RunStatistics) EndWorker(workerID int, elapsed time.Duration, numRecords int) {
	rs.workerRuntimes[workerID] = elapsed
	rs.recordsProcessed[workerID] = int64(numRecords)
}

// SetParallelTime records the wall time of the parallel phase, from first launch to last join
func (rs *RunStatistics) SetParallelTime(d time.Duration) {
	rs.parallelTime = d
}

// SetSequentialTime records the wall time of the sequential verification pass
func (rs *RunStatistics) SetSequentialTime(d time.Duration) {
	rs.sequentialTime = d
}

// GetParallelTime returns the wall time of the parallel phase
func (rs *RunStatistics) GetParallelTime() time.Duration {
	return rs.parallelTime
}

// GetSequentialTime returns the wall time of the sequential verification pass
func (rs *RunStatistics) GetSequentialTime() time.Duration {
	return rs.sequentialTime
}

// Speedup returns the ratio of sequential to parallel wall time, or 0 if either is unknown
func (rs *RunStatistics) Speedup() float64 {
	if rs.parallelTime <= 0 || rs.sequentialTime <= 0 {
		return 0
	}
	return float64(rs.sequentialTime) / float64(rs.parallelTime)
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetWorkerRuntimes returns the recorded elapsed time of each worker, indexed by worker ID
func (rs *RunStatistics) GetWorkerRuntimes() []time.Duration {
	return rs.workerRuntimes
}

// GetNumRecordsProcessed returns the number of Records reduced, counted by worker
func (rs *RunStatistics) GetNumRecordsProcessed() []int64 {
	return rs.recordsProcessed
}

// GetWorkerStats summarizes worker runtimes
func (rs *RunStatistics) GetWorkerStats() tally.WorkerStats {
	if len(rs.workerRuntimes) == 0 {
		return tally.WorkerStats{}
	}
	vals := make([]float64, len(rs.workerRuntimes))
	for i, d := range rs.workerRuntimes {
		vals[i] = float64(d)
	}
	mean, stdev := stat.MeanStdDev(vals, nil)
	if math.IsNaN(stdev) {
		stdev = 0
	}
	return tally.WorkerStats{
		Mean:   time.Duration(mean),
		StdDev: time.Duration(stdev),
		Min:    time.Duration(floats.Min(vals)),
		Max:    time.Duration(floats.Max(vals)),
	}
}
