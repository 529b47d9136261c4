package stats

import (
	"testing"
	"time"

	"github.com/go-sif/tally"
	"github.com/stretchr/testify/require"
)

var _ tally.RuntimeStatistics = &RunStatistics{}

func TestWorkerStats(t *testing.T) {
	rs := &RunStatistics{}
	rs.Start(4)
	rs.EndWorker(0, 2*time.Millisecond, 10)
	rs.EndWorker(1, 4*time.Millisecond, 10)
	rs.EndWorker(2, 4*time.Millisecond, 10)
	rs.EndWorker(3, 6*time.Millisecond, 9)
	rs.Finish()

	ws := rs.GetWorkerStats()
	require.Equal(t, 4*time.Millisecond, ws.Mean)
	require.Equal(t, 2*time.Millisecond, ws.Min)
	require.Equal(t, 6*time.Millisecond, ws.Max)
	require.True(t, ws.StdDev > 0)
	require.Equal(t, []int64{10, 10, 10, 9}, rs.GetNumRecordsProcessed())
	require.Equal(t, rs.GetRuntime(), rs.GetRuntime())
}

func TestSingleWorkerStats(t *testing.T) {
	rs := &RunStatistics{}
	rs.Start(1)
	rs.EndWorker(0, time.Second, 1)
	ws := rs.GetWorkerStats()
	require.Equal(t, time.Second, ws.Mean)
	require.Zero(t, ws.StdDev)
}

func TestSpeedup(t *testing.T) {
	rs := &RunStatistics{}
	require.Zero(t, rs.Speedup())
	rs.SetParallelTime(250 * time.Millisecond)
	rs.SetSequentialTime(time.Second)
	require.InDelta(t, 4.0, rs.Speedup(), 1e-9)
}
