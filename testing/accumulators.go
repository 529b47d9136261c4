package testing

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-sif/tally"
)

// DefaultBarrierTimeout bounds how long a LostUpdateAccumulator waits for all parties
const DefaultBarrierTimeout = 5 * time.Second

// LostUpdateAccumulator performs its read-modify-write without exclusion. The first
// parties calls to Add all read the total before any of them writes it back, so every
// update but the last is lost. It is the broken accumulator used to prove that
// verification catches a missing critical section; all accesses are atomic, so the
// race detector stays quiet while the arithmetic still goes wrong.
type LostUpdateAccumulator struct {
	total    int64
	arrived  int32
	parties  int32
	timeout  time.Duration
	released chan struct{}
}

// NewLostUpdateAccumulator returns a LostUpdateAccumulator which interleaves the first
// parties calls to Add. parties should equal the run's NumWorkers, and MaxConcurrency
// must be at least parties. If the parties do not all arrive within timeout (say a
// worker was cancelled), Add panics, which fails the run.
func NewLostUpdateAccumulator(parties int, timeout time.Duration) *LostUpdateAccumulator {
	if timeout <= 0 {
		timeout = DefaultBarrierTimeout
	}
	return &LostUpdateAccumulator{
		parties:  int32(parties),
		timeout:  timeout,
		released: make(chan struct{}),
	}
}

// LostUpdate produces an AccumulatorFactory for LostUpdateAccumulators
func LostUpdate(parties int) tally.AccumulatorFactory {
	return LostUpdateWithTimeout(parties, DefaultBarrierTimeout)
}

// LostUpdateWithTimeout produces an AccumulatorFactory for LostUpdateAccumulators
// whose barrier gives up after timeout
func LostUpdateWithTimeout(parties int, timeout time.Duration) tally.AccumulatorFactory {
	return func() tally.Accumulator {
		return NewLostUpdateAccumulator(parties, timeout)
	}
}

// Add folds a partial sum into this Accumulator, unsafely
func (a *LostUpdateAccumulator) Add(partial int64) {
	arrived := atomic.AddInt32(&a.arrived, 1)
	if arrived > a.parties {
		atomic.AddInt64(&a.total, partial)
		return
	}
	seen := atomic.LoadInt64(&a.total)
	if arrived == a.parties {
		close(a.released)
	}
	timer := time.NewTimer(a.timeout)
	defer timer.Stop()
	select {
	case <-a.released:
	case <-timer.C:
		panic(fmt.Sprintf("lost update barrier timed out after %v: %d of %d parties arrived", a.timeout, atomic.LoadInt32(&a.arrived), a.parties))
	}
	atomic.StoreInt64(&a.total, seen+partial)
}

// Total returns the accumulated value
func (a *LostUpdateAccumulator) Total() int64 {
	return atomic.LoadInt64(&a.total)
}

// SlowAccumulator delays each Add by a random duration before delegating it, which
// shuffles the order in which workers reach the critical section
type SlowAccumulator struct {
	inner    tally.Accumulator
	maxDelay time.Duration
	randLock sync.Mutex
	rand     *rand.Rand
}

// Slow produces an AccumulatorFactory wrapping inner in a SlowAccumulator
func Slow(inner tally.AccumulatorFactory, maxDelay time.Duration, seed int64) tally.AccumulatorFactory {
	return func() tally.Accumulator {
		return &SlowAccumulator{
			inner:    inner(),
			maxDelay: maxDelay,
			rand:     rand.New(rand.NewSource(seed)),
		}
	}
}

// Add sleeps, then folds a partial sum into the wrapped Accumulator
func (a *SlowAccumulator) Add(partial int64) {
	if a.maxDelay > 0 {
		a.randLock.Lock()
		delay := time.Duration(a.rand.Int63n(int64(a.maxDelay)))
		a.randLock.Unlock()
		time.Sleep(delay)
	}
	a.inner.Add(partial)
}

// Total returns the value of the wrapped Accumulator
func (a *SlowAccumulator) Total() int64 {
	return a.inner.Total()
}
