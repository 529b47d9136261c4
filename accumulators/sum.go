package accumulators

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-sif/tally"
)

// NewSum returns a new mutex-guarded Sum Accumulator
func NewSum() tally.Accumulator {
	return &Sum{}
}

// Sum is a total protected by a single mutex. The critical section is the addition alone.
type Sum struct {
	lock  sync.Mutex
	total int64
}

// Add folds a partial sum into this Accumulator
func (a *Sum) Add(partial int64) {
	a.lock.Lock()
	a.total += partial
	a.lock.Unlock()
}

// Total returns the accumulated value
func (a *Sum) Total() int64 {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.total
}

// ToBytes serializes this Accumulator
func (a *Sum) ToBytes() ([]byte, error) {
	buff := make([]byte, 8)
	binary.LittleEndian.PutUint64(buff, uint64(a.Total()))
	return buff, nil
}

// FromBytes produces a new Sum from serialized data
func (a *Sum) FromBytes(buff []byte) (*Sum, error) {
	if len(buff) != 8 {
		return nil, fmt.Errorf("Serialized Sum must be 8 bytes, got %d", len(buff))
	}
	return &Sum{total: int64(binary.LittleEndian.Uint64(buff))}, nil
}

// NewAtomicSum returns a new lock-free AtomicSum Accumulator
func NewAtomicSum() tally.Accumulator {
	return &AtomicSum{}
}

// AtomicSum is a total updated with a single atomic addition, for totals which fit in 64 bits
type AtomicSum struct {
	total int64
}

// Add folds a partial sum into this Accumulator
func (a *AtomicSum) Add(partial int64) {
	atomic.AddInt64(&a.total, partial)
}

// Total returns the accumulated value
func (a *AtomicSum) Total() int64 {
	return atomic.LoadInt64(&a.total)
}
