package queue

import (
	"runtime"
	"sync/atomic"

	pkgRuntime "github.com/gostructs/go-concurrent/pkg/runtime"
	"github.com/gostructs/go-concurrent/pkg/utils"
)

var _ Queue[int] = (*MPMC[int])(nil)

const (
	cacheLineSize = 64

	// Adaptive Spinning strategy: PAUSE-based active spin first (keeps the
	// CPU warm at low power), then yield to the scheduler.
	activeSpinCycles = 4  // PAUSE cycles per active spin iteration
	activeSpinTries  = 30 // active spin iterations before yielding
)

// slot holds one element plus the sequence number that tracks whose turn the
// slot is on (producer or consumer, and for which lap around the ring).
type slot[T any] struct {
	seq  atomic.Uint64
	data T
	_    [cacheLineSize - 16]byte // Padding to prevent false sharing
}

// MPMC is a lock-free bounded multiple-producer multiple-consumer ring queue.
// Each slot carries its own sequence number: a producer may claim slot i on
// lap k once seq == i + k*capacity, and publishing bumps seq by one to hand
// the slot to consumers.
type MPMC[T any] struct {
	capacity uint64
	mask     uint64
	slots    []slot[T]

	_ [cacheLineSize]byte // Padding to prevent false sharing

	enqueuePos atomic.Uint64 // next position producers will claim

	_ [cacheLineSize]byte // Padding to prevent false sharing

	dequeuePos atomic.Uint64 // next position consumers will claim
}

// NewMPMC creates a queue with capacity rounded up to a power of 2.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 {
		capacity = 2
	}
	if !utils.IsPowerOfTwo(capacity) {
		capacity = utils.CeilToPowerOfTwo(capacity)
	}

	q := &MPMC[T]{
		capacity: uint64(capacity),
		mask:     uint64(capacity - 1),
		slots:    make([]slot[T], capacity),
	}

	// Initial sequence of each slot is its own index (lap zero, producer turn).
	for i := range q.slots {
		q.slots[i].seq.Store(uint64(i))
	}

	return q
}

// Enqueue adds an item. Returns false if the queue is full.
func (q *MPMC[T]) Enqueue(item T) bool {
	for spin := 0; ; spin++ {
		pos := q.enqueuePos.Load()
		s := &q.slots[pos&q.mask]

		diff := int64(s.seq.Load()) - int64(pos)
		switch {
		case diff == 0:
			// Slot is free for this position, try to reserve it.
			if q.enqueuePos.CompareAndSwap(pos, pos+1) {
				s.data = item
				s.seq.Store(pos + 1)
				return true
			}
		case diff < 0:
			// Consumer has not freed this slot yet.
			return false
		}
		// diff > 0: slot belongs to a later lap, reload pos and retry.

		if spin < activeSpinTries {
			pkgRuntime.Procyield(activeSpinCycles)
		} else {
			runtime.Gosched()
			spin = 0
		}
	}
}

// Dequeue removes and returns an item. Returns false if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, bool) {
	var zero T

	for spin := 0; ; spin++ {
		pos := q.dequeuePos.Load()
		s := &q.slots[pos&q.mask]

		diff := int64(s.seq.Load()) - int64(pos+1)
		switch {
		case diff == 0:
			// Element is published for this position, try to claim it.
			if q.dequeuePos.CompareAndSwap(pos, pos+1) {
				data := s.data
				s.data = zero
				// Free the slot for the next lap of this ring position.
				s.seq.Store(pos + q.capacity)
				return data, true
			}
		case diff < 0:
			// No producer has reached this position.
			return zero, false
		}
		// diff > 0: another consumer already took this position, retry.

		if spin < activeSpinTries {
			pkgRuntime.Procyield(activeSpinCycles)
		} else {
			runtime.Gosched()
			spin = 0
		}
	}
}

// EnqueueBatch adds multiple items. Returns count of items enqueued.
func (q *MPMC[T]) EnqueueBatch(items []T) int {
	count := 0
	for _, item := range items {
		if !q.Enqueue(item) {
			break
		}
		count++
	}
	return count
}

// DequeueBatch removes multiple items into out. Returns count dequeued.
func (q *MPMC[T]) DequeueBatch(out []T) int {
	count := 0
	for i := range out {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// Size returns approximate item count (may be stale during concurrent access).
func (q *MPMC[T]) Size() int64 {
	return int64(q.enqueuePos.Load()) - int64(q.dequeuePos.Load())
}

// IsEmpty returns true if the queue appears empty.
func (q *MPMC[T]) IsEmpty() bool { return q.Size() <= 0 }

// IsFull returns true if the queue appears full.
func (q *MPMC[T]) IsFull() bool { return q.Size() >= int64(q.capacity) }

// Capacity returns the maximum queue size.
func (q *MPMC[T]) Capacity() uint64 { return q.capacity }

// Clear drains all items from the queue.
func (q *MPMC[T]) Clear() {
	for {
		if _, ok := q.Dequeue(); !ok {
			return
		}
	}
}
