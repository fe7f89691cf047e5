package queue

var _ Queue[int] = (*Chan[int])(nil)

// Chan is a bounded FIFO queue backed by a buffered channel. It trades raw
// throughput for simplicity and serves as the baseline implementation in
// benchmarks. Both operations are non-blocking.
type Chan[T any] struct {
	ch chan T
}

// NewChan creates a channel-backed queue with the given capacity.
func NewChan[T any](capacity int) *Chan[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Chan[T]{
		ch: make(chan T, capacity),
	}
}

// Enqueue adds an item. Returns false if the queue is full.
func (q *Chan[T]) Enqueue(item T) bool {
	select {
	case q.ch <- item:
		return true
	default:
		return false
	}
}

// Dequeue removes and returns an item. Returns false if the queue is empty.
func (q *Chan[T]) Dequeue() (T, bool) {
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Size returns the current item count.
func (q *Chan[T]) Size() int64 { return int64(len(q.ch)) }

// IsEmpty returns true if the queue is empty.
func (q *Chan[T]) IsEmpty() bool { return len(q.ch) == 0 }

// IsFull returns true if the queue is full.
func (q *Chan[T]) IsFull() bool { return len(q.ch) == cap(q.ch) }

// Capacity returns the maximum queue size.
func (q *Chan[T]) Capacity() uint64 { return uint64(cap(q.ch)) }

// Clear drains all items from the queue.
func (q *Chan[T]) Clear() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
