package queue

import (
	"sync"
)

var _ Unbounded[int] = (*TwoLock[int])(nil)

// chainNode is a cell in the singly linked chain of a TwoLock queue.
// The node referenced by the tail cursor is the open slot: it has no
// successor and holds no live value. Every other chain node has both.
type chainNode[T any] struct {
	val  T
	next *chainNode[T]
}

// TwoLock is an unbounded multi-producer multi-consumer FIFO queue using the
// classic two-lock algorithm: one mutex serializes producers around the tail
// cursor, an independent mutex serializes consumers around the head cursor.
// A producer and a consumer therefore never block each other; only
// same-direction operations contend.
//
// Enqueue writes into the current tail node (the open slot) and links a fresh
// empty node behind it, so the chain always ends in an open slot. Dequeue
// advances the head cursor by one node. The queue is empty exactly when both
// cursors reference the same node.
type TwoLock[T any] struct {
	headMu sync.Mutex
	head   *chainNode[T] // consumer cursor, guarded by headMu

	_ [cacheLineSize]byte // Padding to prevent false sharing between lock regions

	tailMu sync.Mutex
	tail   *chainNode[T] // open slot, guarded by tailMu
}

// NewTwoLock creates an empty queue. Both cursors share one sentinel node.
func NewTwoLock[T any]() *TwoLock[T] {
	sentinel := &chainNode[T]{}
	return &TwoLock[T]{
		head: sentinel,
		tail: sentinel,
	}
}

// Enqueue appends an item. It never fails and never touches the head cursor.
func (q *TwoLock[T]) Enqueue(item T) {
	openSlot := &chainNode[T]{}

	q.tailMu.Lock()
	q.tail.val = item
	q.tail.next = openSlot
	q.tail = openSlot
	q.tailMu.Unlock()
}

// EnqueueBatch appends all items under a single tail lock acquisition.
// Returns len(items).
func (q *TwoLock[T]) EnqueueBatch(items []T) int {
	if len(items) == 0 {
		return 0
	}

	q.tailMu.Lock()
	for _, item := range items {
		openSlot := &chainNode[T]{}
		q.tail.val = item
		q.tail.next = openSlot
		q.tail = openSlot
	}
	q.tailMu.Unlock()

	return len(items)
}

// Dequeue removes and returns the oldest item.
// Returns (zero, false) if the queue is empty.
func (q *TwoLock[T]) Dequeue() (T, bool) {
	var zero T

	q.headMu.Lock()
	if q.head == q.tailSnapshot() {
		q.headMu.Unlock()
		return zero, false
	}

	old := q.head
	next := old.next
	if next == nil {
		// The cursors diverged, so the head node must have a successor.
		panic("queue: corrupted chain, head trails tail with no successor")
	}

	item := old.val
	old.val = zero // release the payload reference
	old.next = nil // detach the consumed node from the chain
	q.head = next
	q.headMu.Unlock()

	return item, true
}

// DequeueBatch removes up to len(out) items into out under a single head lock
// acquisition. Returns the count dequeued. Items enqueued after the call
// starts may not be observed.
func (q *TwoLock[T]) DequeueBatch(out []T) int {
	if len(out) == 0 {
		return 0
	}

	var zero T
	count := 0

	q.headMu.Lock()
	tail := q.tailSnapshot()
	for count < len(out) && q.head != tail {
		old := q.head
		next := old.next
		if next == nil {
			panic("queue: corrupted chain, head trails tail with no successor")
		}

		out[count] = old.val
		old.val = zero
		old.next = nil
		q.head = next
		count++
	}
	q.headMu.Unlock()

	return count
}

// IsEmpty returns true if the queue holds no undequeued items.
// Under concurrent enqueues the answer is a momentary snapshot.
func (q *TwoLock[T]) IsEmpty() bool {
	q.headMu.Lock()
	empty := q.head == q.tailSnapshot()
	q.headMu.Unlock()
	return empty
}

// Clear discards all queued items. The detached chain is severed link by
// link in an explicit loop: an arbitrarily long chain is released without
// recursion and without leaving the full list reachable through any single
// node reference.
func (q *TwoLock[T]) Clear() {
	// Lock order everywhere both locks are held: head before tail.
	q.headMu.Lock()
	q.tailMu.Lock()
	old := q.head
	sentinel := &chainNode[T]{}
	q.head = sentinel
	q.tail = sentinel
	q.tailMu.Unlock()
	q.headMu.Unlock()

	var zero T
	for n := old; n != nil; {
		next := n.next
		n.val = zero
		n.next = nil
		n = next
	}
}

// tailSnapshot reads the tail cursor under its lock and releases it
// immediately. This is the only point where a consumer consults producer
// state; the lock is never held across the head mutation. An enqueue
// completing right after the read means the caller may observe the queue as
// empty one instant longer.
func (q *TwoLock[T]) tailSnapshot() *chainNode[T] {
	q.tailMu.Lock()
	tail := q.tail
	q.tailMu.Unlock()
	return tail
}
