package queue

import (
	"testing"
)

// Interface compliance check
var _ Queue[int] = (*Chan[int])(nil)

func TestNewChan(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		wantCapacity uint64
	}{
		{"regular", 16, 16},
		{"not_rounded", 100, 100},
		{"zero_uses_minimum", 0, 1},
		{"negative_uses_minimum", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewChan[int](tt.capacity)
			if got := q.Capacity(); got != tt.wantCapacity {
				t.Errorf("Capacity() = %d, want %d", got, tt.wantCapacity)
			}
		})
	}
}

func TestChan_FIFOOrder(t *testing.T) {
	q := NewChan[int](8)
	items := []int{7, 3, 9, 1, 5}

	for _, item := range items {
		if !q.Enqueue(item) {
			t.Fatalf("Enqueue(%d) failed", item)
		}
	}
	for i, want := range items {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Errorf("Dequeue %d = (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}
}

func TestChan_OverflowAndEmpty(t *testing.T) {
	q := NewChan[int](2)

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should return false")
	}

	q.Enqueue(1)
	q.Enqueue(2)
	if q.Enqueue(3) {
		t.Error("Enqueue on full queue should return false")
	}
	if !q.IsFull() {
		t.Error("queue at capacity should be full")
	}

	q.Clear()
	if !q.IsEmpty() {
		t.Error("queue should be empty after Clear")
	}
	if s := q.Size(); s != 0 {
		t.Errorf("Size() after Clear = %d, want 0", s)
	}
}
