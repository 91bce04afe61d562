package algorithm

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by Pop on an empty queue. Callers should guard
// with IsEmpty instead of relying on the error.
var ErrEmptyQueue = errors.New("priority queue is empty")

// PriorityQueue is a max-priority queue: Pop returns the item with the
// highest priority; items with equal priority pop in insertion order.
// It is a building block for delivery ordering and is not safe for
// concurrent use.
type PriorityQueue[T any] struct {
	inner pqHeap[T]
	seq   int64
}

type pqItem[T any] struct {
	value    T
	priority int
	seq      int64
}

// NewPriorityQueue creates an empty queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push inserts an item with the given priority.
func (pq *PriorityQueue[T]) Push(value T, priority int) {
	heap.Push(&pq.inner, pqItem[T]{value: value, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the highest-priority item.
func (pq *PriorityQueue[T]) Pop() (T, error) {
	if pq.inner.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := heap.Pop(&pq.inner).(pqItem[T])
	return item.value, nil
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return pq.inner.Len()
}

// IsEmpty reports whether the queue has no items.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.inner.Len() == 0
}

// pqHeap implements heap.Interface.
type pqHeap[T any] []pqItem[T]

func (h pqHeap[T]) Len() int { return len(h) }

func (h pqHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	// FIFO among equal priorities
	return h[i].seq < h[j].seq
}

func (h pqHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[T]) Push(x any) { *h = append(*h, x.(pqItem[T])) }

func (h *pqHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
