// Package queue provides the unbounded FIFO used between the reader goroutines and the main loop.
package queue

import "sync"

// minCompact is the consumed-prefix length after which the backing slice is compacted
const minCompact = 64

// Queue is an unbounded single-producer/single-consumer FIFO
// Thread-Safety:
//   - Push: never blocks, one producer goroutine
//   - Ready/Pop: one consumer goroutine
//
// Ready exposes a channel suitable for select; it holds a token whenever
// at least one item is pending
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	ready chan struct{}
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
	}
}

// Push appends an item and signals the consumer
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
	q.signal()
}

// Ready returns the channel that receives a token while items are pending
// A token must be followed by exactly one Pop
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}

// Pop removes the oldest item, ok is false when the queue is empty
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	if q.head == len(q.items) {
		q.mu.Unlock()
		return v, false
	}

	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	remaining := len(q.items) - q.head
	if remaining == 0 {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head >= minCompact && q.head >= remaining {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.mu.Unlock()

	// Re-arm so the next select iteration sees the backlog
	if remaining > 0 {
		q.signal()
	}
	return v, true
}

// Len returns the number of pending items
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// signal places a token without blocking; an existing token already covers pending items
func (q *Queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
