package queue

import (
	"sync"
	"testing"
	"time"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}

	if q.Len() != 10 {
		t.Fatalf("Expected 10 pending items, got %d", q.Len())
	}

	for i := 0; i < 10; i++ {
		select {
		case <-q.Ready():
		default:
			t.Fatalf("Expected ready token before pop %d", i)
		}
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Expected item at pop %d", i)
		}
		if v != i {
			t.Errorf("Expected %d, got %d", i, v)
		}
	}

	select {
	case <-q.Ready():
		t.Error("Expected no ready token on drained queue")
	default:
	}
	if _, ok := q.Pop(); ok {
		t.Error("Expected Pop on empty queue to report false")
	}
}

func TestQueue_PushNeverBlocks(t *testing.T) {
	q := New[string]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100000; i++ {
			q.Push("x")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Push blocked without a consumer")
	}
	if q.Len() != 100000 {
		t.Errorf("Expected 100000 items, got %d", q.Len())
	}
}

func TestQueue_CompactionKeepsOrder(t *testing.T) {
	q := New[int]()
	next := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 100; i++ {
			q.Push(round*100 + i)
		}
		for i := 0; i < 70; i++ {
			v, ok := q.Pop()
			if !ok {
				t.Fatalf("Unexpected empty queue at round %d", round)
			}
			if v != next {
				t.Fatalf("Expected %d, got %d", next, v)
			}
			next++
		}
	}
	if q.Len() != 50*30 {
		t.Errorf("Expected %d pending, got %d", 50*30, q.Len())
	}
}

func TestQueue_ConcurrentProducerConsumer(t *testing.T) {
	const n = 20000
	q := New[int]()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}
	}()

	got := 0
	deadline := time.After(10 * time.Second)
	for got < n {
		select {
		case <-q.Ready():
			v, ok := q.Pop()
			if !ok {
				continue
			}
			if v != got {
				t.Fatalf("Expected %d, got %d", got, v)
			}
			got++
		case <-deadline:
			t.Fatalf("Timed out after %d items", got)
		}
	}
	wg.Wait()
}
