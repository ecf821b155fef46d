package graphics

import (
	"testing"
	"time"
)

// TestQueueFIFO tests that entries come out in insertion order.
func TestQueueFIFO(t *testing.T) {
	q := newQueue[int](8)
	for i := 1; i <= 3; i++ {
		q.push(i)
	}
	for want := 1; want <= 3; want++ {
		got, ok := q.poll()
		if !ok || got != want {
			t.Errorf("poll = (%v, %v), want (%v, true)", got, ok, want)
		}
	}
	if _, ok := q.poll(); ok {
		t.Error("poll on empty queue reported ok")
	}
}

// TestQueueOverflow tests that a full queue drops the oldest entry.
func TestQueueOverflow(t *testing.T) {
	q := newQueue[int](3)
	for i := 1; i <= 5; i++ {
		q.push(i)
	}
	for want := 3; want <= 5; want++ {
		got, ok := q.poll()
		if !ok || got != want {
			t.Errorf("poll = (%v, %v), want (%v, true)", got, ok, want)
		}
	}
}

// TestQueueWait tests that wait blocks until a push arrives.
func TestQueueWait(t *testing.T) {
	q := newQueue[string](4)
	done := make(chan string, 1)
	go func() {
		v, _ := q.wait()
		done <- v
	}()
	time.Sleep(10 * time.Millisecond)
	q.push("hello")
	select {
	case v := <-done:
		if v != "hello" {
			t.Errorf("wait = %q, want %q", v, "hello")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after push")
	}
}

// TestQueueClose tests that close wakes blocked waiters and that
// buffered entries stay readable after close.
func TestQueueClose(t *testing.T) {
	q := newQueue[int](4)
	done := make(chan bool, 1)
	go func() {
		_, ok := q.wait()
		done <- ok
	}()
	time.Sleep(10 * time.Millisecond)
	q.close()
	select {
	case ok := <-done:
		if ok {
			t.Error("wait on closed empty queue reported ok")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("close did not wake waiter")
	}

	q2 := newQueue[int](4)
	q2.push(7)
	q2.close()
	if v, ok := q2.wait(); !ok || v != 7 {
		t.Errorf("wait after close = (%v, %v), want (7, true)", v, ok)
	}
	q2.push(8)
	if _, ok := q2.poll(); ok {
		t.Error("push after close was accepted")
	}
}
