package graphics

import "sync"

// queue is a bounded FIFO buffer for input events. Pushes never block:
// when the buffer is full the oldest entry is dropped, so a program that
// stops polling keeps the most recent input. close wakes every blocked
// wait.
type queue[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	buf      []T
	capacity int
	closed   bool
}

func newQueue[T any](capacity int) *queue[T] {
	q := &queue[T]{capacity: capacity}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends v, dropping the oldest entry when full. Pushes after
// close are discarded.
func (q *queue[T]) push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if len(q.buf) >= q.capacity {
		q.buf = q.buf[1:]
	}
	q.buf = append(q.buf, v)
	q.cond.Signal()
}

// wait blocks until an entry is available and consumes it. It returns
// ok=false when the queue is closed and drained.
func (q *queue[T]) wait() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.buf) == 0 && !q.closed {
		q.cond.Wait()
	}
	var zero T
	if len(q.buf) == 0 {
		return zero, false
	}
	v := q.buf[0]
	q.buf = q.buf[1:]
	return v, true
}

// poll consumes the oldest entry without blocking. ok=false when empty.
func (q *queue[T]) poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if len(q.buf) == 0 {
		return zero, false
	}
	v := q.buf[0]
	q.buf = q.buf[1:]
	return v, true
}

// close wakes all blocked waiters. Buffered entries remain readable.
func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}
