package containers

import "sync"

// Queue is an unbounded FIFO safe for use by many producers and consumers.
// Push never blocks. Pop blocks until an element is available or the queue is
// closed, TryPop never blocks.
type Queue[T any] struct {
	mutex  sync.Mutex
	cond   *sync.Cond
	ring   *RingQueue[T]
	closed bool
}

func NewQueue[T any](initialSize int) *Queue[T] {
	q := &Queue[T]{
		ring: NewGrowableRingQueue[T](initialSize),
	}
	q.cond = sync.NewCond(&q.mutex)
	return q
}

// Push appends value. It reports false when the queue is closed, in which case
// the value is dropped.
func (q *Queue[T]) Push(value T) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if q.closed {
		return false
	}
	// a growable ring never reports full
	_ = q.ring.Enqueue(value)
	q.cond.Signal()
	return true
}

// TryPop returns the front element if one is available.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	value, err := q.ring.Dequeue()
	return value, err == nil
}

// Pop waits for the front element. Once the queue is closed the remaining
// elements are still handed out, after which Pop reports false.
func (q *Queue[T]) Pop() (T, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	for q.ring.IsEmpty() && !q.closed {
		q.cond.Wait()
	}
	value, err := q.ring.Dequeue()
	return value, err == nil
}

// Close stops accepting new elements and wakes every waiting consumer.
func (q *Queue[T]) Close() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue[T]) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return q.ring.Len()
}
