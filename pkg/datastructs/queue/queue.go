package queue

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-stackqueue/pkg/datastructs/stack"
)

var (
	// ErrQueueFull is returned by Enqueue when the queue holds Capacity() items.
	ErrQueueFull = errors.New("queue is full")

	// ErrQueueEmpty is returned by Dequeue and Peek when no items remain.
	ErrQueueEmpty = errors.New("queue is empty")
)

// Queue is a fixed-capacity FIFO of ints built from two stacks.
//
// Enqueue pushes onto the in stack. Dequeue pops from the out stack,
// refilling it from the in stack only when it runs dry, so each item is
// moved at most once and both operations are amortized O(1).
//
// Every item in out is older than every item in in, and the top of out is
// the oldest item in the queue. It is NOT thread-safe.
type Queue struct {
	in       *stack.Stack // receives new items
	out      *stack.Stack // oldest items, oldest on top
	capacity int          // limit on in.Len() + out.Len()
}

// New creates an empty queue able to hold capacity items.
func New(capacity int) (*Queue, error) {
	in, err := stack.New(capacity)
	if err != nil {
		return nil, err
	}
	out, err := stack.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Queue{in: in, out: out, capacity: capacity}, nil
}

// Len returns the number of queued items.
func (q *Queue) Len() int { return q.in.Len() + q.out.Len() }

// Capacity returns the maximum number of queued items.
func (q *Queue) Capacity() int { return q.capacity }

// IsEmpty reports whether the queue holds no items.
func (q *Queue) IsEmpty() bool { return q.Len() == 0 }

// IsFull reports whether the next Enqueue would fail.
func (q *Queue) IsFull() bool { return q.Len() >= q.capacity }

// Enqueue appends item to the back of the queue.
// On a full queue it returns ErrQueueFull and leaves the queue untouched.
func (q *Queue) Enqueue(item int) error {
	if q.IsFull() {
		return errors.Wrapf(ErrQueueFull, "enqueue %d (capacity %d)", item, q.capacity)
	}
	return q.in.Push(item)
}

// Dequeue removes and returns the least-recently enqueued item.
func (q *Queue) Dequeue() (int, error) {
	if err := q.refill(); err != nil {
		return 0, err
	}
	return q.out.Pop()
}

// Peek returns the least-recently enqueued item without removing it.
func (q *Queue) Peek() (int, error) {
	if err := q.refill(); err != nil {
		return 0, err
	}
	return q.out.Peek()
}

// refill moves everything from in to out when out is empty, reversing the
// order so the oldest item ends up on top.
func (q *Queue) refill() error {
	if !q.out.IsEmpty() {
		return nil
	}
	if q.in.IsEmpty() {
		if _, err := q.in.Peek(); errors.Is(err, stack.ErrReleased) {
			return err
		}
		return ErrQueueEmpty
	}
	for !q.in.IsEmpty() {
		item, err := q.in.Pop()
		if err != nil {
			return err
		}
		// out has the same capacity as the whole queue, so this cannot overflow.
		if err := q.out.Push(item); err != nil {
			return errors.Wrap(err, "refill out stack")
		}
	}
	return nil
}

// EnqueueBatch enqueues items in order until one fails.
// Returns the count enqueued and the error that stopped it, if any.
func (q *Queue) EnqueueBatch(items []int) (int, error) {
	count := 0
	for _, item := range items {
		if err := q.Enqueue(item); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// DequeueBatch fills out with dequeued items until it is full or the queue
// runs dry. Running dry is not an error; the count tells how much was read.
func (q *Queue) DequeueBatch(out []int) (int, error) {
	count := 0
	for i := range out {
		item, err := q.Dequeue()
		if errors.Is(err, ErrQueueEmpty) {
			break
		}
		if err != nil {
			return count, err
		}
		out[i] = item
		count++
	}
	return count, nil
}

// Reset drops every queued item. Storage is retained.
func (q *Queue) Reset() {
	q.out.Reset()
	q.in.Reset()
}

// Release frees the out stack then the in stack.
// The queue must not be reused afterwards.
func (q *Queue) Release() error {
	if err := q.out.Release(); err != nil {
		return err
	}
	return q.in.Release()
}
