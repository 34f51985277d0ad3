package stack

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned when a stack is created with a capacity below 1.
	ErrInvalidCapacity = errors.New("stack: capacity must be positive")

	// ErrStackFull is returned by Push when every slot is taken.
	ErrStackFull = errors.New("stack is full")

	// ErrStackEmpty is returned by Pop and Peek when there is nothing to remove.
	ErrStackEmpty = errors.New("stack is empty")

	// ErrReleased is returned by every operation after Release.
	ErrReleased = errors.New("stack has been released")
)

// Stack is a fixed-capacity LIFO of ints backed by a single slice.
// It never grows and is NOT thread-safe.
type Stack struct {
	top      int   // index of the top item, -1 when empty
	capacity int   // maximum number of items
	data     []int // backing storage, len(data) == capacity
}

// New creates an empty stack able to hold capacity items.
func New(capacity int) (*Stack, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &Stack{
		top:      -1,
		capacity: capacity,
		data:     make([]int, capacity),
	}, nil
}

// IsFull reports whether the next Push would fail.
func (s *Stack) IsFull() bool { return s.top == s.capacity-1 }

// IsEmpty reports whether the stack holds no items.
func (s *Stack) IsEmpty() bool { return s.top == -1 }

// Len returns the number of items on the stack.
func (s *Stack) Len() int { return s.top + 1 }

// Capacity returns the maximum number of items.
func (s *Stack) Capacity() int { return s.capacity }

// Push places item on top of the stack.
// On a full stack it returns ErrStackFull and leaves the stack untouched.
func (s *Stack) Push(item int) error {
	if s.data == nil {
		return ErrReleased
	}
	if s.IsFull() {
		return errors.Wrapf(ErrStackFull, "push %d (capacity %d)", item, s.capacity)
	}
	s.top++
	s.data[s.top] = item
	return nil
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (int, error) {
	if s.data == nil {
		return 0, ErrReleased
	}
	if s.IsEmpty() {
		return 0, ErrStackEmpty
	}
	item := s.data[s.top]
	s.data[s.top] = 0
	s.top--
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack) Peek() (int, error) {
	if s.data == nil {
		return 0, ErrReleased
	}
	if s.IsEmpty() {
		return 0, ErrStackEmpty
	}
	return s.data[s.top], nil
}

// Reset empties the stack. The storage is retained.
func (s *Stack) Reset() {
	clear(s.data)
	s.top = -1
}

// Release drops the storage. The stack must not be reused afterwards;
// every later operation returns ErrReleased.
func (s *Stack) Release() error {
	if s.data == nil {
		return ErrReleased
	}
	s.data = nil
	s.top = -1
	return nil
}
