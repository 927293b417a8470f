package queues

import "fmt"

// BoundedQueue is a FIFO queue with a fixed capacity.
type BoundedQueue[T any] interface {
	// puts an element at the rear of the queue, fails when the queue is full
	Enqueue(value T) error
	// removes and returns the element at the front of the queue
	Dequeue() (T, error)
	// returns the element at the given end of the queue without removing it
	Peek(pos Position) (T, error)
	// returns the number of elements in the queue
	Len() int
	// returns the maximum number of elements the queue can hold
	Cap() int
	IsEmpty() bool
	IsFull() bool
	// removes all elements from the queue
	Clear()
}

// Position selects an end of a queue.
type Position int

const (
	Front Position = iota
	Rear
)

func (p Position) String() string {
	switch p {
	case Front:
		return "front"
	case Rear:
		return "rear"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}
