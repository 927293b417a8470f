package queues

import (
	"fmt"
	"iter"

	"ironds/errs"
	"ironds/lists"
)

var (
	ErrQueueFull       = fmt.Errorf("queue is full: %w", errs.ErrFullContainer)
	ErrQueueEmpty      = fmt.Errorf("queue is empty: %w", errs.ErrEmptyContainer)
	ErrInvalidPosition = fmt.Errorf("queue position must be front or rear: %w", errs.ErrInvalidArgument)
	// ErrSlotEmpty means a slot inside the live range held no value.
	ErrSlotEmpty = fmt.Errorf("queue slot unexpectedly empty: %w", errs.ErrInternalConsistency)
)

var _ BoundedQueue[int] = (*CircularQueue[int])(nil)

// slot is one cell of the ring; ok is false for a cell that holds no element.
type slot[T any] struct {
	val T
	ok  bool
}

// CircularQueue is a fixed-capacity FIFO queue (ring buffer) stored in a linked list
// that is filled with empty slots at construction and never grows or shrinks.
//
// When the queue is empty head and tail are both -1. Otherwise the live elements sit in
// slots head, head+1, ..., tail (mod maxSize).
type CircularQueue[T any] struct {
	ring    *lists.LinkedList[slot[T]]
	slots   []*lists.Node[slot[T]] // slots[i] is node i of ring, so access stays O(1)
	maxSize int
	length  int
	head    int
	tail    int
}

// NewCircularQueue creates a queue holding at most maxSize elements.
// A negative maxSize is treated as 0, which gives a queue that is always full and always empty.
func NewCircularQueue[T any](maxSize int) *CircularQueue[T] {
	if maxSize < 0 {
		maxSize = 0
	}
	ring := lists.New(make([]slot[T], maxSize)...)
	slots := make([]*lists.Node[slot[T]], 0, maxSize)
	for n := ring.Head(); n != nil; n = n.Next {
		slots = append(slots, n)
	}
	return &CircularQueue[T]{
		ring:    ring,
		slots:   slots,
		maxSize: maxSize,
		head:    -1,
		tail:    -1,
	}
}

func (cq *CircularQueue[T]) Enqueue(value T) error {
	if cq.IsFull() {
		return ErrQueueFull
	}
	cq.tail = (cq.tail + 1) % cq.maxSize
	cq.slots[cq.tail].Value = slot[T]{val: value, ok: true}
	cq.length++
	if cq.length == 1 {
		cq.head = cq.tail
	}
	return nil
}

func (cq *CircularQueue[T]) Dequeue() (value T, err error) {
	if cq.IsEmpty() {
		return value, ErrQueueEmpty
	}
	current := cq.slots[cq.head].Value
	if !current.ok {
		return value, fmt.Errorf("dequeue at slot %d: %w", cq.head, ErrSlotEmpty)
	}
	// clear reference
	cq.slots[cq.head].Value = slot[T]{}
	cq.head = (cq.head + 1) % cq.maxSize
	cq.length--
	if cq.length == 0 {
		cq.head = -1
		cq.tail = -1
	}
	return current.val, nil
}

// Peek returns the element at the front or the rear of the queue without removing it.
func (cq *CircularQueue[T]) Peek(pos Position) (value T, err error) {
	if cq.IsEmpty() {
		return value, ErrQueueEmpty
	}
	var index int
	switch pos {
	case Front:
		index = cq.head
	case Rear:
		index = cq.tail
	default:
		return value, fmt.Errorf("%v: %w", pos, ErrInvalidPosition)
	}
	current := cq.slots[index].Value
	if !current.ok {
		return value, fmt.Errorf("peek %v at slot %d: %w", pos, index, ErrSlotEmpty)
	}
	return current.val, nil
}

func (cq *CircularQueue[T]) Len() int {
	return cq.length
}

func (cq *CircularQueue[T]) Cap() int {
	return cq.maxSize
}

func (cq *CircularQueue[T]) IsEmpty() bool {
	return cq.length == 0
}

func (cq *CircularQueue[T]) IsFull() bool {
	return cq.length == cq.maxSize
}

// Clear empties every slot and resets the queue to its initial state.
func (cq *CircularQueue[T]) Clear() {
	for _, n := range cq.slots {
		n.Value = slot[T]{}
	}
	cq.length = 0
	cq.head = -1
	cq.tail = -1
}

// Values yields the queued elements from front to rear without removing them.
func (cq *CircularQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range cq.length {
			if !yield(cq.slots[(cq.head+i)%cq.maxSize].Value.val) {
				return
			}
		}
	}
}

func (cq *CircularQueue[T]) String() string {
	return fmt.Sprintf("CircularQueue(len=%d, cap=%d, head=%d, tail=%d)", cq.length, cq.maxSize, cq.head, cq.tail)
}
