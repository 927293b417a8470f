package lists

import (
	"fmt"
	"iter"
	"strings"

	"ironds/errs"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("list index out of bounds: %w", errs.ErrIndexOutOfRange)
	ErrEmptyList        = fmt.Errorf("list is empty: %w", errs.ErrEmptyContainer)
	ErrValueNotFound    = fmt.Errorf("no node holds the value: %w", errs.ErrNotFound)
)

// LinkedList is a singly linked list. Index 0 is the head; index i+1 is reached by following Next i+1 times.
// The length is not cached, so Len is O(N).
type LinkedList[T any] struct {
	head *Node[T]
}

// New builds a list holding values in order. No values yields an empty list.
func New[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{}
	var tail *Node[T]
	for _, value := range values {
		newNode := &Node[T]{Value: value}
		if tail == nil {
			ll.head = newNode
		} else {
			tail.Next = newNode
		}
		tail = newNode
	}
	return ll
}

// findNodeAt returns the node at index and its predecessor (nil for the head).
// Returns ErrIndexOutOfBounds if the chain is shorter than index+1.
func (ll *LinkedList[T]) findNodeAt(index int) (prev, target *Node[T], err error) {
	if index < 0 {
		return nil, nil, fmt.Errorf("index %d: %w", index, ErrIndexOutOfBounds)
	}
	target = ll.head
	for i := 0; target != nil && i < index; i++ {
		prev = target
		target = target.Next
	}
	if target == nil {
		return nil, nil, fmt.Errorf("index %d: %w", index, ErrIndexOutOfBounds)
	}
	return prev, target, nil
}

// Head returns the first node of the chain, or nil for an empty list.
// The returned chain is the list's own storage, not a copy.
func (ll *LinkedList[T]) Head() *Node[T] {
	return ll.head
}

func (ll *LinkedList[T]) Len() int {
	size := 0
	for current := ll.head; current != nil; current = current.Next {
		size++
	}
	return size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.head == nil
}

// Get retrieves the element at the specified index.
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	_, target, err := ll.findNodeAt(index)
	if err != nil {
		return val, err
	}
	return target.Value, nil
}

// Set replaces the element at the specified index.
// A new node is spliced in at index; the nodes after it are kept as they are.
func (ll *LinkedList[T]) Set(index int, value T) error {
	prev, target, err := ll.findNodeAt(index)
	if err != nil {
		return err
	}
	newNode := &Node[T]{Value: value, Next: target.Next}
	if prev == nil {
		ll.head = newNode
	} else {
		prev.Next = newNode
	}
	return nil
}

// InsertListAtFront places a deep copy of other's chain before the current head.
// other is left untouched.
func (ll *LinkedList[T]) InsertListAtFront(other *LinkedList[T]) {
	if other == nil {
		return
	}
	ll.InsertChainAtFront(other.head, true)
}

// InsertChainAtFront walks to the end of chain, links it to the current head and makes chain the new head.
// When cloneFirst is true a deep copy of chain is inserted, so the caller's nodes are never aliased into
// this list. When false the caller's nodes become part of the list.
func (ll *LinkedList[T]) InsertChainAtFront(chain *Node[T], cloneFirst bool) {
	if chain == nil {
		return
	}
	if cloneFirst {
		chain = chain.Clone()
	}
	chain.last().Next = ll.head
	ll.head = chain
}

// AppendListAtEnd links other's chain onto the tail of this list.
//
// Unlike InsertListAtFront, the nodes are not copied: both lists share them afterwards, and a later change
// made through either list is visible in the other. Appending a list to itself appends a copy, since sharing
// would close the chain into a cycle.
func (ll *LinkedList[T]) AppendListAtEnd(other *LinkedList[T]) {
	if other == nil || other.head == nil {
		return
	}
	if other == ll {
		ll.AppendChainAtEnd(ll.head.Clone())
		return
	}
	ll.AppendChainAtEnd(other.head)
}

// AppendChainAtEnd links chain onto the tail of this list without copying it.
func (ll *LinkedList[T]) AppendChainAtEnd(chain *Node[T]) {
	if chain == nil {
		return
	}
	if ll.head == nil {
		ll.head = chain
		return
	}
	ll.head.last().Next = chain
}

// RemoveFirstFunc unlinks the first node, scanning from the head, whose value satisfies match.
func (ll *LinkedList[T]) RemoveFirstFunc(match func(T) bool) error {
	if ll.head == nil {
		return ErrEmptyList
	}
	var prev *Node[T]
	for current := ll.head; current != nil; current = current.Next {
		if !match(current.Value) {
			prev = current
			continue
		}
		if prev == nil {
			ll.head = current.Next
		} else {
			prev.Next = current.Next
		}
		return nil
	}
	return ErrValueNotFound
}

func (ll *LinkedList[T]) ContainsFunc(predicate func(T) bool) bool {
	return ll.IndexFunc(predicate) >= 0
}

func (ll *LinkedList[T]) IndexFunc(predicate func(T) bool) int {
	index := 0
	for current := ll.head; current != nil; current = current.Next {
		if predicate(current.Value) {
			return index
		}
		index++
	}
	return -1
}

// ToSlice materializes the list head to tail.
func (ll *LinkedList[T]) ToSlice() []T {
	values := make([]T, 0, ll.Len())
	for current := ll.head; current != nil; current = current.Next {
		values = append(values, current.Value)
	}
	return values
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.head; current != nil; current = current.Next {
			if !yield(current.Value) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := ll.head; current != nil; current = current.Next {
			if !yield(index, current.Value) {
				return
			}
			index++
		}
	}
}

// Clone returns a list built from a deep copy of this list's chain.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (ll *LinkedList[T]) Clone() *LinkedList[T] {
	return &LinkedList[T]{head: ll.head.Clone()}
}

func (ll *LinkedList[T]) String() string {
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for current := ll.head; current != nil; current = current.Next {
		strBuilder.WriteString(fmt.Sprintf("%v", current.Value))
		if current.Next != nil {
			strBuilder.WriteString(", ")
		}
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
