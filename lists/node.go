package lists

import (
	"fmt"
	"strings"
)

// Node is one cell of a singly linked chain.
// A chain must not contain cycles; nothing checks this, callers keep it true by construction.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

func NewNode[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, Next: next}
}

// Clone returns a deep copy of the chain starting at n.
// Values are copied by assignment; if T is a pointer or reference type, the referenced data is shared.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}
	head := &Node[T]{Value: n.Value}
	tail := head
	for current := n.Next; current != nil; current = current.Next {
		tail.Next = &Node[T]{Value: current.Value}
		tail = tail.Next
	}
	return head
}

// last returns the final node of the chain starting at n.
func (n *Node[T]) last() *Node[T] {
	current := n
	for current.Next != nil {
		current = current.Next
	}
	return current
}

// String renders the chain as "a (b (c (<nil>)))".
func (n *Node[T]) String() string {
	strBuilder := strings.Builder{}
	depth := 0
	for current := n; current != nil; current = current.Next {
		strBuilder.WriteString(fmt.Sprintf("%v (", current.Value))
		depth++
	}
	strBuilder.WriteString("<nil>")
	strBuilder.WriteString(strings.Repeat(")", depth))
	return strBuilder.String()
}
