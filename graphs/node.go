package graphs

import (
	"fmt"
	"slices"
	"strings"
)

// Node is a graph vertex: an optional value plus the indices of the nodes it links to.
// Connections refer to positions in the owning Graph's node collection; they are not pointers.
type Node[T any] struct {
	data        T
	hasData     bool
	connections []int
}

// NewNode returns a node holding value and linking to the given node indices.
func NewNode[T any](value T, connections ...int) Node[T] {
	return Node[T]{
		data:        value,
		hasData:     true,
		connections: slices.Clone(connections),
	}
}

// EmptyNode returns a node without data. Traversals skip it silently.
func EmptyNode[T any](connections ...int) Node[T] {
	return Node[T]{connections: slices.Clone(connections)}
}

// Value returns the node's data and whether it has any.
func (n Node[T]) Value() (T, bool) {
	return n.data, n.hasData
}

// Connections returns a copy of the node's outgoing links in insertion order.
func (n Node[T]) Connections() []int {
	return slices.Clone(n.connections)
}

// clone copies the connection slice so the result shares no storage with n.
func (n Node[T]) clone() Node[T] {
	n.connections = slices.Clone(n.connections)
	return n
}

func (n Node[T]) String() string {
	strBuilder := strings.Builder{}
	if n.hasData {
		strBuilder.WriteString(fmt.Sprintf("%v", n.data))
	} else {
		strBuilder.WriteString("<nil>")
	}
	strBuilder.WriteString(" -> [")
	for i, c := range n.connections {
		if i > 0 {
			strBuilder.WriteString(", ")
		}
		strBuilder.WriteString(fmt.Sprintf("%d", c))
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
