package graphs

import (
	"fmt"
	"iter"

	"ironds/queues"
	"ironds/seqs"
	"ironds/stacks"
)

// Visited state lives in the iterators, not on the nodes, so several traversals of the same graph
// can be consumed side by side.

// dfsFrame is one pending node of a depth-first walk; cursor is the next connection to descend into.
type dfsFrame struct {
	index  int
	cursor int
}

// DepthFirstIterator walks a graph depth-first and yields node data in post-order:
// everything reachable through a node's connections, in listed order, comes before the node itself.
// A node already visited contributes nothing a second time.
type DepthFirstIterator[T any] struct {
	g       *Graph[T]
	visited []bool
	frames  *stacks.Stack[*dfsFrame]
}

// DepthFirstIterator returns a depth-first iterator rooted at start.
func (g *Graph[T]) DepthFirstIterator(start int) (*DepthFirstIterator[T], error) {
	if len(g.nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	if err := g.checkIndex(start); err != nil {
		return nil, fmt.Errorf("depth-first start: %w", err)
	}
	it := &DepthFirstIterator[T]{
		g:       g,
		visited: make([]bool, len(g.nodes)),
		frames:  stacks.New[*dfsFrame](stacks.WithCapacity(len(g.nodes))),
	}
	it.enter(start)
	return it, nil
}

func (it *DepthFirstIterator[T]) enter(index int) {
	if it.visited[index] {
		return
	}
	it.visited[index] = true
	it.frames.Push(&dfsFrame{index: index})
}

// Next returns the next value of the walk, or false once the walk is over.
func (it *DepthFirstIterator[T]) Next() (value T, ok bool) {
	for !it.frames.IsEmpty() {
		top, _ := it.frames.Peek()
		connections := it.g.nodes[top.index].connections
		if top.cursor < len(connections) {
			child := connections[top.cursor]
			top.cursor++
			it.enter(child)
			continue
		}
		_, _ = it.frames.Pop()
		if value, ok = it.g.nodes[top.index].Value(); ok {
			return value, true
		}
	}
	return value, false
}

// Seq adapts the remaining walk to a range-over-func sequence.
func (it *DepthFirstIterator[T]) Seq() iter.Seq[T] {
	return seqs.FromNext(it.Next)
}

// BreadthFirstIterator walks a graph level by level from its root, breaking ties by connection order.
// Pending nodes wait in a CircularQueue sized to the node count; each node is queued at most once.
type BreadthFirstIterator[T any] struct {
	g       *Graph[T]
	visited []bool
	queue   *queues.CircularQueue[int]
	err     error
}

// BreadthFirstIterator returns a breadth-first iterator rooted at start.
func (g *Graph[T]) BreadthFirstIterator(start int) (*BreadthFirstIterator[T], error) {
	if len(g.nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	if err := g.checkIndex(start); err != nil {
		return nil, fmt.Errorf("breadth-first start: %w", err)
	}
	it := &BreadthFirstIterator[T]{
		g:       g,
		visited: make([]bool, len(g.nodes)),
		queue:   queues.NewCircularQueue[int](len(g.nodes)),
	}
	it.visited[start] = true
	if err := it.queue.Enqueue(start); err != nil {
		return nil, err
	}
	return it, nil
}

// Next returns the next value of the walk, or false once the walk is over or has failed.
// Check Err after Next returns false.
func (it *BreadthFirstIterator[T]) Next() (value T, ok bool) {
	for it.err == nil && !it.queue.IsEmpty() {
		current, err := it.queue.Dequeue()
		if err != nil {
			it.err = err
			return value, false
		}
		for _, neighbour := range it.g.nodes[current].connections {
			if it.visited[neighbour] {
				continue
			}
			it.visited[neighbour] = true
			if err := it.queue.Enqueue(neighbour); err != nil {
				it.err = err
				return value, false
			}
		}
		if value, ok = it.g.nodes[current].Value(); ok {
			return value, true
		}
	}
	return value, false
}

// Err returns the error that stopped the walk, if any.
func (it *BreadthFirstIterator[T]) Err() error {
	return it.err
}

// Seq adapts the remaining walk to a range-over-func sequence.
func (it *BreadthFirstIterator[T]) Seq() iter.Seq[T] {
	return seqs.FromNext(it.Next)
}

// DepthFirstTraversal yields node data depth-first from node 0 with fresh visited state on every range.
// Nodes without data are skipped. An empty graph yields nothing.
func (g *Graph[T]) DepthFirstTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(g.nodes) == 0 {
			return
		}
		g.depthFirst(0, yield)
	}
}

// DepthFirstFrom is DepthFirstTraversal rooted at start.
func (g *Graph[T]) DepthFirstFrom(start int) (iter.Seq[T], error) {
	if _, err := g.DepthFirstIterator(start); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		g.depthFirst(start, yield)
	}, nil
}

func (g *Graph[T]) depthFirst(start int, yield func(T) bool) {
	it, err := g.DepthFirstIterator(start)
	if err != nil {
		g.logger.Error("depth-first traversal", "start", start, "err", err)
		return
	}
	for v := range it.Seq() {
		if !yield(v) {
			return
		}
	}
}

// BreadthFirstTraversal yields node data breadth-first from node 0 with fresh visited state on every range.
// Nodes without data are skipped. An empty graph yields nothing.
func (g *Graph[T]) BreadthFirstTraversal() iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(g.nodes) == 0 {
			return
		}
		g.breadthFirst(0, yield)
	}
}

// BreadthFirstFrom is BreadthFirstTraversal rooted at start.
func (g *Graph[T]) BreadthFirstFrom(start int) (iter.Seq[T], error) {
	if _, err := g.BreadthFirstIterator(start); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		g.breadthFirst(start, yield)
	}, nil
}

func (g *Graph[T]) breadthFirst(start int, yield func(T) bool) {
	it, err := g.BreadthFirstIterator(start)
	if err != nil {
		g.logger.Error("breadth-first traversal", "start", start, "err", err)
		return
	}
	for v := range it.Seq() {
		if !yield(v) {
			return
		}
	}
	if err := it.Err(); err != nil {
		g.logger.Error("breadth-first traversal stopped", "start", start, "err", err)
	}
}
