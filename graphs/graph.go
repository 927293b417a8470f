package graphs

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"ironds/errs"
	"ironds/seqs"
)

var (
	ErrNodeIndexOutOfRange = fmt.Errorf("node index out of range: %w", errs.ErrIndexOutOfRange)
	ErrEmptyGraph          = fmt.Errorf("graph has no nodes: %w", errs.ErrEmptyContainer)
	ErrDuplicateEdge       = fmt.Errorf("connection already exists: %w", errs.ErrDuplicateEdge)
	ErrEdgeNotFound        = fmt.Errorf("connection does not exist: %w", errs.ErrNotFound)
	ErrInvalidSize         = fmt.Errorf("grid size must not be negative: %w", errs.ErrInvalidArgument)
	ErrLengthMismatch      = fmt.Errorf("values and connection lists differ in length: %w", errs.ErrInvalidArgument)
)

type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger sets the logger used to report graph mutations at debug level.
// By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Graph is a directed graph whose nodes are identified by their position in an ordered collection.
// Nodes can be added in bulk but never removed, so a node index stays valid for the life of the graph.
// Edge symmetry is a convention kept by AddLinkBetween and RemoveLinkBetween when called with
// bidirectional set; it is not checked anywhere else.
//
// A Graph is not safe for concurrent use. Mutating it while a traversal is being consumed is undefined.
type Graph[T any] struct {
	nodes  []Node[T]
	logger *log.Logger
}

// New returns an empty graph.
func New[T any](opts ...Option) *Graph[T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Graph[T]{logger: cfg.logger}
}

// FromNodes returns a graph holding copies of nodes.
// Every connection must refer to one of the given nodes.
func FromNodes[T any](nodes []Node[T], opts ...Option) (*Graph[T], error) {
	g := New[T](opts...)
	if err := g.SetNodes(nodes); err != nil {
		return nil, err
	}
	return g, nil
}

// CreateGrid returns a graph of sizeX*sizeY nodes with no data and no connections.
// Grid adjacency is left to the caller.
func CreateGrid[T any](sizeX, sizeY int, opts ...Option) (*Graph[T], error) {
	if sizeX < 0 || sizeY < 0 {
		return nil, fmt.Errorf("size (%d, %d): %w", sizeX, sizeY, ErrInvalidSize)
	}
	g := New[T](opts...)
	g.nodes = make([]Node[T], sizeX*sizeY)
	g.logger.Debug("created grid graph", "sizeX", sizeX, "sizeY", sizeY, "nodes", len(g.nodes))
	return g, nil
}

// SetNodes replaces the node collection with copies of nodes.
// Every connection must refer to an index in nodes; otherwise the graph is left unchanged.
func (g *Graph[T]) SetNodes(nodes []Node[T]) error {
	for i, n := range nodes {
		for _, c := range n.connections {
			if c < 0 || c >= len(nodes) {
				return fmt.Errorf("node %d links to %d of %d nodes: %w", i, c, len(nodes), ErrNodeIndexOutOfRange)
			}
		}
	}
	replaced := make([]Node[T], len(nodes))
	for i, n := range nodes {
		replaced[i] = n.clone()
	}
	g.nodes = replaced
	g.logger.Debug("set graph nodes", "nodes", len(replaced))
	return nil
}

// SetNodesFromValuesAndConnections replaces the node collection with one node per value,
// node i holding values[i] and linking to connections[i].
func (g *Graph[T]) SetNodesFromValuesAndConnections(values []T, connections [][]int) error {
	if len(values) != len(connections) {
		return fmt.Errorf("%d values, %d connection lists: %w", len(values), len(connections), ErrLengthMismatch)
	}
	nodes := make([]Node[T], len(values))
	for i, v := range values {
		nodes[i] = NewNode(v, connections[i]...)
	}
	return g.SetNodes(nodes)
}

func (g *Graph[T]) checkIndex(index int) error {
	if index < 0 || index >= len(g.nodes) {
		return fmt.Errorf("node %d of %d: %w", index, len(g.nodes), ErrNodeIndexOutOfRange)
	}
	return nil
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Get returns the data of the node at index and whether the node has any.
func (g *Graph[T]) Get(index int) (value T, ok bool, err error) {
	if err := g.checkIndex(index); err != nil {
		return value, false, err
	}
	value, ok = g.nodes[index].Value()
	return value, ok, nil
}

// Node returns a copy of the node at index.
func (g *Graph[T]) Node(index int) (Node[T], error) {
	if err := g.checkIndex(index); err != nil {
		return Node[T]{}, err
	}
	return g.nodes[index].clone(), nil
}

// Nodes yields copies of every node with its index, in index order.
func (g *Graph[T]) Nodes() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		for i, n := range g.nodes {
			if !yield(i, n.clone()) {
				return
			}
		}
	}
}

// Values yields the data of every node that has some, in index order.
func (g *Graph[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		withData := seqs.Filter(slices.Values(g.nodes), func(n Node[T]) bool {
			return n.hasData
		})
		for v := range seqs.Map(withData, func(n Node[T]) T { return n.data }) {
			if !yield(v) {
				return
			}
		}
	}
}

// Connections returns a copy of the links of the node at index.
func (g *Graph[T]) Connections(index int) ([]int, error) {
	if err := g.checkIndex(index); err != nil {
		return nil, err
	}
	return g.nodes[index].Connections(), nil
}

// SetNodeData stores value in the node at index.
func (g *Graph[T]) SetNodeData(index int, value T) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}
	g.nodes[index].data = value
	g.nodes[index].hasData = true
	return nil
}

// ConnectionExistsFrom reports whether node a links to b. Only a is validated.
func (g *Graph[T]) ConnectionExistsFrom(a, b int) (bool, error) {
	if err := g.checkIndex(a); err != nil {
		return false, err
	}
	return slices.Contains(g.nodes[a].connections, b), nil
}

// AddLinkBetween appends to to the connections of from. When bidirectional is set the mirror link
// from to to from is added as well, and a self-link counts as its own mirror.
//
// Either every link is added or none is: if the link, or its mirror, already exists the call fails
// with ErrDuplicateEdge and the graph is unchanged.
func (g *Graph[T]) AddLinkBetween(from, to int, bidirectional bool) error {
	if err := g.checkIndex(from); err != nil {
		return err
	}
	if err := g.checkIndex(to); err != nil {
		return err
	}
	if slices.Contains(g.nodes[from].connections, to) {
		return fmt.Errorf("link %d -> %d: %w", from, to, ErrDuplicateEdge)
	}
	mirrored := bidirectional && from != to
	if mirrored && slices.Contains(g.nodes[to].connections, from) {
		return fmt.Errorf("mirror link %d -> %d: %w", to, from, ErrDuplicateEdge)
	}

	// copy then replace, so slices handed out earlier never observe the change
	current := g.nodes[from].connections
	updated := make([]int, len(current), len(current)+1)
	copy(updated, current)
	g.nodes[from].connections = append(updated, to)
	g.logger.Debug("added link", "from", from, "to", to)

	if mirrored {
		return g.AddLinkBetween(to, from, false)
	}
	return nil
}

// RemoveLinkBetween removes to from the connections of from, and the mirror link when bidirectional
// is set. Like AddLinkBetween it is all-or-nothing: a missing link or mirror fails with ErrEdgeNotFound
// and leaves the graph unchanged.
func (g *Graph[T]) RemoveLinkBetween(from, to int, bidirectional bool) error {
	if err := g.checkIndex(from); err != nil {
		return err
	}
	if err := g.checkIndex(to); err != nil {
		return err
	}
	pos := slices.Index(g.nodes[from].connections, to)
	if pos < 0 {
		return fmt.Errorf("link %d -> %d: %w", from, to, ErrEdgeNotFound)
	}
	mirrored := bidirectional && from != to
	if mirrored && !slices.Contains(g.nodes[to].connections, from) {
		return fmt.Errorf("mirror link %d -> %d: %w", to, from, ErrEdgeNotFound)
	}

	g.nodes[from].connections = slices.Delete(slices.Clone(g.nodes[from].connections), pos, pos+1)
	g.logger.Debug("removed link", "from", from, "to", to)

	if mirrored {
		return g.RemoveLinkBetween(to, from, false)
	}
	return nil
}

func (g *Graph[T]) String() string {
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	for i, n := range g.nodes {
		if i > 0 {
			strBuilder.WriteString(", ")
		}
		strBuilder.WriteString(n.String())
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
