package graph

import "slices"

// Mode tells how the relations of a graph were declared.
type Mode int

const (
	// Directed graphs link nodes through parent and child relations.
	Directed Mode = iota
	// Undirected graphs link nodes through neighbour relations.
	Undirected
)

func (m Mode) String() string {
	switch m {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// Graph holds the nodes built from one collection of records.
type Graph[T any] struct {
	mode           Mode
	nodes          []*Node[T]
	index          map[string]int
	hasCircularRef bool
	edges          *EdgeIndex
	diagnostics    []Diagnostic
}

func newGraph[T any](mode Mode, capacity int) *Graph[T] {
	return &Graph[T]{
		mode:  mode,
		nodes: make([]*Node[T], 0, capacity),
		index: make(map[string]int, capacity),
	}
}

// Mode returns whether the graph is directed or undirected.
func (g *Graph[T]) Mode() Mode {
	return g.mode
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in insertion order. The slice is a copy; the
// nodes are not.
func (g *Graph[T]) Nodes() []*Node[T] {
	return slices.Clone(g.nodes)
}

// Node looks a node up by key.
func (g *Graph[T]) Node(key string) (*Node[T], bool) {
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// UpdateNode replaces the payload of the node with the given key. The key
// and the relations of the node are structural and stay as they are.
// It returns false if no such node exists.
func (g *Graph[T]) UpdateNode(key string, data T) bool {
	n, ok := g.Node(key)
	if !ok {
		return false
	}
	n.Data = data
	return true
}

// DeleteNode removes the node with the given key and keeps the order of the
// remaining nodes. Relations other nodes hold to the key are left in place.
// The edge index is not touched; call BuildEdges again to refresh it.
// It returns false if no such node exists.
func (g *Graph[T]) DeleteNode(key string) bool {
	i, ok := g.index[key]
	if !ok {
		return false
	}
	g.nodes = slices.Delete(g.nodes, i, i+1)
	delete(g.index, key)
	for j := i; j < len(g.nodes); j++ {
		g.index[g.nodes[j].key] = j
	}
	return true
}

// HasCircularRef reports whether the graph has a cycle or, in directed mode,
// no root node at all.
func (g *Graph[T]) HasCircularRef() bool {
	return g.hasCircularRef
}

// Diagnostics returns the non-fatal conditions found during construction, in
// the order they were found.
func (g *Graph[T]) Diagnostics() []Diagnostic {
	return slices.Clone(g.diagnostics)
}

func (g *Graph[T]) add(n *Node[T]) {
	g.index[n.key] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

func (g *Graph[T]) report(d Diagnostic) {
	g.diagnostics = append(g.diagnostics, d)
}
