package graph

import "slices"

// EdgeIndex maps a source key to its weighted targets. Targets of a source
// keep the order in which they were first set, which makes searches over the
// index deterministic.
type EdgeIndex struct {
	weights map[string]map[string]float64
	targets map[string][]string
	sources []string
}

// NewEdgeIndex creates an empty index.
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{
		weights: make(map[string]map[string]float64),
		targets: make(map[string][]string),
	}
}

// Set stores the weight of the edge from -> to, replacing any previous one.
func (e *EdgeIndex) Set(from, to string, weight float64) {
	row, ok := e.weights[from]
	if !ok {
		row = make(map[string]float64)
		e.weights[from] = row
		e.sources = append(e.sources, from)
	}
	if _, exists := row[to]; !exists {
		e.targets[from] = append(e.targets[from], to)
	}
	row[to] = weight
}

// Weight returns the weight of the edge from -> to.
func (e *EdgeIndex) Weight(from, to string) (float64, bool) {
	row, ok := e.weights[from]
	if !ok {
		return 0, false
	}
	w, ok := row[to]
	return w, ok
}

// Targets returns the targets of from in insertion order.
func (e *EdgeIndex) Targets(from string) []string {
	return slices.Clone(e.targets[from])
}

// Sources returns every key with at least one outgoing edge, in insertion
// order.
func (e *EdgeIndex) Sources() []string {
	return slices.Clone(e.sources)
}

// Len returns the number of edges.
func (e *EdgeIndex) Len() int {
	total := 0
	for _, row := range e.weights {
		total += len(row)
	}
	return total
}

// BuildEdges derives the weighted edge index from the adjacency of the graph:
// children in directed mode, neighbours in undirected mode. A nil weight
// function gives every edge a weight of 1. Each call replaces the previous
// index.
func (g *Graph[T]) BuildEdges(weight WeightFunc[T]) *EdgeIndex {
	if weight == nil {
		weight = UniformWeight[T]
	}
	idx := NewEdgeIndex()
	for _, n := range g.nodes {
		var outbound []string
		if g.mode == Directed {
			outbound = n.ChildKeys()
		} else {
			outbound = n.NeighbourKeys()
		}
		for _, target := range outbound {
			from, to, w := weight(n, target)
			idx.Set(from, to, w)
		}
	}
	g.edges = idx
	return idx
}

// Edges returns the index built by the last BuildEdges call, or nil.
func (g *Graph[T]) Edges() *EdgeIndex {
	return g.edges
}

// EdgeWeight returns the weight of the edge from -> to. It reports false when
// edges were never built or the edge does not exist.
func (g *Graph[T]) EdgeWeight(from, to string) (float64, bool) {
	if g.edges == nil {
		return 0, false
	}
	return g.edges.Weight(from, to)
}
