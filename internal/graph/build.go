package graph

import (
	"context"
	"log/slog"

	"github.com/vk/graphnode/internal/ctxlog"
)

// NewDirected builds a directed graph from records. One-sided parent or child
// declarations are completed and the graph is checked for cycles before it is
// returned. Anomalies are logged and kept in Diagnostics; construction never
// fails.
func NewDirected[T DirectedRecord](ctx context.Context, records []T) *Graph[T] {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting directed graph construction.", "record_count", len(records))
	g := newGraph[T](Directed, len(records))

	// First pass: create nodes from the declared relations.
	createNodes(logger, g, records, func(n *Node[T], r T) {
		for _, k := range r.ParentKeys() {
			n.AddParent(k)
		}
		for _, k := range r.ChildKeys() {
			n.AddChild(k)
		}
	})
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	// Second pass: complete inverse relations.
	g.completeRelations(logger)
	logger.Debug("Build: Relationship completion complete.")

	// Third pass: circular references.
	if g.Len() > 0 && len(g.RootNodes()) == 0 {
		d := noRootNodes()
		logger.Warn("Graph has no root nodes and could have a circular reference but cannot determine where.")
		g.report(d)
		g.hasCircularRef = true
	} else {
		g.detectDirectedCycles(logger)
	}
	logger.Debug("Build: Graph construction finished.", "has_circular_ref", g.hasCircularRef)
	return g
}

// NewUndirected builds an undirected graph from records. Neighbour lists are
// taken as declared; no inverse relation is added.
func NewUndirected[T UndirectedRecord](ctx context.Context, records []T) *Graph[T] {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting undirected graph construction.", "record_count", len(records))
	g := newGraph[T](Undirected, len(records))

	createNodes(logger, g, records, func(n *Node[T], r T) {
		for _, k := range r.NeighbourKeys() {
			n.addLink(k)
		}
	})
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	g.reportDangling(logger)
	g.detectUndirectedCycles(logger)
	logger.Debug("Build: Graph construction finished.", "has_circular_ref", g.hasCircularRef)
	return g
}

// createNodes performs the first pass of graph creation. The first record of
// each key wins.
func createNodes[T Keyed](logger *slog.Logger, g *Graph[T], records []T, link func(*Node[T], T)) {
	for _, r := range records {
		key := r.NodeKey()
		if _, exists := g.index[key]; exists {
			logger.Warn("Duplicate node key found, only the first one is added to the graph.", "key", key)
			g.report(duplicateKey(key))
			continue
		}
		n := newNode(key, r)
		link(n, r)
		g.add(n)
	}
}

// completeRelations walks every declared relation once and records its
// inverse on the other end.
func (g *Graph[T]) completeRelations(logger *slog.Logger) {
	for _, n := range g.nodes {
		// Snapshot: the loop below may add keys to n itself on self references.
		for _, k := range n.AdjacentKeys() {
			d := n.relations[k]
			other, ok := g.Node(k)
			if !ok {
				logger.Debug("Relation points to an unknown node.", "from", n.key, "to", k)
				g.report(danglingReference(n.key, k))
				continue
			}
			if d.Has(Child) {
				other.AddParent(n.key)
			}
			if d.Has(Parent) {
				other.AddChild(n.key)
			}
		}
	}
}

func (g *Graph[T]) reportDangling(logger *slog.Logger) {
	for _, n := range g.nodes {
		for _, k := range n.order {
			if _, ok := g.index[k]; !ok {
				logger.Debug("Relation points to an unknown node.", "from", n.key, "to", k)
				g.report(danglingReference(n.key, k))
			}
		}
	}
}
