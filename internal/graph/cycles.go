package graph

import (
	"log/slog"
	"slices"
)

// walkFrame is one pending step of the directed walk: the node to visit and
// the keys already on the path leading to it. An exit frame closes the visit
// of key once all of its descendants were walked.
type walkFrame struct {
	key  string
	path []string
	exit bool
	hits int
}

// detectDirectedCycles walks the paths from every root. Reaching a key that
// is already on the current path marks that node circular and stops the
// branch; the walk then carries on with the remaining branches and roots so
// that every reachable cycle entry is reported.
//
// A node whose whole descent finished without reaching a key on its path is
// clean: what it reaches is acyclic and cannot lead back to any of its
// ancestors, so later paths do not descend into it again. This keeps the walk
// linear on acyclic graphs.
func (g *Graph[T]) detectDirectedCycles(logger *slog.Logger) {
	roots := g.RootNodes()
	stack := make([]walkFrame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{key: roots[i].key})
	}

	clean := make(map[string]bool, g.Len())
	hits := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.exit {
			if hits == f.hits {
				clean[f.key] = true
			}
			continue
		}
		if clean[f.key] {
			continue
		}

		n, ok := g.Node(f.key)
		if !ok {
			continue // dangling child key, already reported
		}
		if slices.Contains(f.path, f.key) {
			hits++
			g.hasCircularRef = true
			if !n.circular {
				n.circular = true
				logger.Warn("Circular reference detected.", "key", f.key, "path", f.path)
				g.report(cycleAt(f.key))
			}
			continue
		}

		path := make([]string, len(f.path), len(f.path)+1)
		copy(path, f.path)
		path = append(path, f.key)

		stack = append(stack, walkFrame{key: f.key, exit: true, hits: hits})
		// Push in reverse so children are visited in declaration order.
		children := n.ChildKeys()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{key: children[i], path: path})
		}
	}
}

// linkFrame is one pending step of the undirected walk.
type linkFrame struct {
	key  string
	from string
}

// detectUndirectedCycles sets the graph flag when a cycle of three or more
// nodes exists. Declared neighbour lists may be one-sided, so the walk runs on
// their symmetric closure: a link declared by either end is one edge. The
// immediate predecessor is excluded from the check since every edge would
// otherwise read as a two-node cycle. The walk starts at the first node and
// then restarts from every node not reached yet.
func (g *Graph[T]) detectUndirectedCycles(logger *slog.Logger) {
	if g.Len() == 0 {
		logger.Debug("Graph has no nodes.")
		return
	}
	adj := g.undirectedAdjacency()
	visited := make(map[string]bool, g.Len())

	for _, start := range g.nodes {
		if visited[start.key] {
			continue
		}
		stack := []linkFrame{{key: start.key}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// Scheduled twice from two different nodes.
			if visited[f.key] {
				g.flagUndirectedCycle(logger, f.key)
				return
			}
			visited[f.key] = true

			next := adj[f.key]
			for i := len(next) - 1; i >= 0; i-- {
				k := next[i]
				if k == f.from {
					continue
				}
				if visited[k] {
					g.flagUndirectedCycle(logger, k)
					return
				}
				stack = append(stack, linkFrame{key: k, from: f.key})
			}
		}
	}
}

func (g *Graph[T]) flagUndirectedCycle(logger *slog.Logger, key string) {
	g.hasCircularRef = true
	logger.Warn("Circular reference detected in undirected graph.", "revisited", key)
	g.report(cycleAt(""))
}

// undirectedAdjacency returns, for every node, the existing neighbour keys in
// the order they were first seen, with self references dropped and each link
// present on both ends.
func (g *Graph[T]) undirectedAdjacency() map[string][]string {
	adj := make(map[string][]string, g.Len())
	seen := make(map[[2]string]bool)
	link := func(a, b string) {
		if seen[[2]string{a, b}] {
			return
		}
		seen[[2]string{a, b}] = true
		adj[a] = append(adj[a], b)
	}
	for _, n := range g.nodes {
		for _, k := range n.NeighbourKeys() {
			if k == n.key {
				continue
			}
			if _, ok := g.index[k]; !ok {
				continue
			}
			link(n.key, k)
			link(k, n.key)
		}
	}
	return adj
}
