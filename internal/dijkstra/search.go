// Package dijkstra finds the lowest-weight path between two keys of a
// weighted edge index.
//
// The search keeps explicit candidate paths instead of a distance table. The
// frontier is a min-heap keyed on path weight, equal weights pop in the order
// they were pushed. Expanding a candidate returns as soon as one of its edges
// reaches the destination, and a candidate never revisits a key already on
// its own path. Weights are expected to be non-negative.
//
// Each key is expanded once, by the lightest candidate ending there, which is
// the first one popped. Later candidates ending at the same key are dropped.
// A search therefore touches every edge reachable from the origin at most
// once, including when the destination cannot be reached.
package dijkstra

import (
	"container/heap"
	"slices"
)

// Edges is the read side of a weighted edge index.
type Edges interface {
	// Targets returns the keys reachable from from in one step.
	Targets(from string) []string
	// Weight returns the weight of the edge from -> to.
	Weight(from, to string) (float64, bool)
}

// Path is the result of a search.
type Path struct {
	Nodes  []string `json:"nodes"`
	Weight float64  `json:"weight"`
}

// Last returns the final key of the path.
func (p Path) Last() string {
	if len(p.Nodes) == 0 {
		return ""
	}
	return p.Nodes[len(p.Nodes)-1]
}

func (p Path) contains(key string) bool {
	return slices.Contains(p.Nodes, key)
}

func (p Path) extend(key string, weight float64) Path {
	nodes := make([]string, len(p.Nodes), len(p.Nodes)+1)
	copy(nodes, p.Nodes)
	return Path{Nodes: append(nodes, key), Weight: p.Weight + weight}
}

// Search returns the path from origin to dest. Searching a key against itself
// yields a single-node path of weight 0. It reports false when dest cannot be
// reached.
func Search(edges Edges, origin, dest string) (Path, bool) {
	start := Path{Nodes: []string{origin}}
	if origin == dest {
		return start, true
	}

	expanded := make(map[string]bool)
	f := &frontier{}
	heap.Push(f, f.entry(start))
	for f.Len() > 0 {
		current := heap.Pop(f).(*candidate).path
		from := current.Last()
		if expanded[from] {
			continue
		}
		expanded[from] = true
		for _, to := range edges.Targets(from) {
			w, ok := edges.Weight(from, to)
			if !ok {
				continue
			}
			if to == dest {
				return current.extend(to, w), true
			}
			if current.contains(to) {
				continue
			}
			heap.Push(f, f.entry(current.extend(to, w)))
		}
	}
	return Path{}, false
}
