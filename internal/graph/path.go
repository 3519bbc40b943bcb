package graph

import "github.com/vk/graphnode/internal/dijkstra"

// ShortestPath searches the edge index for the lowest-weight path between two
// nodes. It reports false when either key is not a node, when BuildEdges has
// not been called, or when to cannot be reached from from.
func (g *Graph[T]) ShortestPath(from, to string) (dijkstra.Path, bool) {
	if g.edges == nil {
		return dijkstra.Path{}, false
	}
	if _, ok := g.Node(from); !ok {
		return dijkstra.Path{}, false
	}
	if _, ok := g.Node(to); !ok {
		return dijkstra.Path{}, false
	}
	return dijkstra.Search(g.edges, from, to)
}
