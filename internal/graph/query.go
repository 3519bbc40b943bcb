package graph

// RootNodes returns the nodes without parents. Undirected graphs have no
// roots and return nil.
func (g *Graph[T]) RootNodes() []*Node[T] {
	if g.mode != Directed {
		return nil
	}
	return g.filter(func(n *Node[T]) bool { return !n.HasParents() })
}

// LeafNodes returns the nodes without children. Undirected graphs return nil.
func (g *Graph[T]) LeafNodes() []*Node[T] {
	if g.mode != Directed {
		return nil
	}
	return g.filter(func(n *Node[T]) bool { return !n.HasChildren() })
}

// CircularNodes returns the nodes the cycle walk marked as circular.
func (g *Graph[T]) CircularNodes() []*Node[T] {
	return g.filter(func(n *Node[T]) bool { return n.circular })
}

// ParentNodes returns the existing parents of the node with the given key.
func (g *Graph[T]) ParentNodes(key string) []*Node[T] {
	if g.mode != Directed {
		return nil
	}
	n, ok := g.Node(key)
	if !ok {
		return nil
	}
	return g.resolve(key, n.ParentKeys())
}

// ChildNodes returns the existing children of the node with the given key.
func (g *Graph[T]) ChildNodes(key string) []*Node[T] {
	if g.mode != Directed {
		return nil
	}
	n, ok := g.Node(key)
	if !ok {
		return nil
	}
	return g.resolve(key, n.ChildKeys())
}

// NeighbourNodes returns every existing node adjacent to the node with the
// given key, whatever the direction of the relation.
func (g *Graph[T]) NeighbourNodes(key string) []*Node[T] {
	n, ok := g.Node(key)
	if !ok {
		return nil
	}
	return g.resolve(key, n.order)
}

// SiblingNodes returns the nodes sharing at least one parent with the node
// with the given key, excluding the node itself.
func (g *Graph[T]) SiblingNodes(key string) []*Node[T] {
	if g.mode != Directed {
		return nil
	}
	n, ok := g.Node(key)
	if !ok {
		return nil
	}
	parents := n.ParentKeys()
	if len(parents) == 0 {
		return nil
	}
	return g.filter(func(other *Node[T]) bool {
		if other.key == key {
			return false
		}
		for _, p := range parents {
			if d, ok := other.relations[p]; ok && d.Has(Parent) {
				return true
			}
		}
		return false
	})
}

func (g *Graph[T]) filter(keep func(*Node[T]) bool) []*Node[T] {
	var out []*Node[T]
	for _, n := range g.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// resolve maps keys to nodes, skipping self references and unknown keys.
func (g *Graph[T]) resolve(self string, keys []string) []*Node[T] {
	var out []*Node[T]
	for _, k := range keys {
		if k == self {
			continue
		}
		if n, ok := g.Node(k); ok {
			out = append(out, n)
		}
	}
	return out
}
