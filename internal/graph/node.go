package graph

import "strings"

// Direction tags the relation a node has with one of its neighbours. It is a
// bit set: a neighbour may be both a parent and a child.
type Direction uint8

const (
	// Parent marks a neighbour pointing to the node.
	Parent Direction = 1 << iota
	// Child marks a neighbour the node points to.
	Child
	// Linked marks an undirected neighbour.
	Linked
)

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != 0 && d&other == other
}

func (d Direction) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	if d.Has(Parent) {
		parts = append(parts, "parent")
	}
	if d.Has(Child) {
		parts = append(parts, "child")
	}
	if d.Has(Linked) {
		parts = append(parts, "linked")
	}
	return strings.Join(parts, "|")
}

// Node wraps one host record.
type Node[T any] struct {
	// Data is the host record the node was built from.
	Data T

	key       string
	relations map[string]Direction
	order     []string // neighbour keys in first-insertion order
	circular  bool
}

func newNode[T any](key string, data T) *Node[T] {
	return &Node[T]{
		Data:      data,
		key:       key,
		relations: make(map[string]Direction),
	}
}

// Key returns the identity of the node. It never changes.
func (n *Node[T]) Key() string {
	return n.key
}

// IsCircular reports whether the cycle walk located a cycle at this node.
func (n *Node[T]) IsCircular() bool {
	return n.circular
}

// Relation returns the direction bits this node holds for key.
func (n *Node[T]) Relation(key string) (Direction, bool) {
	d, ok := n.relations[key]
	return d, ok
}

// HasParents reports whether any parent relation exists.
func (n *Node[T]) HasParents() bool {
	return n.has(Parent)
}

// HasChildren reports whether any child relation exists.
func (n *Node[T]) HasChildren() bool {
	return n.has(Child)
}

// ParentKeys returns the parent keys in insertion order.
func (n *Node[T]) ParentKeys() []string {
	return n.keys(Parent)
}

// ChildKeys returns the child keys in insertion order.
func (n *Node[T]) ChildKeys() []string {
	return n.keys(Child)
}

// NeighbourKeys returns the undirected neighbour keys in insertion order.
func (n *Node[T]) NeighbourKeys() []string {
	return n.keys(Linked)
}

// AdjacentKeys returns every related key regardless of direction.
func (n *Node[T]) AdjacentKeys() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// AddParent records key as a parent. Calling it twice is a no-op.
func (n *Node[T]) AddParent(key string) {
	n.relate(key, Parent)
}

// AddChild records key as a child. Calling it twice is a no-op.
func (n *Node[T]) AddChild(key string) {
	n.relate(key, Child)
}

func (n *Node[T]) addLink(key string) {
	n.relate(key, Linked)
}

func (n *Node[T]) relate(key string, d Direction) {
	cur, ok := n.relations[key]
	if !ok {
		n.order = append(n.order, key)
	}
	n.relations[key] = cur | d
}

func (n *Node[T]) has(d Direction) bool {
	for _, rel := range n.relations {
		if rel.Has(d) {
			return true
		}
	}
	return false
}

func (n *Node[T]) keys(d Direction) []string {
	var out []string
	for _, k := range n.order {
		if n.relations[k].Has(d) {
			out = append(out, k)
		}
	}
	return out
}
