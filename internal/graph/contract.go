package graph

// Keyed is implemented by every record that can become a node.
type Keyed interface {
	// NodeKey returns the identity of the record. It must be unique within
	// the input collection; duplicates are dropped.
	NodeKey() string
}

// DirectedRecord is the contract for records of a directed graph.
//
// Declaring a relation on one side is enough: the builder adds the inverse.
type DirectedRecord interface {
	Keyed
	// ParentKeys returns the keys of the records pointing to this one.
	ParentKeys() []string
	// ChildKeys returns the keys of the records this one points to.
	ChildKeys() []string
}

// UndirectedRecord is the contract for records of an undirected graph.
type UndirectedRecord interface {
	Keyed
	// NeighbourKeys returns the keys of the records linked with this one.
	NeighbourKeys() []string
}

// WeightFunc derives the weighted edge from node n to target. It returns the
// source and destination keys it wants indexed along with the weight; in the
// common case source is n.Key() and dest is target.
type WeightFunc[T any] func(n *Node[T], target string) (source, dest string, weight float64)

// UniformWeight gives every edge a weight of 1.
func UniformWeight[T any](n *Node[T], target string) (string, string, float64) {
	return n.Key(), target, 1.0
}
