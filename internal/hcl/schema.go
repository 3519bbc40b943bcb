package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks of a graph file.
type fileRoot struct {
	Graph *graphBlock  `hcl:"graph,block"`
	Nodes []*nodeBlock `hcl:"node,block"`
}

// graphBlock holds file-wide settings.
type graphBlock struct {
	Mode string `hcl:"mode,optional"`
}

// nodeBlock maps to a `node "<key>" { ... }` block.
type nodeBlock struct {
	Key        string         `hcl:"key,label"`
	Parents    []string       `hcl:"parents,optional"`
	Children   []string       `hcl:"children,optional"`
	Neighbours []string       `hcl:"neighbours,optional"`
	Weights    hcl.Expression `hcl:"weights,optional"`
	Labels     hcl.Expression `hcl:"labels,optional"`
}
