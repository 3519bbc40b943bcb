package app

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/vk/graphnode/internal/config"
	"github.com/vk/graphnode/internal/graph"
)

// Report summarizes a built graph and the optional path query.
type Report struct {
	Mode           string   `json:"mode"`
	Nodes          int      `json:"nodes"`
	Edges          int      `json:"edges"`
	Roots          []string `json:"roots,omitempty"`
	Leaves         []string `json:"leaves,omitempty"`
	HasCircularRef bool     `json:"has_circular_ref"`
	Circular       []string `json:"circular,omitempty"`
	Diagnostics    []string `json:"diagnostics,omitempty"`
	// Labels maps node keys to the labels declared on them. Nodes without
	// labels are left out.
	Labels map[string]map[string]string `json:"labels,omitempty"`
	Query  *Query                       `json:"query,omitempty"`
}

// Query is the outcome of a shortest-path request.
type Query struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Found  bool     `json:"found"`
	Path   []string `json:"path,omitempty"`
	Weight float64  `json:"weight,omitempty"`
}

func newReport(g *graph.Graph[*config.Record]) *Report {
	r := &Report{
		Mode:           g.Mode().String(),
		Nodes:          g.Len(),
		HasCircularRef: g.HasCircularRef(),
		Roots:          nodeKeys(g.RootNodes()),
		Leaves:         nodeKeys(g.LeafNodes()),
		Circular:       nodeKeys(g.CircularNodes()),
	}
	if edges := g.Edges(); edges != nil {
		r.Edges = edges.Len()
	}
	for _, d := range g.Diagnostics() {
		r.Diagnostics = append(r.Diagnostics, d.Error())
	}
	for _, n := range g.Nodes() {
		if len(n.Data.Labels) == 0 {
			continue
		}
		if r.Labels == nil {
			r.Labels = make(map[string]map[string]string)
		}
		r.Labels[n.Key()] = maps.Clone(n.Data.Labels)
	}
	return r
}

func (r *Report) addQuery(g *graph.Graph[*config.Record], from, to string) {
	q := &Query{From: from, To: to}
	if path, ok := g.ShortestPath(from, to); ok {
		q.Found = true
		q.Path = path.Nodes
		q.Weight = path.Weight
	}
	r.Query = q
}

func (r *Report) render(w io.Writer, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s\n", r.Mode)
	fmt.Fprintf(&b, "nodes: %d\n", r.Nodes)
	fmt.Fprintf(&b, "edges: %d\n", r.Edges)
	if r.Mode == graph.Directed.String() {
		fmt.Fprintf(&b, "roots: %s\n", list(r.Roots))
		fmt.Fprintf(&b, "leaves: %s\n", list(r.Leaves))
	}
	fmt.Fprintf(&b, "circular: %t\n", r.HasCircularRef)
	if len(r.Circular) > 0 {
		fmt.Fprintf(&b, "circular nodes: %s\n", list(r.Circular))
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "diagnostic: %s\n", d)
	}
	for _, key := range slices.Sorted(maps.Keys(r.Labels)) {
		labels := r.Labels[key]
		pairs := make([]string, 0, len(labels))
		for _, name := range slices.Sorted(maps.Keys(labels)) {
			pairs = append(pairs, name+"="+labels[name])
		}
		fmt.Fprintf(&b, "labels %s: %s\n", key, strings.Join(pairs, ", "))
	}
	if q := r.Query; q != nil {
		if q.Found {
			fmt.Fprintf(&b, "path %s -> %s: %s (weight %g)\n", q.From, q.To, strings.Join(q.Path, " -> "), q.Weight)
		} else {
			fmt.Fprintf(&b, "path %s -> %s: not found\n", q.From, q.To)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func nodeKeys(nodes []*graph.Node[*config.Record]) []string {
	if len(nodes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(nodes))
	for _, n := range nodes {
		keys = append(keys, n.Key())
	}
	return keys
}

func list(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	return strings.Join(keys, ", ")
}
