package graph

import (
	"context"
	"testing"

	"github.com/vk/graphnode/internal/ctxlog"
)

// testModel is a directed record used across the package tests.
type testModel struct {
	name     string
	children []string
	parents  []string
}

func (m testModel) NodeKey() string      { return m.name }
func (m testModel) ChildKeys() []string  { return m.children }
func (m testModel) ParentKeys() []string { return m.parents }

func model(name string, children, parents []string) testModel {
	return testModel{name: name, children: children, parents: parents}
}

// city is an undirected, weighted record.
type city struct {
	name      string
	connected []link
}

type link struct {
	to       string
	distance float64
}

func (c city) NodeKey() string { return c.name }

func (c city) NeighbourKeys() []string {
	keys := make([]string, 0, len(c.connected))
	for _, l := range c.connected {
		keys = append(keys, l.to)
	}
	return keys
}

func distance(n *Node[city], target string) (string, string, float64) {
	for _, l := range n.Data.connected {
		if l.to == target {
			return n.Key(), target, l.distance
		}
	}
	return n.Key(), target, 0
}

// testContext returns a context with a silent logger.
func testContext(t *testing.T) context.Context {
	t.Helper()
	return ctxlog.Discard(context.Background())
}

func keys[T any](nodes []*Node[T]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Key())
	}
	return out
}

func testCollection() []testModel {
	return []testModel{
		model("name1", []string{"name2", "name3"}, nil),
		model("name2", []string{"name3"}, []string{"name1"}),
		model("name3", []string{"name4"}, []string{"name2", "name1"}),
		model("name4", nil, []string{"name3"}),
	}
}

func collectionWithoutParentKeys() []testModel {
	return []testModel{
		model("name1", []string{"name2", "name3"}, nil),
		model("name2", []string{"name3"}, nil),
		model("name3", []string{"name4"}, nil),
		model("name4", nil, nil),
	}
}

func collectionWithoutChildKeys() []testModel {
	return []testModel{
		model("name1", nil, nil),
		model("name2", nil, []string{"name1"}),
		model("name3", nil, []string{"name2", "name1"}),
		model("name4", nil, []string{"name3"}),
	}
}

func cycleWithoutRoot() []testModel {
	return []testModel{
		model("name1", []string{"name2", "name3"}, nil),
		model("name2", []string{"name3"}, nil),
		model("name3", []string{"name4"}, nil),
		model("name4", []string{"name1"}, nil),
	}
}

func cycleWithRoot() []testModel {
	return []testModel{
		model("name1", []string{"name2", "name3"}, nil),
		model("name2", []string{"name3"}, nil),
		model("name3", []string{"name4"}, nil),
		model("name4", []string{"name2"}, nil),
	}
}

func europe() []city {
	return []city{
		{"Paris", []link{{"Berlin", 1054}, {"Brest", 591}, {"Berne", 572}, {"Bruxelles", 312}}},
		{"Berlin", []link{{"Paris", 1054}, {"Roma", 1502}}},
		{"Brest", []link{{"Paris", 591}}},
		{"Roma", []link{{"Berlin", 1502}, {"Berne", 924}, {"Wien", 1122}}},
		{"Berne", []link{{"Paris", 572}, {"Wien", 840}, {"Roma", 924}}},
		{"Wien", []link{{"Berne", 840}, {"Praha", 333}, {"Roma", 1122}}},
		{"Bruxelles", []link{{"Praha", 897}, {"Paris", 312}}},
		{"Praha", []link{{"Bruxelles", 897}, {"Wien", 333}}},
	}
}
