package dijkstra

import (
	"container/heap"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// table is a minimal ordered Edges implementation for the tests.
type table struct {
	order   map[string][]string
	weights map[[2]string]float64
}

func newTable() *table {
	return &table{order: map[string][]string{}, weights: map[[2]string]float64{}}
}

func (t *table) add(from, to string, w float64) *table {
	if _, ok := t.weights[[2]string{from, to}]; !ok {
		t.order[from] = append(t.order[from], to)
	}
	t.weights[[2]string{from, to}] = w
	return t
}

func (t *table) both(a, b string, w float64) *table {
	return t.add(a, b, w).add(b, a, w)
}

func (t *table) Targets(from string) []string { return t.order[from] }

func (t *table) Weight(from, to string) (float64, bool) {
	w, ok := t.weights[[2]string{from, to}]
	return w, ok
}

func europe() *table {
	return newTable().
		both("Paris", "Berlin", 1054).
		both("Paris", "Brest", 591).
		both("Paris", "Berne", 572).
		both("Paris", "Bruxelles", 312).
		both("Berlin", "Roma", 1502).
		both("Roma", "Berne", 924).
		both("Roma", "Wien", 1122).
		both("Berne", "Wien", 840).
		both("Wien", "Praha", 333).
		both("Bruxelles", "Praha", 897)
}

func TestSearch_Europe(t *testing.T) {
	path, ok := Search(europe(), "Paris", "Praha")
	require.True(t, ok)
	assert.Equal(t, []string{"Paris", "Bruxelles", "Praha"}, path.Nodes)
	assert.Equal(t, 1209.0, path.Weight)
	assert.Equal(t, "Praha", path.Last())
}

func TestSearch_Reverse(t *testing.T) {
	path, ok := Search(europe(), "Praha", "Paris")
	require.True(t, ok)
	assert.Equal(t, []string{"Praha", "Bruxelles", "Paris"}, path.Nodes)
	assert.Equal(t, 1209.0, path.Weight)
}

func TestSearch_PrefersLighterLongerPath(t *testing.T) {
	edges := newTable().
		add("a", "b", 1).
		add("a", "c", 10).
		add("b", "c", 1).
		add("c", "d", 1)

	path, ok := Search(edges, "a", "d")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path.Nodes)
	assert.Equal(t, 3.0, path.Weight)
}

func TestSearch_NoPath(t *testing.T) {
	edges := newTable().add("a", "b", 1).add("c", "d", 1)

	t.Run("disconnected", func(t *testing.T) {
		path, ok := Search(edges, "a", "d")
		assert.False(t, ok)
		assert.Empty(t, path.Nodes)
	})

	t.Run("unknown origin", func(t *testing.T) {
		_, ok := Search(edges, "zzz", "a")
		assert.False(t, ok)
	})

	t.Run("dead end", func(t *testing.T) {
		_, ok := Search(edges, "b", "a")
		assert.False(t, ok)
	})
}

func TestSearch_Self(t *testing.T) {
	path, ok := Search(europe(), "Roma", "Roma")
	require.True(t, ok)
	assert.Equal(t, []string{"Roma"}, path.Nodes)
	assert.Zero(t, path.Weight)
}

func TestSearch_TerminatesOnCycles(t *testing.T) {
	edges := newTable().
		add("a", "b", 1).
		add("b", "c", 1).
		add("c", "a", 1).
		add("c", "b", 1)

	_, ok := Search(edges, "a", "z")
	assert.False(t, ok)
}

func TestSearch_PathWeightIsSumOfEdges(t *testing.T) {
	edges := europe()
	for _, pair := range [][2]string{{"Brest", "Wien"}, {"Berlin", "Praha"}, {"Roma", "Bruxelles"}} {
		path, ok := Search(edges, pair[0], pair[1])
		require.True(t, ok, "%s -> %s", pair[0], pair[1])

		sum := 0.0
		for i := 1; i < len(path.Nodes); i++ {
			w, ok := edges.Weight(path.Nodes[i-1], path.Nodes[i])
			require.True(t, ok)
			sum += w
		}
		assert.Equal(t, sum, path.Weight)
	}
}

func TestSearch_UnreachableInDenseGraph(t *testing.T) {
	const size = 12
	edges := newTable()
	for i := range size {
		for j := range size {
			if i != j {
				edges.add(fmt.Sprintf("c%d", i), fmt.Sprintf("c%d", j), 1)
			}
		}
	}

	done := make(chan bool, 1)
	go func() {
		_, ok := Search(edges, "c0", "island")
		done <- ok
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not finish on a complete graph")
	}
}

func TestSearch_ExpandsEachKeyOnce(t *testing.T) {
	edges := &countingTable{table: newTable().
		both("a", "b", 1).
		both("a", "c", 1).
		both("b", "c", 1).
		add("c", "d", 1)}

	path, ok := Search(edges, "a", "z")
	assert.False(t, ok)
	assert.Empty(t, path.Nodes)
	for key, n := range edges.calls {
		assert.Equal(t, 1, n, "targets of %s read more than once", key)
	}
}

type countingTable struct {
	*table
	calls map[string]int
}

func (c *countingTable) Targets(from string) []string {
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[from]++
	return c.table.Targets(from)
}

func TestFrontier_OrdersByWeightThenPushOrder(t *testing.T) {
	f := &frontier{}
	heap.Push(f, f.entry(Path{Nodes: []string{"first"}, Weight: 2}))
	heap.Push(f, f.entry(Path{Nodes: []string{"light"}, Weight: 1}))
	heap.Push(f, f.entry(Path{Nodes: []string{"second"}, Weight: 2}))

	var got []string
	for f.Len() > 0 {
		got = append(got, heap.Pop(f).(*candidate).path.Last())
	}
	assert.Equal(t, []string{"light", "first", "second"}, got)
}
