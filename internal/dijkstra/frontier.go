package dijkstra

// candidate is one in-progress path on the frontier.
type candidate struct {
	path Path
	seq  int
}

// frontier implements heap.Interface as a min-heap on path weight.
type frontier struct {
	items []*candidate
	next  int
}

func (f *frontier) entry(p Path) *candidate {
	c := &candidate{path: p, seq: f.next}
	f.next++
	return c
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.path.Weight != b.path.Weight {
		return a.path.Weight < b.path.Weight
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*candidate))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return c
}
