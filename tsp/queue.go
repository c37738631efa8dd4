package tsp

import "container/heap"

// frontier is the min-ordered priority queue of live search nodes
// (component C4), implemented over container/heap — the idiomatic stdlib
// primitive for this exact need.
//
// Ordering compares bound first, then prefers the deeper node on a tie,
// which avoids rational arithmetic on the integer Cost type while still
// biasing the search toward nodes closer to a feasible tour. Ties on both
// bound and level fall back to insertion sequence, giving a fully
// deterministic pop order.
type frontier struct {
	items []*node
	seq   uint64
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(f)
	return f
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.bound != b.bound {
		return a.bound < b.bound
	}
	if a.level != b.level {
		return a.level > b.level // deeper node wins a bound tie
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(*node)) }

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}

// push inserts nd, stamping it with the next insertion sequence number for
// deterministic tie-breaking.
func (f *frontier) push(nd *node) {
	f.seq++
	nd.seq = f.seq
	heap.Push(f, nd)
}

// popMin removes and returns the lowest-keyed node, or nil if empty.
func (f *frontier) popMin() *node {
	if f.Len() == 0 {
		return nil
	}
	return heap.Pop(f).(*node)
}
