package search

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/encrouter/route"
)

// item is one frontier entry. The key is captured at push time so the heap
// stays valid even though routes are never mutated after being pushed.
type item struct {
	key float64
	r   *route.Route
}

// less orders entries by key, then by route ID.
func less(a, b item) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.r.ID < b.r.ID
}

// routePQ implements heap.Interface over frontier entries.
type routePQ []item

func (pq routePQ) Len() int           { return len(pq) }
func (pq routePQ) Less(i, j int) bool { return less(pq[i], pq[j]) }
func (pq routePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *routePQ) Push(x interface{}) {
	*pq = append(*pq, x.(item))
}
func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = item{}
	*pq = old[:n-1]
	return it
}

// Frontier is a min-priority queue of routes ordered by (Heuristic, ID).
// The zero value is an empty frontier ready for use.
type Frontier struct {
	pq routePQ
}

// NewFrontier returns a frontier holding routes.
func NewFrontier(routes ...*route.Route) *Frontier {
	f := &Frontier{pq: make(routePQ, 0, len(routes))}
	for _, r := range routes {
		f.pq = append(f.pq, item{key: r.Heuristic(), r: r})
	}
	heap.Init(&f.pq)
	return f
}

// Push adds r keyed by its current heuristic.
func (f *Frontier) Push(r *route.Route) {
	heap.Push(&f.pq, item{key: r.Heuristic(), r: r})
}

// PopMin removes and returns the route with the lowest key, or nil when empty.
func (f *Frontier) PopMin() *route.Route {
	if len(f.pq) == 0 {
		return nil
	}
	return heap.Pop(&f.pq).(item).r
}

// Len returns the number of routes on the frontier.
func (f *Frontier) Len() int { return len(f.pq) }

// Compact rebuilds the frontier from the routes keep accepts. keep is called
// once per route in ascending (key, ID) order with the route's 1-based rank
// in that order. It returns the number of routes dropped.
//
// Complexity: O(F log F).
func (f *Frontier) Compact(keep func(r *route.Route, rank int) bool) int {
	sorted := make(routePQ, len(f.pq))
	copy(sorted, f.pq)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	kept := sorted[:0]
	for i, it := range sorted {
		if keep(it.r, i+1) {
			kept = append(kept, it)
		}
	}
	for i := len(kept); i < len(sorted); i++ {
		sorted[i] = item{}
	}

	dropped := len(f.pq) - len(kept)
	// sorted order already satisfies the heap property; Init keeps that explicit.
	f.pq = kept
	heap.Init(&f.pq)

	return dropped
}

// Seeds returns the distinct starting seeds on the frontier, ascending.
func (f *Frontier) Seeds() []uint8 {
	var present [256]bool
	for _, it := range f.pq {
		present[it.r.InitialSeed] = true
	}
	var seeds []uint8
	for s, ok := range present {
		if ok {
			seeds = append(seeds, uint8(s))
		}
	}
	return seeds
}
