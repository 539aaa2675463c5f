package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/search"
)

// costed returns a route for seed with the given cost and script position.
func costed(sim *route.Simulation, seed uint8, cost float64, ptr int) *route.Route {
	r := sim.NewRoute(seed, 0)
	r.Cost = cost
	r.ScriptPtr = ptr
	return r
}

func TestFrontier_PopOrder(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	a := costed(sim, 1, 5, 0)
	b := costed(sim, 2, 1, 0)
	c := costed(sim, 3, 5, 0)
	d := costed(sim, 4, 3, 0)

	f := search.NewFrontier(c, a)
	f.Push(d)
	f.Push(b)
	require.Equal(t, 4, f.Len())

	// equal keys pop in creation order
	want := []*route.Route{b, d, a, c}
	for i, w := range want {
		got := f.PopMin()
		assert.Same(t, w, got, "pop %d", i)
	}
	assert.Nil(t, f.PopMin())
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_KeyCapturedAtPush(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	cheap := costed(sim, 1, 1, 0)
	dear := costed(sim, 2, 2, 0)

	var f search.Frontier
	f.Push(cheap)
	f.Push(dear)
	cheap.Cost = 100

	assert.Same(t, cheap, f.PopMin())
}

func TestFrontier_Compact(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	routes := []*route.Route{
		costed(sim, 1, 4, 0),
		costed(sim, 2, 2, 0),
		costed(sim, 3, 3, 0),
		costed(sim, 4, 1, 0),
	}
	f := search.NewFrontier(routes...)

	var ranks []int
	var seeds []uint8
	dropped := f.Compact(func(r *route.Route, rank int) bool {
		ranks = append(ranks, rank)
		seeds = append(seeds, r.InitialSeed)
		return r.InitialSeed%2 == 0
	})

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []int{1, 2, 3, 4}, ranks)
	assert.Equal(t, []uint8{4, 2, 3, 1}, seeds, "predicate sees ascending cost order")
	assert.Equal(t, []uint8{2, 4}, f.Seeds())
	assert.Same(t, routes[3], f.PopMin())
	assert.Same(t, routes[1], f.PopMin())
}

func TestCompactionRound_Toggler(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	var routes []*route.Route
	for i := 0; i < 5; i++ {
		routes = append(routes, costed(sim, 7, float64(i), 0))
	}
	f := search.NewFrontier(routes...)

	// first of a seed always stays, then the toggle alternates
	dropped := f.Compact(search.CompactionRound(1, 3, f.Len()))
	assert.Equal(t, 2, dropped)
	assert.Same(t, routes[0], f.PopMin())
	assert.Same(t, routes[1], f.PopMin())
	assert.Same(t, routes[3], f.PopMin())
}

func TestCompactionRound_FurthestCheapHalfSurvives(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	routes := []*route.Route{
		costed(sim, 7, 0, 1),
		costed(sim, 7, 1, 1),
		costed(sim, 7, 2, 1), // toggled off, but at the furthest position in the cheap half
		costed(sim, 8, 3, 0),
		costed(sim, 8, 4, 0),
		costed(sim, 8, 5, 0),
		costed(sim, 8, 6, 0),
		costed(sim, 8, 7, 0),
	}
	f := search.NewFrontier(routes...)

	dropped := f.Compact(search.CompactionRound(4, 1, f.Len()))
	assert.Equal(t, 2, dropped)

	var kept []*route.Route
	for f.Len() > 0 {
		kept = append(kept, f.PopMin())
	}
	assert.Equal(t, []*route.Route{routes[0], routes[1], routes[2], routes[3], routes[4], routes[6]}, kept)
}

func TestCompactionRound_BestPerSeedNeverDropped(t *testing.T) {
	sim := newSim(t, catalog.RNGTable{}, oneStep)
	var routes []*route.Route
	best := make(map[uint8]*route.Route)
	for i := 0; i < 60; i++ {
		seed := uint8(i % 6)
		r := costed(sim, seed, float64(60-i), i%3)
		routes = append(routes, r)
		if b, ok := best[seed]; !ok || r.Cost < b.Cost {
			best[seed] = r
		}
	}
	f := search.NewFrontier(routes...)

	for progress := 1; progress <= 10; progress++ {
		f.Compact(search.CompactionRound(progress, 2, f.Len()))
	}

	survivors := make(map[*route.Route]bool)
	for f.Len() > 0 {
		survivors[f.PopMin()] = true
	}
	for seed, r := range best {
		assert.True(t, survivors[r], "cheapest route of seed %d dropped", seed)
	}
}
