package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/script"
)

// newCatalog returns a two-formation catalog, cost 10 and cost 50, offered
// by the 2-way dungeon set 0x40.
func newCatalog(t testing.TB) (*catalog.Catalog, *catalog.FormationSet) {
	t.Helper()
	c := catalog.New()
	a := &catalog.Monster{ID: 1, Name: "Leafer", XP: 5}
	b := &catalog.Monster{ID: 2, Name: "Brawler", XP: 1}
	require.NoError(t, c.AddMonster(a))
	require.NoError(t, c.AddMonster(b))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 0, Enemies: []*catalog.Monster{a}, CostOverride: 10}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 1, Enemies: []*catalog.Monster{b}, CostOverride: 50}))
	set, err := c.AddSet(0x40, []int{0, 1}, false)
	require.NoError(t, err)
	return c, set
}

// newSim builds a simulation over the two-formation catalog.
func newSim(t testing.TB, rng catalog.RNGTable, instrs func(*catalog.FormationSet) []script.Instruction) *route.Simulation {
	t.Helper()
	c, set := newCatalog(t)
	sim, err := route.NewSimulation(script.New(instrs(set)...), c, rng)
	require.NoError(t, err)
	return sim
}

// oneStep is a script of a single one-step travel at threat rate 0x100.
func oneStep(set *catalog.FormationSet) []script.Instruction {
	return []script.Instruction{
		&script.Travel{Zone: script.Zone{Set: set, ThreatRate: 0x100}, Steps: 1},
	}
}

// scrambledRNG spreads battle rolls so that only some seeds fight.
func scrambledRNG() catalog.RNGTable {
	var rng catalog.RNGTable
	for i := range rng {
		rng[i] = byte(i*37 + 11)
	}
	return rng
}
