package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/script"
)

// fixture is a two-formation catalog: cheap (cost 10, 5 xp) and dear
// (cost 50, 1 xp), offered by a dungeon set, an overworld set and the two
// river sets.
type fixture struct {
	cat       *catalog.Catalog
	cheap     *catalog.Formation
	dear      *catalog.Formation
	dungeon   *catalog.FormationSet
	overworld *catalog.FormationSet
}

const (
	dungeonSetID   = 0x40
	overworldSetID = 0x10
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := catalog.New()
	a := &catalog.Monster{ID: 1, Name: "Leafer", XP: 5}
	b := &catalog.Monster{ID: 2, Name: "Brawler", XP: 1}
	require.NoError(t, c.AddMonster(a))
	require.NoError(t, c.AddMonster(b))

	f := &fixture{
		cat:   c,
		cheap: &catalog.Formation{ID: 0, Enemies: []*catalog.Monster{a}, CostOverride: 10},
		dear:  &catalog.Formation{ID: 1, Enemies: []*catalog.Monster{b}, CostOverride: 50},
	}
	require.NoError(t, c.AddFormation(f.cheap))
	require.NoError(t, c.AddFormation(f.dear))

	var err error
	f.dungeon, err = c.AddSet(dungeonSetID, []int{0, 1}, false)
	require.NoError(t, err)
	f.overworld, err = c.AddSet(overworldSetID, []int{0, 1}, true)
	require.NoError(t, err)
	_, err = c.AddSet(0x107, []int{0, 1}, false)
	require.NoError(t, err)
	_, err = c.AddSet(0x108, []int{1, 0}, false)
	require.NoError(t, err)

	return f
}

func (f *fixture) travel(set *catalog.FormationSet, rate, steps int) *script.Travel {
	return &script.Travel{Zone: script.Zone{Set: set, ThreatRate: rate}, Steps: steps}
}

func (f *fixture) sim(t *testing.T, rng catalog.RNGTable, opts []route.Option, instrs ...script.Instruction) *route.Simulation {
	t.Helper()
	sim, err := route.NewSimulation(script.New(instrs...), f.cat, rng, opts...)
	require.NoError(t, err)
	return sim
}

// zeroRNG is an RNG table of zero bytes: every roll equals the seed.
var zeroRNG catalog.RNGTable

// battleRate makes every step of a zeroRNG route with seed 0 a battle.
const battleRate = 0x100
