package route_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/script"
)

func TestAdvanceCounters_WrapClosure(t *testing.T) {
	f := newFixture(t)
	sim := f.sim(t, zeroRNG, nil, f.travel(f.dungeon, 0, 1))

	for s := 0; s < 256; s++ {
		r := sim.NewRoute(uint8(s), 0)
		for i := 0; i < 256; i++ {
			r.AdvanceStepCounter()
			r.AdvanceBattleCounter()
		}
		require.Equal(t, uint8(s), r.StepCounter, "seed %d", s)
		require.Equal(t, uint8(s), r.BattleCounter, "seed %d", s)
		require.Equal(t, uint8(s+0x11), r.StepSeed, "seed %d", s)
		require.Equal(t, uint8(s+0x17), r.BattleSeed, "seed %d", s)
	}
}

func TestPredictBattle(t *testing.T) {
	f := newFixture(t)
	sim := f.sim(t, zeroRNG, nil, f.travel(f.dungeon, 0, 1))

	r := sim.NewRoute(0, 0xFF)
	assert.False(t, r.PredictBattle(), "threat>>8 == 0 never fights")
	assert.Equal(t, uint8(1), r.StepCounter)

	r.Threat = 0x100
	assert.True(t, r.PredictBattle())

	// seed 5 needs threat>>8 > 5
	r = sim.NewRoute(5, 0x500)
	assert.False(t, r.PredictBattle())
	r.Threat = 0x600
	assert.True(t, r.PredictBattle())
}

func TestPredictFormation_Pure(t *testing.T) {
	f := newFixture(t)
	four, err := f.cat.AddSet(0x50, []int{1, 1, 0, 1}, false)
	require.NoError(t, err)
	sim := f.sim(t, zeroRNG, nil, f.travel(f.dungeon, 0, 1))

	// roll 0xA0: 4-way index 2, 2-way index 0
	r := sim.NewRoute(0xA0, 0)
	a, b := r.Clone(), r.Clone()
	fa, fb := a.PredictFormation(four), b.PredictFormation(four)
	assert.Same(t, fa, fb)
	assert.Same(t, f.cheap, fa)
	assert.Equal(t, a.BattleCounter, b.BattleCounter)
	assert.True(t, a.HasSeen(0))
	assert.False(t, r.HasSeen(0), "clones do not share seen formations")

	assert.Same(t, f.cheap, r.Clone().PredictFormation(f.dungeon))

	// roll 0xC0 picks the second entry of a 2-way set
	r = sim.NewRoute(0xBF, 0)
	r.BattleSeed = 0xC0
	r.BattleCounter = 0
	assert.Same(t, f.dear, r.PredictFormation(f.dungeon))
}

func TestPredictVeldtFormation(t *testing.T) {
	c := catalog.New()
	m := &catalog.Monster{ID: 3, Name: "Leafer"}
	require.NoError(t, c.AddMonster(m))
	for id := 0; id < 16; id++ {
		require.NoError(t, c.AddFormation(&catalog.Formation{ID: id, Enemies: []*catalog.Monster{m}}))
	}
	_, err := c.AddSet(0x40, []int{0, 1}, false)
	require.NoError(t, err)
	set, err := c.Set(0x40)
	require.NoError(t, err)
	sim, err := route.NewSimulation(script.New(&script.Travel{Zone: script.Zone{Set: set}, Steps: 1}), c, zeroRNG)
	require.NoError(t, err)

	r := sim.NewRoute(0, 0)
	_, err = r.Clone().PredictVeldtFormation()
	assert.True(t, errors.Is(err, route.ErrRetryExhausted), "nothing seen yet")

	r.Seen[9] = struct{}{}
	got, err := r.PredictVeldtFormation()
	require.NoError(t, err)
	assert.Equal(t, 9, got.ID, "slot 0 is unseen, the walk moves on to slot 1")
	assert.Equal(t, uint8(1), r.VeldtSeed)
	assert.Equal(t, uint8(1), r.BattleCounter)

	// pack 0 is skipped until pack seed wraps back around
	r.VeldtSeed = 0x3F
	got, err = r.PredictVeldtFormation()
	require.NoError(t, err)
	assert.Equal(t, 9, got.ID)
	assert.Equal(t, uint8(1), r.VeldtSeed)
}
