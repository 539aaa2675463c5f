package catalog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/encrouter/catalog"
)

// buildSmallCatalog registers two monsters, four formations and one 4-way set.
func buildSmallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	guard := &catalog.Monster{ID: 0, Name: "Guard", XP: 12}
	dog := &catalog.Monster{ID: 1, Name: "Lobo", XP: 8, EscapeDifficult: true}
	require.NoError(t, c.AddMonster(guard))
	require.NoError(t, c.AddMonster(dog))

	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 0, Enemies: []*catalog.Monster{guard}}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 1, Enemies: []*catalog.Monster{guard, guard}}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 2, Enemies: []*catalog.Monster{dog, guard}, BackProhibited: true}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 3, Enemies: []*catalog.Monster{dog}, CostOverride: 42}))

	_, err := c.AddSet(0x10, []int{0, 1, 2, 3}, true)
	require.NoError(t, err)

	return c
}

func TestFormation_BaseCost(t *testing.T) {
	c := buildSmallCatalog(t)

	cases := []struct {
		id   int
		want float64
	}{
		// 5 + back 2 + 1 enemy
		{0, 8},
		// 5 + pincer 3 + back 2 + 2 enemies
		{1, 12},
		// 5 + pincer 3 + difficult 5 + 2 enemies (back prohibited)
		{2, 15},
		// explicit override
		{3, 42},
	}
	for _, tc := range cases {
		f, err := c.Formation(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.want, f.BaseCost(), "formation %d", tc.id)
	}
}

func TestFormation_CostModifiers(t *testing.T) {
	boss := &catalog.Monster{ID: 0x150, Name: "Boss", Inescapable: true}
	runner := &catalog.Monster{ID: 2, Name: "Runner", EscapeDifficult: true}
	inescapable := &catalog.Formation{ID: 7, Enemies: []*catalog.Monster{boss}}
	difficult := &catalog.Formation{ID: 8, Enemies: []*catalog.Monster{runner}}

	// 5 + 2 + 15 + 1
	assert.Equal(t, 23.0, inescapable.Cost(1, false, false))
	assert.Equal(t, 46.0, inescapable.Cost(2, false, false))
	// smoke bombs and fleeing never help against inescapable battles
	assert.Equal(t, 23.0, inescapable.Cost(1, true, true))

	// 5 + 2 + 5 + 1
	assert.Equal(t, 13.0, difficult.Cost(1, false, false))
	assert.Equal(t, catalog.SmokeBombCost, difficult.Cost(1, true, false))
	assert.Equal(t, catalog.FleeCost+catalog.FleeDifficultPenalty, difficult.Cost(1, false, true))
	// weight below the caps leaves the cost untouched
	assert.InDelta(t, 1.3, difficult.Cost(0.1, true, true), 1e-9)
}

func TestFormation_XPAndEnemies(t *testing.T) {
	c := buildSmallCatalog(t)
	f, err := c.Formation(2)
	require.NoError(t, err)

	assert.Equal(t, 20, f.XP())
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}}, f.PresentEnemyIDs())
	assert.True(t, f.HasEnemy(1))
	assert.False(t, f.HasEnemy(5))
	assert.Equal(t, "Guard x1, Lobo x1 (2) cost 15", f.String())
}

func TestCatalog_Lookups(t *testing.T) {
	c := buildSmallCatalog(t)

	_, err := c.Formation(99)
	assert.True(t, errors.Is(err, catalog.ErrUnknownFormation))
	_, err = c.Set(99)
	assert.True(t, errors.Is(err, catalog.ErrUnknownSet))

	set, err := c.Set(0x10)
	require.NoError(t, err)
	assert.Len(t, set.Formations, 4)
	assert.True(t, set.Overworld)

	assert.Equal(t, []int{2, 3}, c.FormationsWithEnemy(1))

	nf, ns := c.Len()
	assert.Equal(t, 4, nf)
	assert.Equal(t, 1, ns)
}

func TestCatalog_AddRejectsInvalid(t *testing.T) {
	c := buildSmallCatalog(t)

	err := c.AddMonster(&catalog.Monster{ID: 0})
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))

	err = c.AddFormation(&catalog.Formation{ID: 1})
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))

	_, err = c.AddSet(0x11, []int{0, 1, 2}, false)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog), "3-way sets are not supported")

	_, err = c.AddSet(0x12, []int{0, 77}, false)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog), "unknown formation reference")

	_, err = c.AddSet(0x10, []int{0, 1}, false)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog), "duplicate set")
}

func TestCatalog_VeldtPacks(t *testing.T) {
	c := catalog.New()
	small := &catalog.Monster{ID: 3, Name: "Leafer"}
	big := &catalog.Monster{ID: 0x101, Name: "Dragon"}
	require.NoError(t, c.AddMonster(small))
	require.NoError(t, c.AddMonster(big))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 0, Enemies: []*catalog.Monster{small}}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 1, Enemies: []*catalog.Monster{small, big}}))
	require.NoError(t, c.AddFormation(&catalog.Formation{ID: 9, Enemies: []*catalog.Monster{small}}))

	packs := c.VeldtPacks()
	assert.Equal(t, 0, packs[0][0])
	assert.Equal(t, catalog.NoFormation, packs[0][1], "oversized enemy")
	assert.Equal(t, catalog.NoFormation, packs[0][2], "absent formation")
	assert.Equal(t, 9, packs[1][1])
	assert.Equal(t, catalog.NoFormation, packs[63][7])
}

func TestReadRNGTable(t *testing.T) {
	rom := make([]byte, catalog.RNGTableOffset+catalog.RNGTableSize)
	for i := 0; i < catalog.RNGTableSize; i++ {
		rom[catalog.RNGTableOffset+i] = byte(255 - i)
	}

	table, err := catalog.ReadRNGTable(bytes.NewReader(rom))
	require.NoError(t, err)
	assert.Equal(t, byte(255), table[0])
	assert.Equal(t, byte(0), table[255])

	_, err = catalog.ReadRNGTable(bytes.NewReader(rom[:catalog.RNGTableOffset+10]))
	assert.True(t, errors.Is(err, catalog.ErrInvalidROM))
}
