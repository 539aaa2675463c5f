package catalog

import (
	"fmt"
	"sort"
)

// Catalog indexes monsters, formations and formation sets by id.
type Catalog struct {
	monsters   map[int]*Monster
	formations map[int]*Formation
	sets       map[int]*FormationSet
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		monsters:   make(map[int]*Monster),
		formations: make(map[int]*Formation),
		sets:       make(map[int]*FormationSet),
	}
}

// AddMonster registers m. Duplicate ids are rejected.
func (c *Catalog) AddMonster(m *Monster) error {
	if m == nil {
		return fmt.Errorf("%w: nil monster", ErrInvalidCatalog)
	}
	if _, dup := c.monsters[m.ID]; dup {
		return fmt.Errorf("%w: duplicate monster %#x", ErrInvalidCatalog, m.ID)
	}
	c.monsters[m.ID] = m
	return nil
}

// Monster returns the monster with the given id.
func (c *Catalog) Monster(id int) (*Monster, bool) {
	m, ok := c.monsters[id]
	return m, ok
}

// AddFormation registers f. Duplicate ids are rejected.
func (c *Catalog) AddFormation(f *Formation) error {
	if f == nil {
		return fmt.Errorf("%w: nil formation", ErrInvalidCatalog)
	}
	if f.ID < 0 {
		return fmt.Errorf("%w: negative formation id %d", ErrInvalidCatalog, f.ID)
	}
	if _, dup := c.formations[f.ID]; dup {
		return fmt.Errorf("%w: duplicate formation %#x", ErrInvalidCatalog, f.ID)
	}
	c.formations[f.ID] = f
	return nil
}

// AddSet registers a formation set built from already registered formation ids.
// A set must offer exactly 2 or 4 alternatives.
func (c *Catalog) AddSet(id int, formationIDs []int, overworld bool) (*FormationSet, error) {
	if _, dup := c.sets[id]; dup {
		return nil, fmt.Errorf("%w: duplicate formation set %#x", ErrInvalidCatalog, id)
	}
	if n := len(formationIDs); n != 2 && n != 4 {
		return nil, fmt.Errorf("%w: formation set %#x has %d formations, want 2 or 4", ErrInvalidCatalog, id, n)
	}

	set := &FormationSet{ID: id, Overworld: overworld, Formations: make([]*Formation, 0, len(formationIDs))}
	for _, fid := range formationIDs {
		f, ok := c.formations[fid]
		if !ok {
			return nil, fmt.Errorf("%w: formation set %#x references formation %#x", ErrInvalidCatalog, id, fid)
		}
		set.Formations = append(set.Formations, f)
	}
	c.sets[id] = set

	return set, nil
}

// Formation returns the formation with the given id.
func (c *Catalog) Formation(id int) (*Formation, error) {
	f, ok := c.formations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownFormation, id)
	}
	return f, nil
}

// Set returns the formation set with the given id.
func (c *Catalog) Set(id int) (*FormationSet, error) {
	s, ok := c.sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownSet, id)
	}
	return s, nil
}

// FormationsWithEnemy returns, in ascending order, the ids of every formation
// in which the enemy appears.
func (c *Catalog) FormationsWithEnemy(enemyID int) []int {
	var ids []int
	for id, f := range c.formations {
		if f.HasEnemy(enemyID) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of formations and formation sets.
func (c *Catalog) Len() (formations, sets int) {
	return len(c.formations), len(c.sets)
}

// VeldtPacks partitions formation ids 0..511 into 64 packs of 8.
// A slot is NoFormation when the formation is absent from the catalog or
// contains an enemy above MaxRegularEnemyID.
//
// Complexity: O(VeldtPackCount * VeldtPackSize * enemies).
func (c *Catalog) VeldtPacks() [VeldtPackCount]VeldtPack {
	var packs [VeldtPackCount]VeldtPack
	for i := range packs {
		for j := range packs[i] {
			id := i*VeldtPackSize + j
			packs[i][j] = id

			f, ok := c.formations[id]
			if !ok {
				packs[i][j] = NoFormation
				continue
			}
			for _, e := range f.Enemies {
				if e.ID > MaxRegularEnemyID {
					packs[i][j] = NoFormation
					break
				}
			}
		}
	}
	return packs
}
