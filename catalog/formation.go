package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// NumEnemies returns the number of present enemies.
func (f *Formation) NumEnemies() int { return len(f.Enemies) }

// Inescapable reports whether any present enemy prevents running.
func (f *Formation) Inescapable() bool {
	for _, e := range f.Enemies {
		if e.Inescapable {
			return true
		}
	}
	return false
}

// EscapeDifficult reports whether running is slowed by any present enemy.
// Inescapable formations are never "difficult", they are impossible.
func (f *Formation) EscapeDifficult() bool {
	if f.Inescapable() {
		return false
	}
	for _, e := range f.Enemies {
		if e.EscapeDifficult {
			return true
		}
	}
	return false
}

// BaseCost returns the unweighted cost of fighting the formation.
func (f *Formation) BaseCost() float64 {
	if f.CostOverride != 0 {
		return f.CostOverride
	}

	cost := costBase
	if !(f.NumEnemies() == 1 || f.PincerProhibited) {
		cost += costPincer
	}
	if !f.BackProhibited {
		cost += costBackAttack
	}
	if f.Inescapable() {
		cost += costInescapable
	} else if f.EscapeDifficult() {
		cost += costEscapeDifficult
	}
	cost += costPerEnemy * float64(f.NumEnemies())

	return cost
}

// Cost returns the estimated time cost of the battle under the given
// route parameters.
//
//   - weight scales the base cost.
//   - smokebombs caps escapable battles at SmokeBombCost.
//   - avoidGau caps escapable battles at the flee cost.
func (f *Formation) Cost(weight float64, smokebombs, avoidGau bool) float64 {
	cost := f.BaseCost() * weight
	if f.Inescapable() {
		return cost
	}
	if smokebombs && cost > SmokeBombCost {
		cost = SmokeBombCost
	}
	if avoidGau {
		flee := FleeCost
		if f.EscapeDifficult() {
			flee += FleeDifficultPenalty
		}
		if cost > flee {
			cost = flee
		}
	}

	return cost
}

// XP returns the experience awarded for the whole formation.
func (f *Formation) XP() int {
	var xp int
	for _, e := range f.Enemies {
		xp += e.XP
	}
	return xp
}

// PresentEnemyIDs returns the set of enemy ids in the formation.
func (f *Formation) PresentEnemyIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(f.Enemies))
	for _, e := range f.Enemies {
		ids[e.ID] = struct{}{}
	}
	return ids
}

// HasEnemy reports whether the enemy id is present in the formation.
func (f *Formation) HasEnemy(id int) bool {
	for _, e := range f.Enemies {
		if e.ID == id {
			return true
		}
	}
	return false
}

// String renders "Name xN, Other xM (id) cost C", names sorted.
func (f *Formation) String() string {
	counts := make(map[string]int, len(f.Enemies))
	for _, e := range f.Enemies {
		counts[e.Name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s x%d", name, counts[name]))
	}

	return fmt.Sprintf("%s (%x) cost %g", strings.Join(parts, ", "), f.ID, f.BaseCost())
}

// String renders the set id followed by one formation per line.
func (s *FormationSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PACK ID %x", s.ID)
	for _, f := range s.Formations {
		b.WriteByte('\n')
		b.WriteString(f.String())
	}
	return b.String()
}
