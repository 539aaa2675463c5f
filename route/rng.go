package route

import (
	"fmt"

	"github.com/katalvlaran/encrouter/catalog"
)

// AdvanceStepCounter moves the step counter; a wrap perturbs the step seed.
func (r *Route) AdvanceStepCounter() {
	r.StepCounter++
	if r.StepCounter == 0 {
		r.StepSeed += stepSeedIncrement
	}
}

// AdvanceBattleCounter moves the battle counter; a wrap perturbs the battle seed.
func (r *Route) AdvanceBattleCounter() {
	r.BattleCounter++
	if r.BattleCounter == 0 {
		r.BattleSeed += battleSeedIncrement
	}
}

// PredictBattle consumes one step of RNG and reports whether it triggers a
// battle at the current threat.
func (r *Route) PredictBattle() bool {
	r.AdvanceStepCounter()
	value := r.sim.rng[r.StepCounter] + r.StepSeed
	return int(value) < r.Threat>>8
}

// PredictFormation consumes one battle roll and picks the formation of set.
// The chosen formation is recorded as seen unless it is a special formation.
func (r *Route) PredictFormation(set *catalog.FormationSet) *catalog.Formation {
	r.AdvanceBattleCounter()
	value := int(r.sim.rng[r.BattleCounter] + r.BattleSeed)
	if len(set.Formations) == 4 {
		value /= fourWayBucket
	} else {
		value /= twoWayBucket
	}
	f := set.Formations[value]
	r.see(f.ID)
	return f
}

// PredictVeldtFormation picks a Veldt battle. The pack seed moves to the
// next pack sharing a formation with Seen, then the battle roll walks that
// pack until it lands on a seen formation.
func (r *Route) PredictVeldtFormation() (*catalog.Formation, error) {
	r.VeldtSeed++
	var pack catalog.VeldtPack
	found := false
	for probe := 0; probe < catalog.VeldtPackCount; probe++ {
		r.VeldtSeed &= veldtSeedMask
		pack = r.sim.veldtPacks[r.VeldtSeed]
		if r.sharesSeen(pack) {
			found = true
			break
		}
		r.VeldtSeed++
	}
	if !found {
		return nil, fmt.Errorf("%w: no veldt pack holds a seen formation", ErrRetryExhausted)
	}

	r.AdvanceBattleCounter()
	value := int(r.sim.rng[r.BattleCounter]) + int(r.BattleSeed)
	for probe := 0; probe < catalog.VeldtPackSize; probe++ {
		id := pack[value&veldtSlotMask]
		if id != catalog.NoFormation && r.HasSeen(id) {
			return r.sim.catalog.Formation(id)
		}
		value++
	}

	return nil, fmt.Errorf("%w: veldt pack %d", ErrRetryExhausted, r.VeldtSeed)
}

func (r *Route) sharesSeen(pack catalog.VeldtPack) bool {
	for _, id := range pack {
		if id != catalog.NoFormation && r.HasSeen(id) {
			return true
		}
	}
	return false
}

func (r *Route) see(id int) {
	if id < catalog.SpecialFormationThreshold {
		r.Seen[id] = struct{}{}
	}
}
