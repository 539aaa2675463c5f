package route

import (
	"fmt"

	"github.com/katalvlaran/encrouter/script"
)

// ResetOne returns to the load screen: the seed moves by one.
func (r *Route) ResetOne() {
	r.Cost += r.sim.region.resetOneCost
	r.SetSeed(r.Seed + 1)
	r.banner("RESET TO GAME LOAD SCREEN")
}

// ResetFourteen reloads the save: the seed moves by fourteen.
func (r *Route) ResetFourteen() {
	r.Cost += r.sim.region.resetFourteenCost
	r.SetSeed(r.Seed + 14)
	r.LastReset = r.NumEncounters
	r.banner("RELOAD")
}

// MenuResetThreatRate opens the menu to re-cache the overworld rate of z.
func (r *Route) MenuResetThreatRate(z script.Zone) {
	r.Cost += menuResetCost
	r.OverworldRate = SomeRate(z.ThreatRate)
	r.banner("OPEN MENU TO RESET THREAT RATE")
}

// ResetBunch returns the routes reachable by a chain of up to ones load
// screen resets, each followed by one to fourteens reloads. The region
// profile may widen both counts.
//
// Every returned route has paid the reload setup cost once.
func (r *Route) ResetBunch(ones, fourteens int) []*Route {
	extra := r.sim.region.bunchExtra
	ones += extra
	fourteens += extra

	prev := r.Clone()
	prev.Cost += reloadSetupCost
	chain := make([]*Route, 0, ones+1)
	chain = append(chain, prev)
	for i := 0; i < ones; i++ {
		next := prev.Clone()
		next.ResetOne()
		chain = append(chain, next)
		prev = next
	}

	bunch := make([]*Route, 0, len(chain)*fourteens)
	for _, c := range chain {
		for i := 0; i < fourteens; i++ {
			c.ResetFourteen()
			bunch = append(bunch, c.Clone())
		}
	}
	return bunch
}

// BestRiver manipulates the Lete River: from the lete seed of the current
// seed it walks the returner chain, simulates every seed whose river window
// fights exactly 2+battles times and keeps the cheapest (earliest on ties).
// The chosen river is applied to r and the lete instruction is consumed.
func (r *Route) BestRiver(battles int) error {
	r.OverworldRate = Rate{}
	if r.sim.riverSets[0] == nil {
		return fmt.Errorf("%w: river formation sets not bound", ErrNoRiverSeed)
	}
	tables := r.sim.tables
	seed, ok := tables.LeteRNG.Lookup(r.Seed)
	if !ok {
		return fmt.Errorf("%w: no lete entry for seed %d", ErrNoRiverSeed, r.Seed)
	}

	var (
		found    bool
		best     uint8
		bestCost float64
	)
	for i := 0; i < script.TableSize; i++ {
		if tables.River.Fights(seed) == 2+battles {
			trial := r.Clone()
			trial.PredictRiver(seed)
			if cost := trial.Cost - r.Cost; !found || cost < bestCost {
				found, best, bestCost = true, seed, cost
			}
		}
		next, ok := tables.ReturnerRNG.Lookup(seed)
		if !ok {
			break
		}
		seed = next
	}
	if !found {
		return fmt.Errorf("%w: seed %d", ErrNoRiverSeed, r.Seed)
	}

	r.banner("MANIPULATE LETE W/ RETURNER TO SEED %d", best)
	r.PredictRiver(best)
	r.ScriptPtr++
	return nil
}

// PredictRiver fights the river window at seed.
func (r *Route) PredictRiver(seed uint8) {
	window := r.sim.tables.River.Window(seed)
	for i, fight := range window {
		if !fight {
			continue
		}
		r.NumEncounters++
		f := r.PredictFormation(r.sim.riverSets[i])
		r.XP += f.XP()
		cost := f.Cost(r.Weight, r.SmokeBombs, false)
		r.Cost += cost
		r.logf(EntryRiver, "%s COST: %g", f, cost)
	}
}
