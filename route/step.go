package route

import (
	"fmt"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/script"
)

// TakeStep walks one step in z. It returns the formation met, or nil.
//
// Threat rate policy:
//   - a forced zone overwrites the cached overworld rate and uses it;
//   - an overworld zone uses the cached rate, caching its own when unset;
//   - any other zone clears the cache and uses its own rate.
func (r *Route) TakeStep(z script.Zone) (*catalog.Formation, error) {
	var rate int
	switch {
	case z.ForceThreat:
		r.OverworldRate = SomeRate(z.ThreatRate)
		rate = z.ThreatRate
	case z.Overworld():
		if !r.OverworldRate.Valid {
			r.OverworldRate = SomeRate(z.ThreatRate)
		}
		rate = r.OverworldRate.Value
	default:
		r.OverworldRate = Rate{}
		rate = z.ThreatRate
	}

	r.Cost += StepCost
	r.Threat += rate
	if !r.PredictBattle() {
		return nil, nil
	}

	r.NumEncounters++
	var f *catalog.Formation
	if z.Veldt {
		var err error
		if f, err = r.PredictVeldtFormation(); err != nil {
			return nil, err
		}
		if !z.AvoidGau {
			r.GauEncounters++
		}
	} else {
		f = r.PredictFormation(z.Set)
	}

	r.XP += f.XP()
	cost := f.Cost(r.Weight, r.SmokeBombs, z.Veldt && z.AvoidGau)
	r.Cost += cost
	r.logf(EntryEncounter, "%s COST: %g", f, cost)
	r.traceCounters()
	r.Threat = 0
	if z.Overworld() {
		r.OverworldRate = SomeRate(z.ThreatRate)
	}

	return f, nil
}

// PredictEncounters walks steps steps in z and returns the formations met.
// An encounter within the last boundarySteps steps of the walk costs a
// little extra and discounts the next forced encounter; so does one landing
// right after the previous encounter.
func (r *Route) PredictEncounters(z script.Zone, steps int) ([]*catalog.Formation, error) {
	r.boundary = false
	if steps > 0 && z.Set != nil {
		r.logf(EntryInfo, "%d threat steps in encounter zone %x.", steps, z.Set.ID)
	}

	var (
		met   []*catalog.Formation
		taken int
	)
	for steps > 0 {
		steps--
		taken++
		f, err := r.TakeStep(z)
		if err != nil {
			return nil, err
		}
		if f == nil {
			continue
		}
		if steps <= boundarySteps {
			r.Cost += boundaryPenalty
			r.boundary = true
		}
		if taken <= clusterSteps {
			r.Cost += clusterPenalty
		}
		taken = 0
		met = append(met, f)
	}

	return met, nil
}

// ForceAdditionalEncounter keeps walking in z until a battle happens, then
// until an even number of steps has been taken, and returns the first
// formation met. With showAvoided the encounter the route would have met
// without forcing is previewed and logged as AVOIDED.
func (r *Route) ForceAdditionalEncounter(z script.Zone, showAvoided bool) (*catalog.Formation, error) {
	if r.boundary {
		r.Cost += forceBoundaryCost
	} else {
		r.Cost += forceCost
	}
	r.boundary = false
	r.banner("FORCE ADDITIONAL ENCOUNTER")

	var (
		avoided  Entry
		hasAvoid bool
	)
	if showAvoided {
		avoided, hasAvoid = r.SimulateForward()
	}

	r.LastForced = r.NumEncounters
	var first *catalog.Formation
	for step := 1; ; step++ {
		if step > maxForcedSteps {
			return nil, fmt.Errorf("%w: no battle after %d forced steps", ErrRetryExhausted, maxForcedSteps)
		}
		f, err := r.TakeStep(z)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = f
		}
		if first != nil && step%2 == 0 {
			break
		}
	}

	if hasAvoid {
		r.Log = append(r.Log, avoided)
	}
	return first, nil
}

// SimulateForward runs a copy of r along the script until the copy logs an
// encounter or random event, and returns that entry retagged as avoided.
// It reports false when the script ends or an instruction stops the run
// first. r itself is not modified.
func (r *Route) SimulateForward() (Entry, bool) {
	p := r.Clone()
	p.Log = nil
	for !p.Terminal() {
		if err := p.Execute(); err != nil {
			return Entry{}, false
		}
		for _, e := range p.Log {
			if e.Kind == EntryEncounter || e.Kind == EntryRandomEvent {
				e.Kind = EntryAvoided
				return e, true
			}
		}
	}
	return Entry{}, false
}
