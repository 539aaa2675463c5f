package route

import (
	"fmt"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/script"
)

// Execute runs the instruction at ScriptPtr and advances past it.
//
// A non-nil error means the branch is dead: the pointer has still moved,
// but callers must drop the route. Lete and reset instructions return
// ErrCheckpoint; they are handled by Expand.
func (r *Route) Execute() error {
	sc := r.sim.script
	if prev, ok := sc.Previous(r.ScriptPtr).(*script.Travel); ok && prev.Veldt && !prev.AvoidGau {
		if err := r.recruitGau(prev.Zone); err != nil {
			return err
		}
	}
	if r.Terminal() {
		return ErrScriptEnd
	}

	r.traceCounters()
	in := sc.At(r.ScriptPtr)
	r.ScriptPtr++

	switch in := in.(type) {
	case *script.Restriction:
		return r.restrict(in)

	case *script.Travel:
		return r.travel(in)

	case *script.Event:
		r.logf(EntryEvent, "%s", in.Formation)
		r.see(in.Formation.ID)
		r.AdvanceBattleCounter()
		r.OverworldRate = Rate{}

	case *script.Random:
		f := r.PredictFormation(in.Set)
		r.XP += f.XP()
		cost := f.Cost(r.Weight, r.SmokeBombs, false)
		r.Cost += cost
		r.logf(EntryRandomEvent, "%s COST: %g", f, cost)
		r.OverworldRate = Rate{}

	case *script.Weight:
		r.Weight = in.Value

	case *script.SmokeBombs:
		r.SmokeBombs = in.On

	case *script.Lete, *script.Reset:
		return fmt.Errorf("%w: %s at %d", ErrCheckpoint, in, r.ScriptPtr-1)

	case *script.Force:
		_, err := r.ForceAdditionalEncounter(in.Zone, true)
		return err
	}

	return nil
}

// recruitGau forces Veldt encounters until a second Gau battle has happened.
func (r *Route) recruitGau(z script.Zone) error {
	for i := 0; r.GauEncounters <= 1; i++ {
		if i == maxGauForces {
			return fmt.Errorf("%w: gau not recruited after %d forced battles", ErrRetryExhausted, maxGauForces)
		}
		if _, err := r.ForceAdditionalEncounter(z, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *Route) counter(c script.Counter) *int {
	switch c {
	case script.CounterGauEncounters:
		return &r.GauEncounters
	case script.CounterXP:
		return &r.XP
	default:
		return &r.NumEncounters
	}
}

func (r *Route) restrict(in *script.Restriction) error {
	v := r.counter(in.Counter)
	if in.Value != 0 && *v < in.Value {
		return fmt.Errorf("%w: %s is %d, want %d", ErrRestrictionUnmet, in.Counter, *v, in.Value)
	}
	*v = 0
	return nil
}

func (r *Route) travel(in *script.Travel) error {
	met, err := r.PredictEncounters(in.Zone, in.Steps)
	if err != nil {
		return err
	}
	if !in.Veldt || in.AvoidGau || !in.SeekRage {
		return nil
	}
	return r.seekRage(in, met)
}

// seekRage makes sure a desired Veldt formation is met, forcing up to
// maxRageForces more battles. Meeting it first costs veldtPenalty; meeting
// it last of at most two battles costs one more forced battle.
func (r *Route) seekRage(in *script.Travel, met []*catalog.Formation) error {
	var want *catalog.Formation
	for _, f := range met {
		if in.Desires(f.ID) {
			want = f
			break
		}
	}
	for i := 0; want == nil && i < maxRageForces; i++ {
		f, err := r.ForceAdditionalEncounter(in.Zone, false)
		if err != nil {
			return err
		}
		met = append(met, f)
		if in.Desires(f.ID) {
			want = f
		}
	}
	if want == nil {
		return fmt.Errorf("%w: desired rage not met after %d forced battles", ErrRetryExhausted, maxRageForces)
	}

	switch {
	case want == met[0]:
		r.Cost += veldtPenalty
		r.banner("VELDT PENALTY +%g", veldtPenalty)
	case want == met[len(met)-1] && len(met) <= 2:
		if _, err := r.ForceAdditionalEncounter(in.Zone, true); err != nil {
			return err
		}
	}
	return nil
}
