package route

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/encrouter/script"
)

// Expand returns the successors of r at its script position. Terminal
// routes have none. r may itself be returned as the default successor, so
// the caller must not keep using it otherwise.
//
// Steps:
//  1. Veldt travel: note entering the Veldt on r.
//  2. Force branch: after a travel of two or more steps, outside the forced
//     cooldown and before the last instruction, eat one more encounter in
//     the previous zone and execute the current instruction.
//  3. Menu branch: a stale, higher cached overworld rate is reset through
//     the menu; the child stays on the same instruction.
//  4. Extra-steps branch: after a safer travel, walk 10/8/6/4/2 extra steps
//     there when they are battle-free and push encounters out of the
//     current zone.
//  5. Checkpoints: lete branches over a small reset bunch plus the river
//     manipulation; reset replaces every earlier child with a wide bunch.
//  6. Default: execute the current instruction on r itself.
func Expand(r *Route) []*Route {
	if r.Terminal() {
		return nil
	}
	sc := r.sim.script
	in := sc.At(r.ScriptPtr)
	prevTravel, _ := sc.Previous(r.ScriptPtr).(*script.Travel)
	travel, _ := in.(*script.Travel)

	// 1. veldt banner
	if travel != nil && travel.Veldt {
		r.banner("ENTER THE VELDT")
	}

	var children []*Route

	// 2. force an additional encounter
	if prevTravel != nil && prevTravel.Steps >= 2 {
		distance, marked := r.sinceMark(r.LastForced)
		if (!marked || distance >= forceCooldown) && r.ScriptPtr < sc.Len()-1 {
			c := r.Clone()
			if _, err := c.ForceAdditionalEncounter(prevTravel.Zone, true); err != nil {
				r.drop("force", err)
			} else if err := c.Execute(); err != nil {
				r.drop("force", err)
			} else {
				children = append(children, c)
			}
		}
	}

	if travel != nil && !travel.Veldt {
		// 3. menu threat-rate correction
		if r.OverworldRate.set() && travel.Overworld() &&
			r.OverworldRate.Value > travel.ThreatRate && !travel.ForceThreat {
			c := r.Clone()
			c.MenuResetThreatRate(travel.Zone)
			children = append(children, c)
		}

		// 4. extra steps in a safer zone
		if prevTravel != nil && prevTravel.ThreatRate < travel.ThreatRate && prevTravel.Steps >= 2 {
			children = append(children, r.extraSteps(prevTravel, travel)...)
		}
	}

	switch in.(type) {
	// 5. checkpoints
	case *script.Lete:
		r.banner("GO TO RETURNER SAVE POINT")
		for _, node := range r.ResetBunch(leteOnes, leteFourteens) {
			c := node.Clone()
			if err := c.BestRiver(riverBattles); err != nil {
				r.drop("lete", err)
				continue
			}
			if !c.Terminal() {
				if err := c.Execute(); err != nil {
					r.drop("lete", err)
					continue
				}
			}
			children = append(children, c)
		}

	case *script.Reset:
		children = children[:0]
		for _, node := range r.ResetBunch(resetOnes, resetFourteens) {
			c := node.Clone()
			if err := c.Execute(); err != nil && !errors.Is(err, ErrCheckpoint) {
				r.drop("reset", err)
				continue
			}
			children = append(children, c)
		}

	// 6. default
	default:
		if err := r.Execute(); err != nil {
			r.drop("default", err)
		} else {
			children = append(children, r)
		}
	}

	return children
}

// extraSteps tries the extra-step counts in decreasing order. A count is
// kept when the steps are battle-free in prev and the same number of steps
// in cur then meets fewer battles than without them. The search stops at
// the first count that meets no battle in cur even without extra steps.
func (r *Route) extraSteps(prev, cur *script.Travel) []*Route {
	var kept []*Route
	for _, steps := range extraStepCounts {
		if steps > cur.Steps {
			continue
		}
		c := r.Clone()
		c.banner("TAKE %d EXTRA STEPS", steps)
		met, err := c.PredictEncounters(prev.Zone, steps)
		if err != nil {
			r.drop("extra steps", err)
			continue
		}
		if len(met) > 0 {
			continue
		}

		without, err := r.Clone().PredictEncounters(cur.Zone, steps)
		if err != nil {
			r.drop("extra steps", err)
			continue
		}
		if len(without) == 0 {
			break
		}
		with, err := c.Clone().PredictEncounters(cur.Zone, steps)
		if err != nil {
			r.drop("extra steps", err)
			continue
		}
		if len(without) > len(with) {
			if err := c.Execute(); err != nil {
				r.drop("extra steps", err)
				continue
			}
			kept = append(kept, c)
		}
	}
	return kept
}

func (r *Route) drop(branch string, err error) {
	if ce := r.sim.logger.Check(zap.DebugLevel, "branch dropped"); ce != nil {
		ce.Write(
			zap.String("branch", branch),
			zap.Uint64("route", r.ID),
			zap.Uint8("seed", r.InitialSeed),
			zap.Int("ptr", r.ScriptPtr),
			zap.Error(err),
		)
	}
}
