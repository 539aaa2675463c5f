package route

import (
	"fmt"
	"maps"
	"strings"
)

// Route is the state of one candidate playthrough.
//
// Seeds and counters are uint8 and wrap on their own. Cost never decreases.
// ScriptPtr only moves forward and equals the script length once the route
// is complete.
type Route struct {
	ID          uint64 // creation order; frontier tie-break
	InitialSeed uint8

	Seed          uint8
	VeldtSeed     uint8
	StepSeed      uint8
	BattleSeed    uint8
	StepCounter   uint8
	BattleCounter uint8

	Threat    int
	Cost      float64
	ScriptPtr int
	Log       Travelog

	OverworldRate Rate

	NumEncounters int
	GauEncounters int
	LastForced    int // NumEncounters at the last forced encounter, or NoMark
	LastReset     int // NumEncounters at the last reload, or NoMark
	XP            int

	Weight     float64
	SmokeBombs bool
	Seen       map[int]struct{}

	boundary bool
	sim      *Simulation
}

// Clone returns an independent copy with a fresh ID. Seen is copied and the
// travelog is clipped so appends on either side never reach the other.
func (r *Route) Clone() *Route {
	c := *r
	c.ID = r.sim.newID()
	c.Seen = maps.Clone(r.Seen)
	if c.Seen == nil {
		c.Seen = make(map[int]struct{})
	}
	c.Log = r.Log[:len(r.Log):len(r.Log)]
	return &c
}

// SetSeed derives every seed and counter from seed.
func (r *Route) SetSeed(seed uint8) {
	r.Seed = seed
	r.VeldtSeed = seed
	r.StepSeed = seed
	r.BattleSeed = seed
	r.StepCounter = seed
	r.BattleCounter = seed
}

// Heuristic is the frontier priority: cost plus a small threat term.
func (r *Route) Heuristic() float64 {
	return r.Cost + float64(r.Threat>>12)
}

// Terminal reports whether the whole script has been executed.
func (r *Route) Terminal() bool {
	return r.ScriptPtr >= r.sim.script.Len()
}

// Simulation returns the shared context of the route.
func (r *Route) Simulation() *Simulation { return r.sim }

// HasSeen reports whether formation id has been met on this route.
func (r *Route) HasSeen(id int) bool {
	_, ok := r.Seen[id]
	return ok
}

// sinceMark returns encounters since mark, or false when unset.
func (r *Route) sinceMark(mark int) (int, bool) {
	if mark == NoMark {
		return 0, false
	}
	return r.NumEncounters - mark, true
}

// String renders the route summary printed after a travelog.
func (r *Route) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "initialseed: %x\n", r.InitialSeed)
	fmt.Fprintf(&b, "stepseed: %x\n", r.StepSeed)
	fmt.Fprintf(&b, "battleseed: %x\n", r.BattleSeed)
	fmt.Fprintf(&b, "stepcounter: %x\n", r.StepCounter)
	fmt.Fprintf(&b, "battlecounter: %x\n", r.BattleCounter)
	fmt.Fprintf(&b, "threat: %x\n", r.Threat)
	fmt.Fprintf(&b, "cost: %g\n", r.Cost)
	fmt.Fprintf(&b, "num_encounters: %d", r.NumEncounters)
	return b.String()
}
