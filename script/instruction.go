package script

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/encrouter/catalog"
)

// Instruction is one directive of a route script.
// The set of implementations is closed; switch on the concrete type.
type Instruction interface {
	Kind() Kind
	String() string
	sealed()
}

// Zone is where steps are taken: a formation set and its threat rate,
// or the Veldt.
type Zone struct {
	Set         *catalog.FormationSet // nil on the Veldt
	ThreatRate  int                   // threat added per step
	ForceThreat bool                  // overwrite the cached overworld rate
	Veldt       bool                  // battles come from the veldt packs
	AvoidGau    bool                  // veldt battles are fled, not fought
}

// Overworld reports whether the zone shares the cached overworld rate.
func (z Zone) Overworld() bool {
	return !z.Veldt && z.Set != nil && z.Set.Overworld
}

// SetID returns the formation-set id, or -1 on the Veldt.
func (z Zone) SetID() int {
	if z.Set == nil {
		return -1
	}
	return z.Set.ID
}

// Travel walks Steps steps through Zone.
type Travel struct {
	Zone
	Steps int

	// SeekRage asks for one of DesiredFormations to be met on the Veldt.
	SeekRage          bool
	DesiredFormations []int // ascending
}

// Event is a scripted battle against a known formation.
type Event struct {
	Formation *catalog.Formation
}

// Random rolls one formation from Set immediately.
type Random struct {
	Set *catalog.FormationSet
}

// Weight sets the battle cost multiplier.
type Weight struct {
	Value float64
}

// SmokeBombs switches smoke bombs on or off.
type SmokeBombs struct {
	On bool
}

// Restriction requires Counter to be at least Value and zeroes it.
// A zero Value zeroes the counter unconditionally.
type Restriction struct {
	Counter Counter
	Value   int
}

// Lete is the Lete River checkpoint.
type Lete struct{}

// Reset is a plain reload checkpoint.
type Reset struct{}

// Force eats one additional encounter in Zone, the zone of the closest
// preceding travel.
type Force struct {
	Zone Zone
}

func (*Travel) Kind() Kind      { return KindTravel }
func (*Event) Kind() Kind       { return KindEvent }
func (*Random) Kind() Kind      { return KindRandom }
func (*Weight) Kind() Kind      { return KindWeight }
func (*SmokeBombs) Kind() Kind  { return KindSmokeBombs }
func (*Restriction) Kind() Kind { return KindRestriction }
func (*Lete) Kind() Kind        { return KindLete }
func (*Reset) Kind() Kind       { return KindReset }
func (*Force) Kind() Kind       { return KindForce }

func (*Travel) sealed()      {}
func (*Event) sealed()       {}
func (*Random) sealed()      {}
func (*Weight) sealed()      {}
func (*SmokeBombs) sealed()  {}
func (*Restriction) sealed() {}
func (*Lete) sealed()        {}
func (*Reset) sealed()       {}
func (*Force) sealed()       {}

// Desires reports whether meeting formation id satisfies the rage search.
func (t *Travel) Desires(id int) bool {
	i := sort.SearchInts(t.DesiredFormations, id)
	return i < len(t.DesiredFormations) && t.DesiredFormations[i] == id
}

func (t *Travel) String() string {
	if t.Veldt {
		return fmt.Sprintf("veldt steps=%d avoidgau=%t seekrage=%t", t.Steps, t.AvoidGau, t.SeekRage)
	}
	bang := ""
	if t.ForceThreat {
		bang = "!"
	}
	return fmt.Sprintf("travel set=%x rate=%x%s steps=%d", t.SetID(), t.ThreatRate, bang, t.Steps)
}

func (e *Event) String() string { return fmt.Sprintf("event formation=%x", e.Formation.ID) }

func (r *Random) String() string { return fmt.Sprintf("random set=%x", r.Set.ID) }

func (w *Weight) String() string { return fmt.Sprintf("weight %g", w.Value) }

func (s *SmokeBombs) String() string { return fmt.Sprintf("smokebombs %t", s.On) }

func (r *Restriction) String() string {
	return fmt.Sprintf("restriction %s >= %d", r.Counter, r.Value)
}

func (*Lete) String() string { return "lete" }

func (*Reset) String() string { return "reset" }

func (f *Force) String() string {
	return fmt.Sprintf("force set=%x rate=%x", f.Zone.SetID(), f.Zone.ThreatRate)
}
