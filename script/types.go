package script

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parsers.
var (
	// ErrInvalidScript indicates a route script that cannot be turned into instructions.
	ErrInvalidScript = errors.New("script: invalid route script")

	// ErrInvalidTable indicates a river or seed table that cannot be loaded.
	ErrInvalidTable = errors.New("script: invalid table")
)

const (
	// TableSize is the number of entries in every seed-indexed table.
	TableSize = 0x100

	// RiverWindow is the number of river decisions per Lete run.
	RiverWindow = 9

	// VeldtThreatRate is the fixed threat rate of the Veldt.
	VeldtThreatRate = 0xC0
)

// DefaultRiverSets are the formation sets rolled, in order, for each
// decision of a river window.
var DefaultRiverSets = [RiverWindow]int{0x107, 0x108, 0x107, 0x107, 0x108, 0x107, 0x108, 0x108, 0x107}

// Kind names an instruction variant.
type Kind int

// Instruction kinds.
const (
	KindTravel Kind = iota
	KindEvent
	KindRandom
	KindWeight
	KindSmokeBombs
	KindRestriction
	KindLete
	KindReset
	KindForce
)

var kindNames = [...]string{
	KindTravel:      "travel",
	KindEvent:       "event",
	KindRandom:      "random",
	KindWeight:      "weight",
	KindSmokeBombs:  "smokebombs",
	KindRestriction: "restriction",
	KindLete:        "lete",
	KindReset:       "reset",
	KindForce:       "force",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Counter names a route counter a Restriction can test.
type Counter int

// Restriction counters.
const (
	CounterEncounters Counter = iota
	CounterGauEncounters
	CounterXP
)

var counterNames = map[string]Counter{
	"num_encounters": CounterEncounters,
	"gau_encounters": CounterGauEncounters,
	"xp":             CounterXP,
}

func (c Counter) String() string {
	for name, v := range counterNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("counter(%d)", int(c))
}

// ParseCounter resolves a counter by its script name.
func ParseCounter(name string) (Counter, error) {
	c, ok := counterNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown restriction counter %q", ErrInvalidScript, name)
	}
	return c, nil
}
