package route

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the route package.
var (
	// ErrInvalidSimulation indicates NewSimulation inputs that cannot drive a search.
	ErrInvalidSimulation = errors.New("route: invalid simulation")

	// ErrRetryExhausted indicates a bounded retry loop ran out of attempts.
	ErrRetryExhausted = errors.New("route: retry budget exhausted")

	// ErrRestrictionUnmet indicates a restriction whose counter is below its value.
	ErrRestrictionUnmet = errors.New("route: restriction unmet")

	// ErrCheckpoint indicates a lete or reset instruction reached Execute;
	// checkpoints are only handled by Expand.
	ErrCheckpoint = errors.New("route: checkpoint instruction")

	// ErrNoRiverSeed indicates the returner chain offers no usable river seed.
	ErrNoRiverSeed = errors.New("route: no river seed")

	// ErrScriptEnd indicates Execute on a route that already finished its script.
	ErrScriptEnd = errors.New("route: script pointer out of range")
)

const (
	// StepCost is the cost of one step.
	StepCost = 0.5

	stepSeedIncrement   = 0x11
	battleSeedIncrement = 0x17
	veldtSeedMask       = 0x3F
	veldtSlotMask       = 0x07
	fourWayBucket       = 0x50
	twoWayBucket        = 0xC0

	// encounter landing within this many steps of a zone's end
	boundarySteps   = 3
	boundaryPenalty = 0.1
	// encounter landing within this many steps of the previous one
	clusterSteps   = 4
	clusterPenalty = 0.1

	forceCost         = 1.0
	forceBoundaryCost = 0.9
	menuResetCost     = 1.0
	veldtPenalty      = 1000.0
	reloadSetupCost   = 20.0

	// minimum encounters between two forced ones
	forceCooldown = 2

	leteOnes       = 2
	leteFourteens  = 2
	resetOnes      = 13
	resetFourteens = 5
	riverBattles   = 0

	// retry caps
	maxForcedSteps = 0x4000
	maxGauForces   = 64
	maxRageForces  = 10
)

// extraStepCounts are tried in order by the extra-steps branch.
var extraStepCounts = [...]int{10, 8, 6, 4, 2}

// NoMark is the value of LastForced and LastReset before the first mark.
const NoMark = -1

// Rate is a nullable threat rate.
type Rate struct {
	Value int
	Valid bool
}

// SomeRate returns a valid Rate holding v.
func SomeRate(v int) Rate { return Rate{Value: v, Valid: true} }

// set reports whether the rate is present and non-zero.
func (r Rate) set() bool { return r.Valid && r.Value != 0 }

func (r Rate) String() string {
	if !r.Valid {
		return "none"
	}
	return fmt.Sprintf("%x", r.Value)
}

// Region selects the reset cost profile of a game release.
type Region int

// Supported regions.
const (
	RegionNA Region = iota
	RegionJP
)

type regionProfile struct {
	resetOneCost      float64
	resetFourteenCost float64
	bunchExtra        int
}

var regionProfiles = [...]regionProfile{
	RegionNA: {resetOneCost: 25, resetFourteenCost: 30},
	RegionJP: {resetOneCost: 10, resetFourteenCost: 15, bunchExtra: 1},
}

func (r Region) String() string {
	if r == RegionJP {
		return "jp"
	}
	return "na"
}

// ParseRegion resolves "na" or "jp", case-insensitively.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(s) {
	case "", "na", "us":
		return RegionNA, nil
	case "jp":
		return RegionJP, nil
	}
	return RegionNA, fmt.Errorf("%w: unknown region %q", ErrInvalidSimulation, s)
}

func (r Region) profile() regionProfile {
	if r < 0 || int(r) >= len(regionProfiles) {
		return regionProfiles[RegionNA]
	}
	return regionProfiles[r]
}
