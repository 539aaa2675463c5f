package catalog

import "errors"

// Sentinel errors returned by the catalog package.
var (
	// ErrInvalidCatalog indicates a catalog description that cannot be decoded
	// or that references ids it does not define.
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")

	// ErrUnknownFormation indicates a lookup of a formation id that is not present.
	ErrUnknownFormation = errors.New("catalog: unknown formation")

	// ErrUnknownSet indicates a lookup of a formation-set id that is not present.
	ErrUnknownSet = errors.New("catalog: unknown formation set")

	// ErrInvalidROM indicates a ROM image too short to contain the RNG table.
	ErrInvalidROM = errors.New("catalog: invalid ROM image")
)

const (
	// SpecialFormationThreshold is the first formation id reserved for
	// scripted battles; such ids are never recorded as seen.
	SpecialFormationThreshold = 0x200

	// OverworldSetLimit is the highest formation-set id that is treated as an
	// overworld set when the catalog does not say otherwise.
	OverworldSetLimit = 0x38

	// VeldtPackCount is the number of veldt packs.
	VeldtPackCount = 64

	// VeldtPackSize is the number of formation slots per veldt pack.
	VeldtPackSize = 8

	// NoFormation marks an empty veldt pack slot.
	NoFormation = -1

	// MaxRegularEnemyID is the highest enemy id that may appear on the veldt.
	MaxRegularEnemyID = 0xFF

	// SmokeBombCost caps the cost of an escapable battle while smoke bombs are used.
	SmokeBombCost = 4.0

	// FleeCost caps the cost of an escapable veldt battle that is simply fled.
	FleeCost = 5.0

	// FleeDifficultPenalty is added to FleeCost when escape is difficult.
	FleeDifficultPenalty = 5.0
)

// base cost terms of a formation, in estimated seconds.
const (
	costBase            = 5.0
	costPincer          = 3.0
	costBackAttack      = 2.0
	costInescapable     = 15.0
	costEscapeDifficult = 5.0
	costPerEnemy        = 1.0
)

// Monster is a single enemy as far as the planner is concerned.
type Monster struct {
	ID              int    // enemy id; ids above MaxRegularEnemyID are bosses
	Name            string // display name used in travelogs
	XP              int    // experience awarded
	Inescapable     bool   // battle cannot be run from
	EscapeDifficult bool   // running takes noticeably longer
}

// Formation is one concrete group of enemies that can appear in a battle.
type Formation struct {
	ID               int        // formation id
	Enemies          []*Monster // present enemies, in slot order
	PincerProhibited bool       // pincer attacks cannot happen
	BackProhibited   bool       // back attacks cannot happen

	// CostOverride replaces the derived base cost when non-zero.
	CostOverride float64
}

// FormationSet is the menu of formations a battle roll selects from.
type FormationSet struct {
	ID         int          // set id
	Formations []*Formation // 2 or 4 alternatives
	Overworld  bool         // shares the cached overworld threat rate
}

// VeldtPack is one group of eight formation ids; empty slots hold NoFormation.
type VeldtPack [VeldtPackSize]int
