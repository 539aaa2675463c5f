// Package catalog holds the read-only encounter data the route planner
// consumes: monsters, formations, formation sets and the 256-byte RNG table.
//
// Overview:
//
//   - Monster carries the few stats the planner needs (XP and escape flags).
//   - Formation groups present enemies and prices a battle in estimated
//     seconds via Cost(weight, smokebombs, avoidGau).
//   - FormationSet is the small menu (2 or 4 entries) a roll selects from.
//   - Catalog indexes all of the above by id and derives the 64 veldt packs.
//   - RNGTable is the game's 256-byte random table read from a ROM image.
//
// Cost model:
//
//	base  = 5
//	      + 3  unless the formation has one enemy or prohibits pincers
//	      + 2  unless back attacks are prohibited
//	      + 15 if any enemy is inescapable, else + 5 if any is hard to escape
//	      + 1  per present enemy
//	cost  = base * weight
//
// An explicit CostOverride replaces the base. Escapable formations are
// capped at SmokeBombCost when smoke bombs are in use, and at FleeCost
// (plus FleeDifficultPenalty) for veldt battles that are simply fled.
//
// Loading:
//
//   - Decode / LoadFile read a JSON description of the catalog.
//   - ReadRNGTable / LoadRNGTable read the table at RNGTableOffset.
//
// Errors (sentinel):
//
//   - ErrInvalidCatalog    malformed or inconsistent catalog description.
//   - ErrUnknownFormation  lookup of a formation id that is not present.
//   - ErrUnknownSet        lookup of a formation-set id that is not present.
//   - ErrInvalidROM        ROM image too short to hold the RNG table.
//
// A Catalog is populated once and then only read; concurrent readers are
// safe as long as no Add* call runs at the same time.
package catalog
