// Package route simulates one candidate playthrough of a scripted route
// under the game's step and battle RNG, and branches it into the
// manipulations the planner may choose from.
//
// Overview:
//
//   - Simulation is the immutable context shared by every route: the
//     script, the formation catalog, the 256-byte RNG table, the Lete
//     tables and the veldt packs. Build it once with NewSimulation.
//   - Route is the mutable state of one playthrough: the 8-bit seeds and
//     counters, the accumulated threat, the cost estimate, the script
//     position and the travelog. Branching is always Clone then mutate.
//   - Expand produces the successors of a route at its script position.
//
// RNG model:
//
//	step:   stepcounter++   (on wrap: stepseed += 0x11)
//	        battle iff (rng[stepcounter] + stepseed) & 0xFF < threat >> 8
//	battle: battlecounter++ (on wrap: battleseed += 0x17)
//	        roll = (rng[battlecounter] + battleseed) & 0xFF
//	        index = roll / 0x50 for 4-way sets, roll / 0xC0 for 2-way sets
//
// All seeds and counters are uint8, so wraparound is the type's own
// arithmetic. The Veldt uses a separate 6-bit pack seed and only offers
// formations the route has already seen.
//
// Expansion (in order, each branch from the same parent snapshot):
//
//  1. force one more encounter in the previous zone;
//  2. open the menu to reset a stale overworld threat rate;
//  3. take 10/8/6/4/2 extra steps in a safer previous zone;
//  4. at a lete or reset checkpoint, branch over a reset bunch;
//  5. otherwise execute the instruction on the route itself.
//
// Branch failures (unmet restrictions, exhausted retry loops, missing river
// seeds) drop the branch and never abort the search.
//
// Errors (sentinel):
//
//   - ErrInvalidSimulation  NewSimulation got missing or inconsistent inputs.
//   - ErrRetryExhausted     a bounded retry loop gave up.
//   - ErrRestrictionUnmet   a restriction counter was below its threshold.
//   - ErrCheckpoint         a lete or reset instruction was executed directly.
//   - ErrNoRiverSeed        no returner seed yields the wanted river battles.
//   - ErrScriptEnd          Execute was called on a terminal route.
package route
