// Package script models the scripted route the planner walks: an ordered,
// read-only list of instructions plus the side tables used by the Lete
// river manipulation.
//
// Instructions:
//
//   - Travel       walk N steps through an encounter zone (or the Veldt).
//   - Event        a fixed battle; consumes one battle-counter advance.
//   - Random       a single immediate roll against a formation set.
//   - Weight       change the cost multiplier.
//   - SmokeBombs   toggle smoke bombs for the rest of the route.
//   - Restriction  require a counter to have reached a value, then zero it.
//   - Lete         checkpoint: reset bunch followed by the river manipulation.
//   - Reset        checkpoint: a wider reset bunch.
//   - Force        eat one more encounter in the zone of the preceding travel.
//
// Instruction is a sealed interface; consumers switch on the concrete type.
// Every variant is immutable once parsed and may be shared by any number of
// routes.
//
// Text format (one directive per line, '#' comments and blank lines ignored):
//
//	<set hex> <rate hex>[!] <steps>|<steps>-<sub>   travel ('!' forces the rate)
//	vl  <rage hex>|-  <steps>                       veldt travel
//	ev  -  <formation hex>                          event
//	rd  -  <set hex>                                random
//	wt  -  <float>                                  weight
//	sb  -  on|off                                   smoke bombs
//	re  <counter> <value>                           restriction
//	lete  -  -                                      lete checkpoint
//	reset -  -                                      reset checkpoint
//	fc  -  -                                        forced encounter
//
// Tables:
//
//   - RiverTable: exactly 256 lines, "fight" marks a battle.
//   - SeedTable:  "<hex> <hex>" pairs mapping one 8-bit seed to the next.
//
// Errors (sentinel):
//
//   - ErrInvalidScript  malformed route script line or unknown directive.
//   - ErrInvalidTable   malformed or wrongly sized lookup table.
package script
