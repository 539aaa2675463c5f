// Package search runs the best-first encounter search over route.Route
// states and keeps its frontier within a memory bound.
//
// Overview:
//
//   - EncounterSearch pops the cheapest route, records it when its script
//     is complete, and otherwise pushes every child from route.Expand.
//   - Frontier is a min-heap ordered by (Heuristic, ID) with Push, PopMin,
//     Len and Compact. Compaction drains in that order, so it does not
//     depend on the heap's internal layout.
//   - Every CompactEvery pops, while the frontier holds more than
//     MaxFrontier routes, a compaction round raises a progress threshold and
//     drops duplicated (seed, script position) states. Each seed keeps its
//     cheapest route, and a per-seed toggle lets lagging seeds keep every
//     other extra route so none of them starves.
//
// Options:
//
//   - WithTargetCount(n)   solutions wanted (default 1).
//   - WithMaxFrontier(n)   frontier bound that triggers compaction (default 25000).
//   - WithPerSeedCap(n)    solutions kept per starting seed, 0 = unlimited.
//   - WithCompactEvery(n)  pops between compaction checks (default 1000).
//   - WithLogger(l)        progress at Info, rounds at Debug.
//   - WithMetrics(m)       prometheus collectors from NewMetrics.
//
// Complexity:
//
//   - Each pop and push costs O(log F) for a frontier of F routes.
//   - A compaction round costs O(F log F).
//
// Errors (sentinel):
//
//   - ErrNoRoutes         no starting routes were given.
//   - ErrBadTargetCount   the target count is not positive.
//   - ErrSearchExhausted  the frontier emptied before enough solutions.
package search
