package search

import (
	"github.com/katalvlaran/encrouter/route"
)

// signature identifies a route by where it started and how far it got.
type signature struct {
	seed uint8
	ptr  int
}

// compactor carries the state that survives between compaction rounds:
// the progress threshold and the furthest script position reached.
type compactor struct {
	progress int
	highest  int
}

// observe records how far a popped route has progressed.
func (c *compactor) observe(r *route.Route) {
	if r.ScriptPtr > c.highest {
		c.highest = r.ScriptPtr
	}
}

// round raises the progress threshold and returns the keep predicate for one
// Frontier.Compact pass over a frontier of size routes.
//
// A route survives when any of these hold, checked in order:
//
//   - it has reached the progress threshold;
//   - it is the cheapest route of its starting seed;
//   - it is past half the threshold and the first of its signature.
//
// Otherwise a per-seed toggle decides: an untoggled seed keeps the route and
// toggles, as does a route at the furthest position ranked in the cheaper
// half; anything else clears the toggle and is dropped.
func (c *compactor) round(size int) func(*route.Route, int) bool {
	c.progress++
	progress := c.progress
	highest := c.highest

	seenSeeds := make(map[uint8]struct{})
	seenSigs := make(map[signature]struct{})
	toggler := make(map[uint8]bool)

	return func(r *route.Route, rank int) bool {
		sig := signature{seed: r.InitialSeed, ptr: r.ScriptPtr}
		_, seedSeen := seenSeeds[r.InitialSeed]
		_, sigSeen := seenSigs[sig]

		keep := r.ScriptPtr >= progress ||
			!seedSeen ||
			(float64(r.ScriptPtr) >= float64(progress)*0.5 && !sigSeen)
		if !keep {
			if !toggler[r.InitialSeed] || (r.ScriptPtr == highest && float64(rank) < float64(size)/2) {
				toggler[r.InitialSeed] = true
				keep = true
			} else {
				toggler[r.InitialSeed] = false
			}
		}

		if keep {
			seenSigs[sig] = struct{}{}
			seenSeeds[r.InitialSeed] = struct{}{}
		}
		return keep
	}
}
