package search

import "github.com/katalvlaran/encrouter/route"

// CompactionRound exposes one round of the compaction policy with the given
// threshold (after raising) and furthest script position.
func CompactionRound(progress, highest, size int) func(*route.Route, int) bool {
	c := &compactor{progress: progress - 1, highest: highest}
	return c.round(size)
}
