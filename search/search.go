package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/encrouter/route"
)

// EncounterSearch runs best-first search from routes until TargetCount
// solutions are found.
//
// Termination:
//
//   - TargetCount solutions were accepted.
//   - A terminal route was popped and the frontier is now empty. Fewer
//     solutions than wanted is not an error in this case.
//   - An expansion left the frontier empty: ErrSearchExhausted, returned
//     together with the partial Result.
//
// Solutions are returned in the order they were found, which is ascending
// heuristic order.
func EncounterSearch(routes []*route.Route, opts ...Option) (*Result, error) {
	// 1) Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the inputs.
	if cfg.TargetCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTargetCount, cfg.TargetCount)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	// 3) Seed the frontier and run.
	r := &runner{
		options:  cfg,
		log:      cfg.Logger,
		pq:       NewFrontier(routes...),
		perSeed:  make(map[uint8]int),
		result:   &Result{},
		policy:   &compactor{},
		reported: -1,
	}
	err := r.process()

	// 4) Report what is left of the frontier.
	r.result.FrontierSeeds = r.pq.Seeds()
	r.log.Info("search finished",
		zap.Int("solutions", len(r.result.Solutions)),
		zap.Int("expanded", r.result.Expanded),
		zap.Int("frontier", r.pq.Len()),
		zap.Uint8s("frontier_seeds", r.result.FrontierSeeds),
	)

	return r.result, err
}

// runner holds the mutable state of one search.
type runner struct {
	options  Options
	log      *zap.Logger
	pq       *Frontier
	perSeed  map[uint8]int // solutions accepted per starting seed
	result   *Result
	policy   *compactor
	reported int // last script position logged as progress
}

// process is the main loop.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest route.
		cur := r.pq.PopMin()
		r.result.Expanded++
		r.policy.observe(cur)
		r.progress(cur)

		// 2) Terminal routes are solutions if their seed still has room.
		if cur.Terminal() {
			if r.accept(cur) && len(r.result.Solutions) >= r.options.TargetCount {
				return nil
			}
			if r.pq.Len() == 0 {
				return nil
			}
			continue
		}

		// 3) Expand and push every child.
		children := route.Expand(cur)
		for _, c := range children {
			r.pq.Push(c)
		}
		r.options.Metrics.expanded(len(children), r.pq.Len())

		if r.pq.Len() == 0 {
			return fmt.Errorf("%w: %d of %d solutions after %d expansions",
				ErrSearchExhausted, len(r.result.Solutions), r.options.TargetCount, r.result.Expanded)
		}

		// 4) Periodically bound the frontier.
		if r.result.Expanded%r.options.CompactEvery == 0 {
			r.compact()
		}
	}

	return nil
}

// accept records cur as a solution unless its seed is at the cap.
func (r *runner) accept(cur *route.Route) bool {
	limit := r.options.PerSeedCap
	if limit > 0 && r.perSeed[cur.InitialSeed] >= limit {
		return false
	}
	r.perSeed[cur.InitialSeed]++
	r.result.Solutions = append(r.result.Solutions, cur)
	r.options.Metrics.solved()

	r.log.Info("solution found",
		zap.Uint8("seed", cur.InitialSeed),
		zap.Float64("cost", cur.Cost),
		zap.Int("encounters", cur.NumEncounters),
		zap.Int("solutions", len(r.result.Solutions)),
	)
	return true
}

// compact runs rounds while the frontier exceeds its bound. A round that
// drops nothing ends the pass since the policy cannot shrink it further.
func (r *runner) compact() {
	for r.pq.Len() > r.options.MaxFrontier {
		size := r.pq.Len()
		dropped := r.pq.Compact(r.policy.round(size))
		r.result.Compactions++
		r.options.Metrics.compacted(dropped, r.pq.Len())

		r.log.Debug("frontier compacted",
			zap.Int("progress", r.policy.progress),
			zap.Int("before", size),
			zap.Int("after", r.pq.Len()),
		)
		if dropped == 0 {
			return
		}
	}
}

// progress logs each time the search reaches a new furthest script position.
func (r *runner) progress(cur *route.Route) {
	if r.policy.highest <= r.reported {
		return
	}
	r.reported = r.policy.highest
	r.log.Info("search progress",
		zap.Int("script_ptr", r.policy.highest),
		zap.Float64("cost", cur.Cost),
		zap.Int("expanded", r.result.Expanded),
		zap.Int("frontier", r.pq.Len()),
	)
}
