// Package encrouter plans random-encounter manipulation for scripted Final
// Fantasy VI routes.
//
// The game draws battles from a fixed 256-byte RNG table indexed by two
// 8-bit counters, so every starting seed fixes the whole sequence of
// encounters a route will meet. encrouter simulates a route script from
// each seed and searches the cheapest combination of manipulations
// (soft resets, menu threat-rate fixes, forced encounters, extra steps in
// safer zones, the Lete River checkpoint) that yields the encounters the
// runner wants.
//
// Packages:
//
//	catalog/       monsters, formations, formation sets, cost model, RNG table
//	script/        route script instructions, parsers, lete lookup tables
//	route/         route state, RNG prediction, script execution, Expand
//	search/        best-first EncounterSearch with a bounded frontier
//	report/        plain-text travelog report
//	config/        YAML run configuration
//	loader/        builds a route.Simulation from input files
//	cmd/encrouter/ command line entry point
//
// A typical embedding:
//
//	sim, err := loader.Load(ctx, cfg.Inputs, loader.WithLogger(log))
//	if err != nil { ... }
//	res, err := search.EncounterSearch(sim.NewRoutes(nil, nil),
//		search.WithTargetCount(20), search.WithPerSeedCap(2))
//	if err != nil { ... }
//	err = report.WriteFile("solutions.txt", res.Solutions)
package encrouter
