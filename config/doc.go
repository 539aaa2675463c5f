// Package config holds the run configuration of the encrouter CLI.
//
// A configuration is read from YAML over the defaults, may then be
// overridden field by field (the CLI does this from its flags), and is
// checked by Validate before use:
//
//	inputs:
//	  rom: ff6.smc
//	  catalog: catalog.json
//	  route: route.txt
//	  river: tables/river.txt          # the three tables are needed
//	  lete_rng: tables/lete.txt        # only by routes with a lete line
//	  returner_rng: tables/returner.txt
//	output:
//	  report: solutions.txt
//	  metrics: search.prom             # optional textfile dump
//	search:
//	  target_count: 20
//	  max_frontier: 10000
//	  per_seed_cap: 2
//	  compact_every: 1000
//	seeds: []                          # empty means all 256
//	threats: [0]
//	region: na                         # na | us | jp
//	trace_state: false
//
// Unknown keys are rejected. Validation errors wrap ErrInvalidConfig.
package config
