package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/encrouter/config"
)

// flags holds the command line. Only flags the user set override the
// configuration file.
type flags struct {
	configPath string
	verbose    bool

	rom, catalog, route         string
	river, leteRNG, returnerRNG string
	report, metrics             string

	targetCount, maxFrontier int
	perSeedCap, compactEvery int

	seeds, threats []int
	region         string
	traceState     bool
}

func (f *flags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()

	fs.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")

	fs.StringVar(&f.rom, "rom", "", "headerless ROM image holding the RNG table")
	fs.StringVar(&f.catalog, "catalog", "", "formation catalog (JSON)")
	fs.StringVar(&f.route, "route", "", "route script")
	fs.StringVar(&f.river, "river", "", "lete river sequence table")
	fs.StringVar(&f.leteRNG, "lete-rng", "", "lete RNG lookup table")
	fs.StringVar(&f.returnerRNG, "returner-rng", "", "returner RNG lookup table")
	fs.StringVarP(&f.report, "out", "o", d.Output.Report, "report file")
	fs.StringVar(&f.metrics, "metrics", "", "write search metrics to this textfile")

	fs.IntVarP(&f.targetCount, "target", "n", d.Search.TargetCount, "solutions to find")
	fs.IntVar(&f.maxFrontier, "max-frontier", d.Search.MaxFrontier, "frontier size that triggers compaction")
	fs.IntVar(&f.perSeedCap, "per-seed-cap", d.Search.PerSeedCap, "solutions kept per starting seed (0 = unlimited)")
	fs.IntVar(&f.compactEvery, "compact-every", d.Search.CompactEvery, "expansions between compaction checks")

	fs.IntSliceVarP(&f.seeds, "seed", "s", nil, "starting seeds (default all 256)")
	fs.IntSliceVar(&f.threats, "threat", d.Threats, "starting threat values")
	fs.StringVar(&f.region, "region", d.Region, "reset cost profile: na or jp")
	fs.BoolVar(&f.traceState, "trace-state", false, "append RNG counter dumps to travelogs")
}

// apply copies every flag the user set onto cfg.
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	strs := []struct {
		name string
		src  string
		dst  *string
	}{
		{"rom", f.rom, &cfg.Inputs.ROM},
		{"catalog", f.catalog, &cfg.Inputs.Catalog},
		{"route", f.route, &cfg.Inputs.Route},
		{"river", f.river, &cfg.Inputs.River},
		{"lete-rng", f.leteRNG, &cfg.Inputs.LeteRNG},
		{"returner-rng", f.returnerRNG, &cfg.Inputs.ReturnerRNG},
		{"out", f.report, &cfg.Output.Report},
		{"metrics", f.metrics, &cfg.Output.Metrics},
		{"region", f.region, &cfg.Region},
	}
	for _, s := range strs {
		if set(s.name) {
			*s.dst = s.src
		}
	}

	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"target", f.targetCount, &cfg.Search.TargetCount},
		{"max-frontier", f.maxFrontier, &cfg.Search.MaxFrontier},
		{"per-seed-cap", f.perSeedCap, &cfg.Search.PerSeedCap},
		{"compact-every", f.compactEvery, &cfg.Search.CompactEvery},
	}
	for _, n := range ints {
		if set(n.name) {
			*n.dst = n.src
		}
	}

	if set("seed") {
		cfg.Seeds = f.seeds
	}
	if set("threat") {
		cfg.Threats = f.threats
	}
	if set("trace-state") {
		cfg.TraceState = f.traceState
	}
}
