package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/encrouter/config"
	"github.com/katalvlaran/encrouter/loader"
	"github.com/katalvlaran/encrouter/report"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/search"
)

func run(cmd *cobra.Command, f *flags, logger *zap.Logger) error {
	// 1) Resolve the configuration: file, then flags.
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	region, err := route.ParseRegion(cfg.Region)
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Info("run started",
		zap.String("route", cfg.Inputs.Route),
		zap.Int("target_count", cfg.Search.TargetCount),
		zap.Int("seeds", len(cfg.Seeds)),
		zap.Ints("threats", cfg.Threats),
		zap.Stringer("region", region),
	)

	// 2) Load the inputs.
	sim, err := loader.Load(cmd.Context(), cfg.Inputs,
		loader.WithLogger(log),
		loader.WithRegion(region),
		loader.WithTraceState(cfg.TraceState),
	)
	if err != nil {
		return err
	}

	// 3) Search.
	reg := prometheus.NewRegistry()
	res, err := search.EncounterSearch(sim.NewRoutes(cfg.SeedList(), cfg.Threats),
		search.WithTargetCount(cfg.Search.TargetCount),
		search.WithMaxFrontier(cfg.Search.MaxFrontier),
		search.WithPerSeedCap(cfg.Search.PerSeedCap),
		search.WithCompactEvery(cfg.Search.CompactEvery),
		search.WithLogger(log.Named("search")),
		search.WithMetrics(search.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	// 4) Write the outputs.
	if err := report.WriteFile(cfg.Output.Report, res.Solutions); err != nil {
		return err
	}
	if cfg.Output.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Output.Metrics, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	log.Info("run finished",
		zap.Int("solutions", len(res.Solutions)),
		zap.Int("expanded", res.Expanded),
		zap.String("report", cfg.Output.Report),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "%d solutions written to %s\n", len(res.Solutions), cfg.Output.Report)
	return nil
}
