// Command encrouter searches for the cheapest way to manipulate the random
// encounters of a scripted Final Fantasy VI route.
//
// Usage:
//
//	encrouter --config run.yaml
//	encrouter --rom ff6.smc --catalog catalog.json --route route.txt -o solutions.txt
//
// Flags override the values of the configuration file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "encrouter:", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command. A nil logger is replaced by a production
// logger when the command runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "encrouter",
		Short: "Plan RNG manipulations for a scripted FF6 route",
		Long: `encrouter simulates a route script from every starting RNG seed and
searches the resets, menu tricks, forced encounters and extra steps that
give the cheapest sequence of battles. Each solution is written to the
report as a travelog followed by a summary of the final RNG state.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if f.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, logger)
		},
	}
	f.register(cmd)

	return cmd
}
