package search

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/encrouter/route"
)

// Sentinel errors returned by EncounterSearch.
var (
	// ErrNoRoutes indicates EncounterSearch was given no starting routes.
	ErrNoRoutes = errors.New("search: no starting routes")

	// ErrBadTargetCount indicates a target solution count below one.
	ErrBadTargetCount = errors.New("search: target count must be positive")

	// ErrBadFrontier indicates a non-positive frontier bound or compaction period.
	ErrBadFrontier = errors.New("search: frontier bounds must be positive")

	// ErrSearchExhausted indicates the frontier emptied while solutions were
	// still wanted: the configuration is infeasible or the bound too tight.
	ErrSearchExhausted = errors.New("search: no valid solutions found")
)

// Options configures EncounterSearch.
//
// TargetCount  – number of solutions to collect. Must be ≥ 1.
// MaxFrontier  – frontier size above which compaction runs. Must be ≥ 1.
// PerSeedCap   – solutions kept per starting seed; 0 keeps any number.
// CompactEvery – pops between two compaction checks. Must be ≥ 1.
type Options struct {
	TargetCount  int
	MaxFrontier  int
	PerSeedCap   int
	CompactEvery int
	Logger       *zap.Logger
	Metrics      *Metrics
}

// Option represents a functional option for EncounterSearch.
type Option func(*Options)

// WithTargetCount sets the number of solutions to collect.
// Values below one make EncounterSearch return ErrBadTargetCount.
func WithTargetCount(n int) Option {
	return func(o *Options) { o.TargetCount = n }
}

// WithMaxFrontier sets the frontier bound. It panics on n < 1.
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadFrontier.Error())
		}
		o.MaxFrontier = n
	}
}

// WithPerSeedCap limits the solutions kept per starting seed. Zero or a
// negative value means no limit.
func WithPerSeedCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.PerSeedCap = n
	}
}

// WithCompactEvery sets the pops between compaction checks. It panics on n < 1.
func WithCompactEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadFrontier.Error())
		}
		o.CompactEvery = n
	}
}

// WithLogger sets the progress logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records search activity in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions returns the defaults:
//
//   - TargetCount:  1
//   - MaxFrontier:  25000
//   - PerSeedCap:   0 (unlimited)
//   - CompactEvery: 1000
//   - Logger:       zap.NewNop()
//   - Metrics:      nil (disabled)
func DefaultOptions() Options {
	return Options{
		TargetCount:  1,
		MaxFrontier:  25000,
		CompactEvery: 1000,
		Logger:       zap.NewNop(),
	}
}

// Result is the outcome of a search.
type Result struct {
	Solutions     []*route.Route // terminal routes in the order they were found
	Expanded      int            // routes popped from the frontier
	Compactions   int            // compaction rounds run
	FrontierSeeds []uint8        // starting seeds still on the frontier, ascending
}
