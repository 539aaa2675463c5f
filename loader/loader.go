package loader

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/config"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/script"
)

// ErrMissingTables indicates a route with a lete checkpoint but no lete tables.
var ErrMissingTables = errors.New("loader: route has a lete checkpoint but no lete tables are configured")

// Options configures Load.
type Options struct {
	Logger     *zap.Logger
	Region     route.Region
	TraceState bool
}

// Option represents a functional option for Load.
type Option func(*Options)

// WithLogger sets the logger used while loading and by the simulation.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegion selects the reset cost profile.
func WithRegion(r route.Region) Option {
	return func(o *Options) { o.Region = r }
}

// WithTraceState appends counter dumps to every travelog.
func WithTraceState(on bool) Option {
	return func(o *Options) { o.TraceState = on }
}

// DefaultOptions returns a no-op logger, RegionNA and tracing off.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Region: route.RegionNA}
}

// Load reads every input named in in and returns the simulation.
func Load(ctx context.Context, in config.Inputs, opts ...Option) (*route.Simulation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.Named("loader")

	var (
		cat      *catalog.Catalog
		rng      catalog.RNGTable
		tables   = script.NewTables()
		g, gctx  = errgroup.WithContext(ctx)
		withLete = in.HasTables()
	)

	// 1) Independent files.
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		cat, err = catalog.LoadFile(in.Catalog)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		rng, err = catalog.LoadRNGTable(in.ROM)
		return err
	})
	if withLete {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			tables.River, err = script.LoadRiver(in.River)
			return err
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			tables.LeteRNG, err = script.LoadSeedTable(in.LeteRNG)
			return err
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			tables.ReturnerRNG, err = script.LoadSeedTable(in.ReturnerRNG)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	formations, sets := cat.Len()
	log.Debug("catalog loaded", zap.String("path", in.Catalog),
		zap.Int("formations", formations), zap.Int("sets", sets))

	// 2) The script needs the catalog.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc, err := script.ParseFile(in.Route, cat)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if sc.CountKind(script.KindLete) > 0 && !withLete {
		return nil, ErrMissingTables
	}

	// 3) Assemble.
	sim, err := route.NewSimulation(sc, cat, rng,
		route.WithTables(tables),
		route.WithRegion(o.Region),
		route.WithLogger(o.Logger),
		route.WithTraceState(o.TraceState),
	)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	log.Info("inputs loaded",
		zap.String("route", in.Route),
		zap.Int("instructions", sc.Len()),
		zap.Int("lete", sc.CountKind(script.KindLete)),
		zap.Int("resets", sc.CountKind(script.KindReset)),
		zap.Bool("tables", withLete),
	)
	return sim, nil
}
