package route

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/script"
)

// Simulation is the read-only context shared by every Route of a search.
// It is safe for concurrent use once built.
type Simulation struct {
	script     *script.Script
	catalog    *catalog.Catalog
	rng        catalog.RNGTable
	tables     *script.Tables
	riverSets  [script.RiverWindow]*catalog.FormationSet
	veldtPacks [catalog.VeldtPackCount]catalog.VeldtPack
	region     regionProfile
	logger     *zap.Logger
	traceState bool

	nextID atomic.Uint64
}

// Options configures a Simulation.
type Options struct {
	Tables     *script.Tables // Lete tables; required when the script has a lete
	Region     Region         // reset cost profile
	Logger     *zap.Logger    // branch diagnostics at Debug level
	TraceState bool           // append counter dumps to travelogs
}

// Option represents a functional option for NewSimulation.
type Option func(*Options)

// WithTables supplies the river, lete and returner tables.
func WithTables(t *script.Tables) Option {
	return func(o *Options) { o.Tables = t }
}

// WithRegion selects the reset cost profile.
func WithRegion(r Region) Option {
	return func(o *Options) { o.Region = r }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTraceState appends "--- stepseed stepcounter battleseed battlecounter
// threat cost" lines to travelogs before every instruction and after every
// encounter.
func WithTraceState(on bool) Option {
	return func(o *Options) { o.TraceState = on }
}

// DefaultOptions returns empty tables, RegionNA and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Tables: script.NewTables(),
		Region: RegionNA,
		Logger: zap.NewNop(),
	}
}

// NewSimulation validates and binds the inputs of a search.
//
// The river formation sets are resolved up front when the script contains
// a lete instruction, so a missing set fails here instead of mid-search.
func NewSimulation(sc *script.Script, cat *catalog.Catalog, rng catalog.RNGTable, opts ...Option) (*Simulation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sc == nil || sc.Len() == 0 {
		return nil, fmt.Errorf("%w: empty script", ErrInvalidSimulation)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidSimulation)
	}
	if o.Tables == nil {
		o.Tables = script.NewTables()
	}

	sim := &Simulation{
		script:     sc,
		catalog:    cat,
		rng:        rng,
		tables:     o.Tables,
		veldtPacks: cat.VeldtPacks(),
		region:     o.Region.profile(),
		logger:     o.Logger,
		traceState: o.TraceState,
	}

	if sc.CountKind(script.KindLete) > 0 {
		for i, id := range o.Tables.RiverSets {
			set, err := cat.Set(id)
			if err != nil {
				return nil, fmt.Errorf("%w: river position %d: %w", ErrInvalidSimulation, i, err)
			}
			sim.riverSets[i] = set
		}
	}

	return sim, nil
}

// Script returns the shared script.
func (s *Simulation) Script() *script.Script { return s.script }

// Catalog returns the shared formation catalog.
func (s *Simulation) Catalog() *catalog.Catalog { return s.catalog }

// Logger returns the simulation logger.
func (s *Simulation) Logger() *zap.Logger { return s.logger }

// NewRoute returns a route at the start of the script for the given seed
// and starting threat.
func (s *Simulation) NewRoute(seed uint8, threat int) *Route {
	r := &Route{
		ID:          s.newID(),
		InitialSeed: seed,
		Threat:      threat,
		Weight:      1,
		LastForced:  NoMark,
		LastReset:   NoMark,
		Seen:        make(map[int]struct{}),
		sim:         s,
	}
	r.SetSeed(seed)
	return r
}

// NewRoutes returns one route per (threat, seed) pair, threats outermost.
// An empty seeds slice means every seed 0..255.
func (s *Simulation) NewRoutes(seeds []uint8, threats []int) []*Route {
	if len(seeds) == 0 {
		seeds = AllSeeds()
	}
	if len(threats) == 0 {
		threats = []int{0}
	}
	routes := make([]*Route, 0, len(seeds)*len(threats))
	for _, t := range threats {
		for _, seed := range seeds {
			routes = append(routes, s.NewRoute(seed, t))
		}
	}
	return routes
}

// AllSeeds returns 0..255.
func AllSeeds() []uint8 {
	seeds := make([]uint8, script.TableSize)
	for i := range seeds {
		seeds[i] = uint8(i)
	}
	return seeds
}

func (s *Simulation) newID() uint64 { return s.nextID.Add(1) - 1 }
