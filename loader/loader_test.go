package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/encrouter/catalog"
	"github.com/katalvlaran/encrouter/config"
	"github.com/katalvlaran/encrouter/loader"
	"github.com/katalvlaran/encrouter/route"
	"github.com/katalvlaran/encrouter/script"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeROM writes a ROM image whose RNG table counts down from 0xFF.
func writeROM(t *testing.T) string {
	t.Helper()
	rom := make([]byte, catalog.RNGTableOffset+catalog.RNGTableSize)
	for i := 0; i < catalog.RNGTableSize; i++ {
		rom[catalog.RNGTableOffset+i] = byte(0xFF - i)
	}
	path := filepath.Join(t.TempDir(), "ff6.smc")
	require.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}

// writeRiver writes a river table with a fight on every third seed.
func writeRiver(t *testing.T) string {
	t.Helper()
	lines := make([]string, script.TableSize)
	for i := range lines {
		lines[i] = "-"
		if i%3 == 0 {
			lines[i] = "fight"
		}
	}
	path := filepath.Join(t.TempDir(), "river.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func baseInputs(t *testing.T) config.Inputs {
	return config.Inputs{
		ROM:     writeROM(t),
		Catalog: filepath.Join("testdata", "catalog.json"),
		Route:   filepath.Join("testdata", "route.txt"),
	}
}

func TestLoad(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sim, err := loader.Load(context.Background(), baseInputs(t), loader.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 6, sim.Script().Len())
	assert.Equal(t, 1, sim.Script().CountKind(script.KindForce))
	nf, ns := sim.Catalog().Len()
	assert.Equal(t, 4, nf)
	assert.Equal(t, 4, ns)

	assert.Equal(t, 1, logs.FilterMessage("inputs loaded").Len())
	assert.Equal(t, 1, logs.FilterMessage("catalog loaded").Len())

	// the simulation runs a default pass end to end
	r := sim.NewRoute(0x42, 0)
	for !r.Terminal() {
		require.NoError(t, r.Execute())
	}
	assert.Positive(t, r.Cost)
}

func TestLoad_WithLeteTables(t *testing.T) {
	in := baseInputs(t)
	in.Route = filepath.Join("testdata", "route_lete.txt")
	in.River = writeRiver(t)
	in.LeteRNG = filepath.Join("testdata", "lete.txt")
	in.ReturnerRNG = filepath.Join("testdata", "returner.txt")

	sim, err := loader.Load(context.Background(), in, loader.WithRegion(route.RegionJP))
	require.NoError(t, err)
	assert.Equal(t, 1, sim.Script().CountKind(script.KindLete))
}

func TestLoad_LeteWithoutTables(t *testing.T) {
	in := baseInputs(t)
	in.Route = filepath.Join("testdata", "route_lete.txt")

	_, err := loader.Load(context.Background(), in)
	assert.True(t, errors.Is(err, loader.ErrMissingTables))
}

func TestLoad_Errors(t *testing.T) {
	in := baseInputs(t)
	in.Catalog = filepath.Join("testdata", "absent.json")
	_, err := loader.Load(context.Background(), in)
	assert.Error(t, err)

	in = baseInputs(t)
	in.ROM = filepath.Join("testdata", "catalog.json") // far too short for the RNG table
	_, err = loader.Load(context.Background(), in)
	assert.True(t, errors.Is(err, catalog.ErrInvalidROM))

	in = baseInputs(t)
	in.River = filepath.Join("testdata", "lete.txt") // not 256 lines
	in.LeteRNG = filepath.Join("testdata", "lete.txt")
	in.ReturnerRNG = filepath.Join("testdata", "returner.txt")
	_, err = loader.Load(context.Background(), in)
	assert.True(t, errors.Is(err, script.ErrInvalidTable))
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, baseInputs(t))
	assert.True(t, errors.Is(err, context.Canceled))
}
