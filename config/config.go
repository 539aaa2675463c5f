package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that cannot be decoded or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Inputs     Inputs `yaml:"inputs"`
	Output     Output `yaml:"output"`
	Search     Search `yaml:"search"`
	Seeds      []int  `yaml:"seeds" validate:"omitempty,unique,dive,gte=0,lte=255"`
	Threats    []int  `yaml:"threats" validate:"dive,gte=0,lte=65535"`
	Region     string `yaml:"region" validate:"omitempty,oneof=na us jp"`
	TraceState bool   `yaml:"trace_state"`
}

// Inputs names the files a run reads. The river and the two RNG tables go
// together: either all three are given or none.
type Inputs struct {
	ROM         string `yaml:"rom" validate:"required"`
	Catalog     string `yaml:"catalog" validate:"required"`
	Route       string `yaml:"route" validate:"required"`
	River       string `yaml:"river" validate:"required_with=LeteRNG ReturnerRNG"`
	LeteRNG     string `yaml:"lete_rng" validate:"required_with=River ReturnerRNG"`
	ReturnerRNG string `yaml:"returner_rng" validate:"required_with=River LeteRNG"`
}

// HasTables reports whether the lete tables are configured.
func (in Inputs) HasTables() bool { return in.River != "" }

// Output names the files a run writes.
type Output struct {
	Report  string `yaml:"report" validate:"required"`
	Metrics string `yaml:"metrics"`
}

// Search mirrors the search options.
type Search struct {
	TargetCount  int `yaml:"target_count" validate:"gte=1"`
	MaxFrontier  int `yaml:"max_frontier" validate:"gte=1"`
	PerSeedCap   int `yaml:"per_seed_cap" validate:"gte=0"`
	CompactEvery int `yaml:"compact_every" validate:"gte=1"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Output: Output{Report: "solutions.txt"},
		Search: Search{
			TargetCount:  20,
			MaxFrontier:  10000,
			PerSeedCap:   2,
			CompactEvery: 1000,
		},
		Threats: []int{0},
		Region:  "na",
	}
}

// Decode reads YAML from r over the defaults. An empty document yields the
// defaults. The result is not validated.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Load decodes the file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SeedList returns the configured seeds as bytes. Nil means every seed.
func (c *Config) SeedList() []uint8 {
	if len(c.Seeds) == 0 {
		return nil
	}
	seeds := make([]uint8, len(c.Seeds))
	for i, s := range c.Seeds {
		seeds[i] = uint8(s)
	}
	return seeds
}
