package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/lvseg/cutgraph"
	"github.com/katalvlaran/lvseg/weight"
)

// ErrInvalidConfig indicates a decoded value outside its admissible domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration for one run.
type Config struct {
	Params          weight.Params
	Workers         int
	RepairConnected float64
	RepairSeparated float64
}

// fileSchema mirrors the HCL layout. Pointers distinguish "absent" from zero.
type fileSchema struct {
	Grid      *gridBlock      `hcl:"grid,block"`
	Relations *relationsBlock `hcl:"relations,block"`
}

type gridBlock struct {
	DepthRatio         *float64 `hcl:"depth_ratio,optional"`
	AngleFallback      *float64 `hcl:"angle_fallback,optional"`
	FirstColumnWeight  *float64 `hcl:"first_column_weight,optional"`
	ZeroVarianceWeight *float64 `hcl:"zero_variance_weight,optional"`
	Workers            *int     `hcl:"workers,optional"`
}

type relationsBlock struct {
	RepairProbability []float64 `hcl:"repair_probability,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Params:          weight.DefaultParams(),
		Workers:         1,
		RepairConnected: cutgraph.DefaultRepairConnected,
		RepairSeparated: cutgraph.DefaultRepairSeparated,
	}
}

// Load reads, decodes and validates the HCL file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	return decode(file.Body, path)
}

// Parse decodes and validates HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Config, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if g := schema.Grid; g != nil {
		setFloat(&cfg.Params.DepthRatio, g.DepthRatio)
		setFloat(&cfg.Params.AngleFallback, g.AngleFallback)
		setFloat(&cfg.Params.FirstColumnWeight, g.FirstColumnWeight)
		setFloat(&cfg.Params.ZeroVarianceWeight, g.ZeroVarianceWeight)
		if g.Workers != nil {
			cfg.Workers = *g.Workers
		}
	}
	if r := schema.Relations; r != nil && r.RepairProbability != nil {
		if len(r.RepairProbability) != 2 {
			return nil, fmt.Errorf("%s: %w: repair_probability needs 2 values, got %d",
				filename, ErrInvalidConfig, len(r.RepairProbability))
		}
		cfg.RepairConnected = r.RepairProbability[0]
		cfg.RepairSeparated = r.RepairProbability[1]
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports the first value outside its domain, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be >= 1", ErrInvalidConfig, c.Workers)
	}
	if !unit(c.RepairConnected) || !unit(c.RepairSeparated) {
		return fmt.Errorf("%w: repair probability [%g, %g] must lie in [0, 1]",
			ErrInvalidConfig, c.RepairConnected, c.RepairSeparated)
	}

	return nil
}

// Options converts a validated Config into cutgraph options. Call Validate
// first; invalid values make the option constructors panic.
func (c *Config) Options() []cutgraph.Option {
	return []cutgraph.Option{
		cutgraph.WithParams(c.Params),
		cutgraph.WithWorkers(c.Workers),
		cutgraph.WithRepairProbability(c.RepairConnected, c.RepairSeparated),
	}
}

func unit(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
