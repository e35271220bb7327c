package floorplan

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/floorplangen/pkg/core"
	"github.com/dshills/floorplangen/pkg/corridor"
	"github.com/dshills/floorplangen/pkg/unitspec"
)

// Config is the full set of generation parameters for one or more
// variants.
type Config struct {
	// Seed is the master seed for deterministic generation. 0 means
	// auto-generate from wall-clock time.
	Seed uint64 `yaml:"seed" json:"seed"`

	Core        CoreCfg        `yaml:"core" json:"core"`
	Circulation CirculationCfg `yaml:"circulation" json:"circulation"`

	// Program describes the required unit mix.
	Program unitspec.Program `yaml:"program" json:"program"`

	// Algorithm selects which packer implementation runs; LoadConfig fills
	// in row_based_v3 when the field is left empty.
	Algorithm unitspec.Algorithm `yaml:"algorithm" json:"algorithm"`

	// VariantCount is how many independently-seeded variants to generate.
	VariantCount int `yaml:"variantCount" json:"variantCount"`
}

// CoreCfg configures core placement.
type CoreCfg struct {
	// Count must be 1, 2, or 4.
	Count int `yaml:"count" json:"count"`

	AreaMin    float64 `yaml:"areaMin" json:"areaMin"`
	AreaTarget float64 `yaml:"areaTarget" json:"areaTarget"`
	AreaMax    float64 `yaml:"areaMax" json:"areaMax"`

	PreferredLocation core.LocationHint `yaml:"preferredLocation" json:"preferredLocation"`
}

// CirculationCfg configures corridor network synthesis.
type CirculationCfg struct {
	CorridorWidthMin    float64 `yaml:"corridorWidthMin" json:"corridorWidthMin"`
	CorridorWidthTarget float64 `yaml:"corridorWidthTarget" json:"corridorWidthTarget"`
	CorridorWidthMax    float64 `yaml:"corridorWidthMax" json:"corridorWidthMax"`

	// LayoutType is carried through for downstream DXF/SVG export; the
	// core generation pipeline does not branch on it.
	LayoutType string `yaml:"layoutType" json:"layoutType"`

	// Pattern forces a topology, or corridor.PatternAuto to select one
	// from the usable area's shape.
	Pattern corridor.Pattern `yaml:"pattern" json:"pattern"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("floorplan: reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("floorplan: parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = unitspec.AlgorithmRowBased
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("floorplan: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning an error
// naming the first invalid field. Validation fails fast at the entry
// point rather than deep inside the pipeline.
func (c *Config) Validate() error {
	if err := c.Core.Validate(); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	if err := c.Circulation.Validate(); err != nil {
		return fmt.Errorf("circulation: %w", err)
	}
	if err := c.Program.Validate(); err != nil {
		return fmt.Errorf("program: %w", err)
	}
	if c.Algorithm != unitspec.AlgorithmRegionBased && c.Algorithm != unitspec.AlgorithmRowBased {
		return fmt.Errorf("algorithm: unknown value %q", c.Algorithm)
	}
	if c.VariantCount < 1 {
		return fmt.Errorf("variantCount: must be >= 1, got %d", c.VariantCount)
	}
	return nil
}

// Validate checks CoreCfg constraints.
func (c *CoreCfg) Validate() error {
	if c.Count != 1 && c.Count != 2 && c.Count != 4 {
		return fmt.Errorf("count must be 1, 2, or 4, got %d", c.Count)
	}
	if c.AreaMin <= 0 || c.AreaTarget < c.AreaMin || c.AreaMax < c.AreaTarget {
		return fmt.Errorf("area range must satisfy 0 < min <= target <= max, got [%v,%v,%v]", c.AreaMin, c.AreaTarget, c.AreaMax)
	}
	switch c.PreferredLocation {
	case core.LocationCenter, core.LocationNorth, core.LocationSouth, core.LocationEast, core.LocationWest, core.LocationAuto, "":
	default:
		return fmt.Errorf("preferredLocation: unknown value %q", c.PreferredLocation)
	}
	return nil
}

// Validate checks CirculationCfg constraints.
func (c *CirculationCfg) Validate() error {
	if c.CorridorWidthMin <= 0 || c.CorridorWidthTarget < c.CorridorWidthMin || c.CorridorWidthMax < c.CorridorWidthTarget {
		return fmt.Errorf("corridor width range must satisfy 0 < min <= target <= max, got [%v,%v,%v]", c.CorridorWidthMin, c.CorridorWidthTarget, c.CorridorWidthMax)
	}
	switch c.Pattern {
	case corridor.PatternT, corridor.PatternL, corridor.PatternU, corridor.PatternH,
		corridor.PatternPlus, corridor.PatternLine, corridor.PatternGrid, corridor.PatternAuto, "":
	default:
		return fmt.Errorf("pattern: unknown value %q", c.Pattern)
	}
	return nil
}

// ToYAML serialises the config back to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic digest of the configuration, used to
// derive per-stage and per-variant RNG seeds.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed derives a seed from the current time when no seed is
// configured.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
