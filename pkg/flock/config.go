package flock

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tochemey/goakt/v3/log"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

var (
	// ErrUnsupportedConfigFormat is returned for config files that are neither JSON nor TOML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	// ErrInvalidConfig is returned when values are individually valid but inconsistent.
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	// World Dimensions, used until the presentation layer reports its own size
	WorldWidth  float64 `json:"worldWidth" toml:"worldWidth"`
	WorldHeight float64 `json:"worldHeight" toml:"worldHeight"`

	// Visual size of a boid, the neighbor radius and spawn margin derive from it
	TriangleSize         float64 `json:"triangleSize" toml:"triangleSize"`
	NeighborRadiusFactor float64 `json:"neighborRadiusFactor" toml:"neighborRadiusFactor"` // R = TriangleSize * factor
	SeparationDivisor    float64 `json:"separationDivisor" toml:"separationDivisor"`       // T = R / divisor

	// Steering factors (fraction of the heading gap closed per tick)
	AlignmentFactor  float64 `json:"alignmentFactor" toml:"alignmentFactor"`
	SeparationFactor float64 `json:"separationFactor" toml:"separationFactor"` // scaled by speed/ReferenceSpeed
	CohesionFactor   float64 `json:"cohesionFactor" toml:"cohesionFactor"`     // scaled by speed/ReferenceSpeed
	ReferenceSpeed   float64 `json:"referenceSpeed" toml:"referenceSpeed"`

	// Minimum neighbor count for each rule to apply
	AlignmentMinNeighbors  int `json:"alignmentMinNeighbors" toml:"alignmentMinNeighbors"`
	SeparationMinNeighbors int `json:"separationMinNeighbors" toml:"separationMinNeighbors"`
	CohesionMinNeighbors   int `json:"cohesionMinNeighbors" toml:"cohesionMinNeighbors"`

	// Boundary avoidance
	WallBaseDistance    float64 `json:"wallBaseDistance" toml:"wallBaseDistance"`
	WallLookaheadFactor float64 `json:"wallLookaheadFactor" toml:"wallLookaheadFactor"`
	WallSteerBase       float64 `json:"wallSteerBase" toml:"wallSteerBase"`

	// Spawn speed range, inclusive
	MinSpeed int `json:"minSpeed" toml:"minSpeed"`
	MaxSpeed int `json:"maxSpeed" toml:"maxSpeed"`

	TargetTPS int    `json:"targetTPS" toml:"targetTPS"`
	LogLevel  string `json:"logLevel" toml:"logLevel"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:             1600,
		WorldHeight:            900,
		TriangleSize:           20,
		NeighborRadiusFactor:   6,
		SeparationDivisor:      3,
		AlignmentFactor:        0.1,
		SeparationFactor:       0.1,
		CohesionFactor:         0.05,
		ReferenceSpeed:         3,
		AlignmentMinNeighbors:  2,
		SeparationMinNeighbors: 2,
		CohesionMinNeighbors:   1,
		WallBaseDistance:       50,
		WallLookaheadFactor:    5,
		WallSteerBase:          0.155,
		MinSpeed:               3,
		MaxSpeed:               5,
		TargetTPS:              60,
		LogLevel:               "info",
	}
}

// NeighborRadius is the interaction radius R of every boid.
// Two boids are neighbors when their circles of radius R overlap.
func (c *Config) NeighborRadius() float64 {
	return c.TriangleSize * c.NeighborRadiusFactor
}

// SeparationThreshold is the distance T under which neighbors repel.
func (c *Config) SeparationThreshold() float64 {
	return c.NeighborRadius() / c.SeparationDivisor
}

// Bounds returns the configured world rectangle.
func (c *Config) Bounds() Bounds {
	return Bounds{Width: c.WorldWidth, Height: c.WorldHeight}
}

// Tunable is a steering factor that can be changed while the simulation runs.
// Value points into the Config, writes take effect at the next Step.
type Tunable struct {
	Name     string
	Min, Max float64
	Value    *float64
}

// Tunables lists the steering factors exposed to live tuning, with their slider ranges.
func (c *Config) Tunables() []Tunable {
	return []Tunable{
		{Name: "Separation", Min: 0.01, Max: 0.5, Value: &c.SeparationFactor},
		{Name: "Alignment", Min: 0.01, Max: 0.5, Value: &c.AlignmentFactor},
		{Name: "Cohesion", Min: 0.005, Max: 0.2, Value: &c.CohesionFactor},
		{Name: "Wall Steer", Min: 0.05, Max: 0.5, Value: &c.WallSteerBase},
	}
}

// Validate checks the rules the schema cannot express.
func (c *Config) Validate() error {
	if c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: minSpeed %d is greater than maxSpeed %d", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	if c.WorldWidth <= 2*c.TriangleSize || c.WorldHeight <= 2*c.TriangleSize {
		return fmt.Errorf("%w: world %.0fx%.0f leaves no room to spawn boids of size %.0f",
			ErrInvalidConfig, c.WorldWidth, c.WorldHeight, c.TriangleSize)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads a JSON or TOML configuration file, validates it against the
// embedded schema and applies it over DefaultConfig, so omitted keys keep their defaults.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Decode to a generic document and validate
	var doc interface{}
	ext := strings.ToLower(filepath.Ext(configFile))
	switch ext {
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
	case ".toml":
		m := make(map[string]interface{})
		if _, err := toml.Decode(string(b), &m); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		doc = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	cfg := DefaultConfig()
	if ext == ".json" {
		err = json.Unmarshal(b, cfg)
	} else {
		_, err = toml.Decode(string(b), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseLogLevel maps a config level name to the logger level.
// It accepts exactly the names the config schema allows.
func ParseLogLevel(level string) (log.Level, error) {
	switch level {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarningLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, level)
}
