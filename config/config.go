// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
//
// The NEAT engine's own hyperparameters (population size, network shape,
// mutation rates) live in a separate neat-python style INI file referenced
// by Evolution.NeatConfig; this struct only covers the game side.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Bird      BirdConfig      `yaml:"bird"`
	Pipe      PipeConfig      `yaml:"pipe"`
	Ground    GroundConfig    `yaml:"ground"`
	Evolution EvolutionConfig `yaml:"evolution"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BirdConfig holds bird physics and geometry parameters.
type BirdConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	JumpImpulse float64 `yaml:"jump_impulse"`  // Velocity set on jump (negative = up)
	FallAccel   float64 `yaml:"fall_accel"`    // Quadratic fall coefficient per tick
	MaxFallStep float64 `yaml:"max_fall_step"` // Terminal downward displacement per tick
	RiseBonus   float64 `yaml:"rise_bonus"`    // Extra lift while displacement is upward
	MaxTilt     float64 `yaml:"max_tilt"`      // Nose-up rotation cap in degrees
	TiltRate    float64 `yaml:"tilt_rate"`     // Nose-down rotation per tick in degrees
}

// PipeConfig holds pipe course parameters.
type PipeConfig struct {
	Width       float64 `yaml:"width"`
	Gap         float64 `yaml:"gap"`          // Vertical gap size between segments
	ScrollSpeed float64 `yaml:"scroll_speed"` // Horizontal speed toward the bird per tick
	SpawnX      float64 `yaml:"spawn_x"`      // X of the first pipe of a generation
	RespawnX    float64 `yaml:"respawn_x"`    // X of pipes spawned after a pass
	MinGapTop   float64 `yaml:"min_gap_top"`  // Lowest allowed y for the gap's top edge
	MaxGapTop   float64 `yaml:"max_gap_top"`  // Highest allowed y for the gap's top edge
}

// GroundConfig holds ground parameters.
type GroundConfig struct {
	Y float64 `yaml:"y"` // Top of the ground strip; birds die at or below it
}

// EvolutionConfig holds generation evaluation parameters.
type EvolutionConfig struct {
	NeatConfig     string  `yaml:"neat_config"`     // Path to the NEAT INI file
	MaxGenerations int     `yaml:"max_generations"` // Run cap in generations
	MaxTicks       int     `yaml:"max_ticks"`       // Per-generation tick cap
	MaxScore       int     `yaml:"max_score"`       // Per-generation score cap
	TickReward     float64 `yaml:"tick_reward"`     // Fitness per tick survived
	PipeReward     float64 `yaml:"pipe_reward"`     // Fitness per pipe passed
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogGenerations bool `yaml:"log_generations"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 int32 // Screen.Width as int32 for raylib calls
	ScreenH32 int32 // Screen.Height as int32 for raylib calls
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configs the evaluation loop cannot run with.
func (c *Config) validate() error {
	if c.Evolution.MaxTicks <= 0 {
		return fmt.Errorf("config error: evolution.max_ticks must be positive")
	}
	if c.Evolution.MaxGenerations <= 0 {
		return fmt.Errorf("config error: evolution.max_generations must be positive")
	}
	if c.Pipe.Gap <= 0 {
		return fmt.Errorf("config error: pipe.gap must be positive")
	}
	if c.Pipe.MaxGapTop <= c.Pipe.MinGapTop {
		return fmt.Errorf("config error: pipe.max_gap_top must exceed pipe.min_gap_top")
	}
	if c.Pipe.ScrollSpeed <= 0 {
		return fmt.Errorf("config error: pipe.scroll_speed must be positive")
	}
	if c.Ground.Y <= c.Bird.StartY {
		return fmt.Errorf("config error: ground.y must be below bird.start_y")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = int32(c.Screen.Width)
	c.Derived.ScreenH32 = int32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
