// Package game drives the population evaluation loop: each generation it
// steps every live agent's bird through the shared pipe course, queries the
// agent's controller for an action, applies physics and collisions, and
// accumulates fitness for the evolutionary engine.
package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"flappyneat/components"
	"flappyneat/config"
	"flappyneat/systems"
	"flappyneat/telemetry"
)

// observationSize is the controller input width: bird height plus the
// distances to the active pipe's gap edges.
const observationSize = 3

// maxStepsPerFrame caps the windowed-mode speed multiplier.
const maxStepsPerFrame = 10

// Controller maps an observation vector to action outputs. The NEAT
// phenotype network satisfies this interface.
type Controller interface {
	Activate(inputs []float64) ([]float64, error)
}

// Options configure a Game instance.
type Options struct {
	Seed      int64
	Headless  bool
	OutputDir string
}

// Game holds the shared arena state for one evolution run.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world  *ecs.World
	agents *ecs.Map2[components.Bird, components.AgentState]
	filter *ecs.Filter2[components.Bird, components.AgentState]

	// Controllers by genome key; rebuilt every generation.
	controllers map[int]Controller

	course     *systems.Course
	ground     *systems.Ground
	birdParams systems.BirdParams

	tick       int
	generation int
	score      int
	alive      int

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	headless      bool
	paused        bool
	stepsPerFrame int
	stopRequested bool
}

// NewGame creates a game instance from the global configuration.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))
	world := ecs.NewWorld()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		world:         world,
		agents:        ecs.NewMap2[components.Bird, components.AgentState](world),
		filter:        ecs.NewFilter2[components.Bird, components.AgentState](world),
		controllers:   make(map[int]Controller),
		course:        systems.NewCourse(rng, systems.PipeParamsFromConfig(cfg)),
		ground:        systems.NewGround(cfg.Ground.Y, float64(cfg.Screen.Width)),
		birdParams:    systems.BirdParamsFromConfig(cfg),
		collector:     telemetry.NewCollector(),
		output:        output,
		headless:      opts.Headless,
		stepsPerFrame: 1,
	}
	return g, nil
}

// Tick returns the tick count of the current generation.
func (g *Game) Tick() int {
	return g.tick
}

// Generation returns the number of generations evaluated so far.
func (g *Game) Generation() int {
	return g.generation
}

// Score returns the shared pipe count of the current generation.
func (g *Game) Score() int {
	return g.score
}
