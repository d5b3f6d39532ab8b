package systems

import (
	"math/rand"

	"flappyneat/config"
)

// PipeParams holds the course constants for pipe management.
type PipeParams struct {
	Width       float64
	Gap         float64
	ScrollSpeed float64
	SpawnX      float64
	RespawnX    float64
	MinGapTop   float64
	MaxGapTop   float64
}

// PipeParamsFromConfig extracts the course constants from the arena config.
func PipeParamsFromConfig(cfg *config.Config) PipeParams {
	return PipeParams{
		Width:       cfg.Pipe.Width,
		Gap:         cfg.Pipe.Gap,
		ScrollSpeed: cfg.Pipe.ScrollSpeed,
		SpawnX:      cfg.Pipe.SpawnX,
		RespawnX:    cfg.Pipe.RespawnX,
		MinGapTop:   cfg.Pipe.MinGapTop,
		MaxGapTop:   cfg.Pipe.MaxGapTop,
	}
}

// Pipe is one obstacle column: two segments around a vertical gap.
type Pipe struct {
	X      float64
	GapTop float64 // bottom edge of the upper segment
	GapBot float64 // top edge of the lower segment
	Passed bool
}

// NewPipe creates a pipe at x with a uniformly random gap placement.
func NewPipe(x float64, rng *rand.Rand, p PipeParams) Pipe {
	gapTop := p.MinGapTop + rng.Float64()*(p.MaxGapTop-p.MinGapTop)
	return Pipe{X: x, GapTop: gapTop, GapBot: gapTop + p.Gap}
}

// Course manages the scrolling pipes shared by all agents of a generation.
type Course struct {
	Pipes  []Pipe
	rng    *rand.Rand
	params PipeParams
}

// NewCourse creates a course with a single pipe at the spawn position.
func NewCourse(rng *rand.Rand, params PipeParams) *Course {
	c := &Course{rng: rng, params: params}
	c.Reset()
	return c
}

// Params returns the course constants.
func (c *Course) Params() PipeParams {
	return c.params
}

// Reset discards all pipes and spawns a fresh one at the spawn position.
func (c *Course) Reset() {
	c.Pipes = c.Pipes[:0]
	c.Pipes = append(c.Pipes, NewPipe(c.params.SpawnX, c.rng, c.params))
}

// Active returns the pipe the birds must react to: the first one whose
// trailing edge is still ahead of the bird's x position.
func (c *Course) Active(birdX float64) *Pipe {
	for i := range c.Pipes {
		if birdX <= c.Pipes[i].X+c.params.Width {
			return &c.Pipes[i]
		}
	}
	// All pipes behind the bird; react to the newest one.
	return &c.Pipes[len(c.Pipes)-1]
}

// Step scrolls every pipe one tick, recycles pipes that left the screen and
// spawns a replacement when a pipe is first passed. Reports whether a pass
// happened this tick.
func (c *Course) Step(birdX float64) bool {
	passed := false
	live := c.Pipes[:0]
	for i := range c.Pipes {
		pipe := c.Pipes[i]
		pipe.X -= c.params.ScrollSpeed

		if !pipe.Passed && pipe.X+c.params.Width < birdX {
			pipe.Passed = true
			passed = true
		}

		// Recycle once fully off the left edge.
		if pipe.X+c.params.Width >= 0 {
			live = append(live, pipe)
		}
	}
	c.Pipes = live

	if passed {
		c.Pipes = append(c.Pipes, NewPipe(c.params.RespawnX, c.rng, c.params))
	}
	if len(c.Pipes) == 0 {
		c.Pipes = append(c.Pipes, NewPipe(c.params.RespawnX, c.rng, c.params))
	}
	return passed
}
