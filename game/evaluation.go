package game

import (
	"errors"
	"log/slog"
	"math"

	"github.com/baldhumanity/neat-go/neat"
	"github.com/baldhumanity/neat-go/neat/nn"
	"github.com/mlange-42/ark/ecs"

	"flappyneat/components"
	"flappyneat/systems"
)

// evalGenomes is the neat.FitnessFunc for the arena: it evaluates every
// genome of a generation in one shared run and writes the resulting fitness
// back onto the genomes.
func (g *Game) evalGenomes(genomes map[int]*neat.Genome) error {
	if len(genomes) == 0 {
		return errors.New("cannot evaluate an empty population")
	}

	g.generation++
	g.collector.Reset()
	g.resetWorld()

	for key, genome := range genomes {
		genome.Fitness = 0
		net, err := nn.CreateFeedForwardNetwork(genome)
		if err != nil {
			// A genome whose phenotype cannot be built scores zero.
			slog.Warn("phenotype build failed", "genome", key, "error", err)
			continue
		}
		g.spawnAgent(key, net)
	}

	g.runGeneration()
	g.harvestFitness(genomes)
	g.despawnAgents()
	return nil
}

// resetWorld prepares the shared course for a new generation.
func (g *Game) resetWorld() {
	g.course.Reset()
	g.ground = systems.NewGround(g.cfg.Ground.Y, float64(g.cfg.Screen.Width))
	g.tick = 0
	g.score = 0
}

// spawnAgent adds one agent entity and registers its controller.
func (g *Game) spawnAgent(genomeKey int, ctrl Controller) {
	bird := components.Bird{
		X:     g.cfg.Bird.StartX,
		Y:     g.cfg.Bird.StartY,
		JumpY: g.cfg.Bird.StartY,
	}
	state := components.AgentState{GenomeKey: genomeKey, Alive: true}
	g.agents.NewEntity(&bird, &state)
	g.controllers[genomeKey] = ctrl
	g.alive++
	g.collector.RecordAgent()
}

// runGeneration executes the synchronous tick loop until every agent is dead
// or the tick or score cap is reached.
func (g *Game) runGeneration() {
	for g.alive > 0 && g.tick < g.cfg.Evolution.MaxTicks &&
		g.score < g.cfg.Evolution.MaxScore && !g.stopRequested {
		if g.headless {
			g.step()
			continue
		}
		g.frame()
	}
	g.collector.SetOutcome(g.tick, g.score, g.alive)
}

// step advances the whole arena one tick.
func (g *Game) step() {
	active := g.course.Active(g.cfg.Bird.StartX)

	// Controller decisions and bird physics.
	query := g.filter.Query()
	for query.Next() {
		bird, state := query.Get()
		if !state.Alive {
			continue
		}
		if ctrl := g.controllers[state.GenomeKey]; ctrl != nil {
			out, err := ctrl.Activate(observation(bird, active))
			if err == nil && wantsJump(out) {
				systems.Jump(bird, g.birdParams)
			}
		}
		systems.BirdStep(bird, g.birdParams)
		state.Fitness += g.cfg.Evolution.TickReward
	}

	// Scroll the shared course and ground.
	passed := g.course.Step(g.cfg.Bird.StartX)
	g.ground.Step(g.cfg.Pipe.ScrollSpeed)
	if passed {
		g.score++
	}

	// Collisions, bounds and the pass bonus.
	birdW, birdH := g.cfg.Bird.Width, g.cfg.Bird.Height
	query = g.filter.Query()
	for query.Next() {
		bird, state := query.Get()
		if !state.Alive {
			continue
		}
		switch {
		case g.hitsAnyPipe(systems.BirdRect(bird, birdW, birdH)):
			g.kill(state, components.DeathPipe)
		case systems.OutOfBounds(bird, birdH, g.cfg.Ground.Y):
			g.kill(state, components.DeathBounds)
		default:
			if passed {
				state.Fitness += g.cfg.Evolution.PipeReward
			}
		}
	}

	g.tick++
}

// observation builds the controller input for one bird against the active
// pipe: bird height and the vertical distances to both gap edges.
func observation(b *components.Bird, pipe *systems.Pipe) []float64 {
	return []float64{
		b.Y,
		math.Abs(b.Y - pipe.GapTop),
		math.Abs(b.Y - pipe.GapBot),
	}
}

// wantsJump interprets controller output. Malformed output (wrong width,
// NaN, Inf) is treated as a no-op.
func wantsJump(out []float64) bool {
	if len(out) != 1 {
		return false
	}
	v := out[0]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v > 0.5
}

// hitsAnyPipe checks the bird rectangle against every pipe on the course.
func (g *Game) hitsAnyPipe(bird systems.Rect) bool {
	width := g.course.Params().Width
	for i := range g.course.Pipes {
		if systems.HitsPipe(bird, &g.course.Pipes[i], width) {
			return true
		}
	}
	return false
}

// kill marks an agent dead and records the cause.
func (g *Game) kill(state *components.AgentState, cause components.DeathCause) {
	state.Alive = false
	state.Death = cause
	g.alive--
	g.collector.RecordDeath(cause)
}

// harvestFitness copies each agent's accumulated fitness back to its genome
// and records it for telemetry.
func (g *Game) harvestFitness(genomes map[int]*neat.Genome) {
	query := g.filter.Query()
	for query.Next() {
		_, state := query.Get()
		g.collector.RecordFitness(state.Fitness)
		if genome, ok := genomes[state.GenomeKey]; ok {
			genome.Fitness = state.Fitness
		}
	}
}

// despawnAgents removes all agent entities after a generation. Entities are
// collected first; removal during query iteration is not allowed.
func (g *Game) despawnAgents() {
	var toRemove []ecs.Entity
	query := g.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		g.agents.Remove(e)
	}
	g.controllers = make(map[int]Controller)
	g.alive = 0
}
