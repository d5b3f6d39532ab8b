package game

import (
	"fmt"
	"log/slog"

	"github.com/baldhumanity/neat-go/neat"
)

// RunEvolution loads the NEAT configuration, creates a population and runs
// generations until a winner appears, the generation cap is reached, or the
// window is closed.
func (g *Game) RunEvolution() error {
	neatCfg, err := neat.LoadConfig(g.cfg.Evolution.NeatConfig)
	if err != nil {
		return fmt.Errorf("loading NEAT config %q: %w", g.cfg.Evolution.NeatConfig, err)
	}
	if n := neatCfg.Genome.NumInputs; n != observationSize {
		return fmt.Errorf("NEAT config declares %d inputs, the arena produces %d", n, observationSize)
	}
	if n := neatCfg.Genome.NumOutputs; n != 1 {
		return fmt.Errorf("NEAT config declares %d outputs, the arena reads 1", n)
	}

	pop, err := neat.NewPopulation(neatCfg)
	if err != nil {
		return fmt.Errorf("creating population: %w", err)
	}

	slog.Info("evolution started",
		"pop_size", neatCfg.Neat.PopSize,
		"max_generations", g.cfg.Evolution.MaxGenerations,
		"fitness_threshold", neatCfg.Neat.FitnessThreshold,
	)

	for gen := 0; gen < g.cfg.Evolution.MaxGenerations; gen++ {
		winner, err := pop.RunGeneration(g.evalGenomes)
		if err != nil {
			return fmt.Errorf("generation %d: %w", pop.Generation, err)
		}

		stats := g.collector.Snapshot(pop.Generation, len(pop.SpeciesSet.Species))
		if g.cfg.Telemetry.LogGenerations {
			stats.Log()
		}
		if err := g.output.WriteGeneration(stats); err != nil {
			slog.Warn("failed to write generation stats", "error", err)
		}

		if winner != nil {
			slog.Info("fitness threshold met",
				"genome", winner.Key,
				"fitness", winner.Fitness,
				"generation", pop.Generation,
			)
			break
		}
		if g.stopRequested {
			slog.Info("run aborted", "generation", pop.Generation)
			break
		}
	}

	if best := pop.BestGenome; best != nil {
		slog.Info("evolution finished",
			"best_genome", best.Key,
			"best_fitness", best.Fitness,
			"generations", pop.Generation,
		)
	}
	return g.output.Close()
}
