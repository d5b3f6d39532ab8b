// Package telemetry aggregates per-generation evaluation results and writes
// them to structured logs and CSV files.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds the aggregated outcome of one generation.
type GenerationStats struct {
	Generation   int     `csv:"generation"`
	Ticks        int     `csv:"ticks"`
	Score        int     `csv:"score"`
	Agents       int     `csv:"agents"`
	Survivors    int     `csv:"survivors"`
	DeathsPipe   int     `csv:"deaths_pipe"`
	DeathsBounds int     `csv:"deaths_bounds"`
	BestFitness  float64 `csv:"best_fitness"`
	MeanFitness  float64 `csv:"mean_fitness"`
	StdFitness   float64 `csv:"std_fitness"`
	Species      int     `csv:"species"`
}

// ComputeFitnessStats calculates best, mean and standard deviation of the
// fitness values of a generation. Returns zeros for an empty slice.
func ComputeFitnessStats(values []float64) (best, mean, std float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	best = values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return best, mean, std
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("ticks", s.Ticks),
		slog.Int("score", s.Score),
		slog.Int("agents", s.Agents),
		slog.Int("survivors", s.Survivors),
		slog.Int("deaths_pipe", s.DeathsPipe),
		slog.Int("deaths_bounds", s.DeathsBounds),
		slog.Float64("best_fitness", s.BestFitness),
		slog.Float64("mean_fitness", s.MeanFitness),
		slog.Float64("std_fitness", s.StdFitness),
		slog.Int("species", s.Species),
	)
}

// Log emits the stats as a structured slog record.
func (s GenerationStats) Log() {
	slog.Info("generation", "stats", s)
}
