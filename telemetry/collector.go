package telemetry

import "flappyneat/components"

// Collector accumulates events while a generation is being evaluated and
// produces a GenerationStats snapshot at the end. It is reset per generation.
type Collector struct {
	fitnesses    []float64
	agents       int
	deathsPipe   int
	deathsBounds int
	ticks        int
	score        int
	survivors    int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Reset clears all counters for the next generation.
func (c *Collector) Reset() {
	c.fitnesses = c.fitnesses[:0]
	c.agents = 0
	c.deathsPipe = 0
	c.deathsBounds = 0
	c.ticks = 0
	c.score = 0
	c.survivors = 0
}

// RecordAgent counts an agent entering the generation.
func (c *Collector) RecordAgent() {
	c.agents++
}

// RecordDeath counts an elimination by cause.
func (c *Collector) RecordDeath(cause components.DeathCause) {
	switch cause {
	case components.DeathPipe:
		c.deathsPipe++
	case components.DeathBounds:
		c.deathsBounds++
	}
}

// RecordFitness records an agent's final fitness for the generation.
func (c *Collector) RecordFitness(f float64) {
	c.fitnesses = append(c.fitnesses, f)
}

// SetOutcome records the terminal state of the generation loop.
func (c *Collector) SetOutcome(ticks, score, survivors int) {
	c.ticks = ticks
	c.score = score
	c.survivors = survivors
}

// Snapshot produces the stats record for the finished generation.
func (c *Collector) Snapshot(generation, species int) GenerationStats {
	best, mean, std := ComputeFitnessStats(c.fitnesses)
	return GenerationStats{
		Generation:   generation,
		Ticks:        c.ticks,
		Score:        c.score,
		Agents:       c.agents,
		Survivors:    c.survivors,
		DeathsPipe:   c.deathsPipe,
		DeathsBounds: c.deathsBounds,
		BestFitness:  best,
		MeanFitness:  mean,
		StdFitness:   std,
		Species:      species,
	}
}
