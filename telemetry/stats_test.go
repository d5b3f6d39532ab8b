package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flappyneat/components"
)

func TestComputeFitnessStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantBest float64
		wantMean float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{3.5}, 3.5, 3.5},
		{"spread", []float64{1, 2, 3, 4, 5}, 5, 3},
		{"best not last", []float64{9, 1, 2}, 9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, mean, std := ComputeFitnessStats(tt.values)
			if best != tt.wantBest {
				t.Errorf("best = %v, want %v", best, tt.wantBest)
			}
			if math.Abs(mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if len(tt.values) <= 1 && std != 0 {
				t.Errorf("std = %v for %d values, want 0", std, len(tt.values))
			}
		})
	}
}

func TestComputeFitnessStatsStdDev(t *testing.T) {
	// Sample standard deviation of {2, 4, 4, 4, 5, 5, 7, 9} is ~2.138.
	_, _, std := ComputeFitnessStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(std-2.138) > 0.01 {
		t.Errorf("std = %v, want ~2.138", std)
	}
}

func TestCollectorSnapshot(t *testing.T) {
	c := NewCollector()

	for i := 0; i < 4; i++ {
		c.RecordAgent()
	}
	c.RecordDeath(components.DeathPipe)
	c.RecordDeath(components.DeathPipe)
	c.RecordDeath(components.DeathBounds)
	c.RecordFitness(1.0)
	c.RecordFitness(2.0)
	c.RecordFitness(3.0)
	c.RecordFitness(10.0)
	c.SetOutcome(500, 2, 1)

	s := c.Snapshot(7, 3)

	if s.Generation != 7 || s.Species != 3 {
		t.Errorf("generation/species = %d/%d, want 7/3", s.Generation, s.Species)
	}
	if s.Agents != 4 || s.Survivors != 1 {
		t.Errorf("agents/survivors = %d/%d, want 4/1", s.Agents, s.Survivors)
	}
	if s.DeathsPipe != 2 || s.DeathsBounds != 1 {
		t.Errorf("deaths = pipe:%d bounds:%d, want pipe:2 bounds:1", s.DeathsPipe, s.DeathsBounds)
	}
	if s.BestFitness != 10 {
		t.Errorf("best fitness = %v, want 10", s.BestFitness)
	}
	if s.Ticks != 500 || s.Score != 2 {
		t.Errorf("ticks/score = %d/%d, want 500/2", s.Ticks, s.Score)
	}

	// Reset must clear everything.
	c.Reset()
	empty := c.Snapshot(8, 0)
	if empty.Agents != 0 || empty.BestFitness != 0 || empty.DeathsPipe != 0 {
		t.Errorf("snapshot after reset not empty: %+v", empty)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") failed: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil receiver calls must be no-ops.
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Errorf("nil WriteGeneration returned %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	if err := om.WriteGeneration(GenerationStats{Generation: 1, Score: 3}); err != nil {
		t.Fatalf("WriteGeneration failed: %v", err)
	}
	if err := om.WriteGeneration(GenerationStats{Generation: 2, Score: 5}); err != nil {
		t.Fatalf("WriteGeneration failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "generation") {
		t.Errorf("missing header: %q", lines[0])
	}
	if strings.Contains(lines[2], "generation") {
		t.Errorf("header repeated on row: %q", lines[2])
	}
}
