package systems

import (
	"testing"

	"flappyneat/components"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{10, 10, 20, 20}, true},
		{"contained", Rect{15, 15, 5, 5}, true},
		{"overlap corner", Rect{25, 25, 20, 20}, true},
		{"touching right edge", Rect{30, 10, 10, 10}, false},
		{"touching bottom edge", Rect{10, 30, 10, 10}, false},
		{"fully left", Rect{-20, 10, 10, 10}, false},
		{"fully above", Rect{10, -20, 10, 10}, false},
		{"far away", Rect{500, 500, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection must be symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestHitsPipe(t *testing.T) {
	pipe := &Pipe{X: 100, GapTop: 300, GapBot: 500}
	const pipeW = 80

	tests := []struct {
		name string
		bird Rect
		want bool
	}{
		{"inside gap", Rect{X: 120, Y: 380, W: 34, H: 24}, false},
		{"hugging gap top", Rect{X: 120, Y: 301, W: 34, H: 24}, false},
		{"hugging gap bottom", Rect{X: 120, Y: 475, W: 34, H: 24}, false},
		{"clipping top segment", Rect{X: 120, Y: 290, W: 34, H: 24}, true},
		{"clipping bottom segment", Rect{X: 120, Y: 490, W: 34, H: 24}, true},
		{"before pipe, level with segment", Rect{X: 10, Y: 100, W: 34, H: 24}, false},
		{"after pipe, level with segment", Rect{X: 300, Y: 100, W: 34, H: 24}, false},
		{"leading edge clip", Rect{X: 70, Y: 100, W: 34, H: 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitsPipe(tt.bird, pipe, pipeW); got != tt.want {
				t.Errorf("HitsPipe(%+v) = %v, want %v", tt.bird, got, tt.want)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	const (
		birdH   = 24
		groundY = 730
	)

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"mid screen", 350, false},
		{"at top", 0, false},
		{"above top", -1, true},
		{"just above ground", groundY - birdH - 1, false},
		{"touching ground", groundY - birdH, true},
		{"below ground", 900, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &components.Bird{Y: tt.y}
			if got := OutOfBounds(b, birdH, groundY); got != tt.want {
				t.Errorf("OutOfBounds(y=%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}
