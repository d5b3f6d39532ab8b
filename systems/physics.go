// Package systems contains the per-tick update functions for the arena:
// bird kinematics, pipe course scrolling, and collision checks. Everything
// here is pure state-in, state-out so the evaluation loop stays testable.
package systems

import (
	"flappyneat/components"
	"flappyneat/config"
)

// BirdParams holds the kinematic constants for bird updates.
type BirdParams struct {
	JumpImpulse float64
	FallAccel   float64
	MaxFallStep float64
	RiseBonus   float64
	MaxTilt     float64
	TiltRate    float64
}

// BirdParamsFromConfig extracts the kinematic constants from the arena config.
func BirdParamsFromConfig(cfg *config.Config) BirdParams {
	return BirdParams{
		JumpImpulse: cfg.Bird.JumpImpulse,
		FallAccel:   cfg.Bird.FallAccel,
		MaxFallStep: cfg.Bird.MaxFallStep,
		RiseBonus:   cfg.Bird.RiseBonus,
		MaxTilt:     cfg.Bird.MaxTilt,
		TiltRate:    cfg.Bird.TiltRate,
	}
}

// Jump applies the fixed upward impulse and restarts the ballistic clock.
func Jump(b *components.Bird, p BirdParams) {
	b.Vel = p.JumpImpulse
	b.Ticks = 0
	b.JumpY = b.Y
}

// Displacement returns the vertical displacement the bird would cover on its
// next tick: the ballistic arc v*t + a*t^2 since the last jump, clamped to
// the terminal fall step, with a small lift bonus while still rising.
func Displacement(b *components.Bird, p BirdParams) float64 {
	t := float64(b.Ticks + 1)
	d := b.Vel*t + p.FallAccel*t*t
	if d >= p.MaxFallStep {
		d = p.MaxFallStep
	}
	if d < 0 {
		d -= p.RiseBonus
	}
	return d
}

// BirdStep advances the bird one tick under gravity and updates its tilt.
func BirdStep(b *components.Bird, p BirdParams) {
	d := Displacement(b, p)
	b.Ticks++
	b.Y += d

	// Nose up while rising or shortly after the jump apex, otherwise
	// rotate toward a vertical dive.
	if d < 0 || b.Y < b.JumpY+50 {
		if b.Tilt < p.MaxTilt {
			b.Tilt = p.MaxTilt
		}
	} else if b.Tilt > -90 {
		b.Tilt -= p.TiltRate
	}
}

// Ground is the scrolling floor strip. Collision uses Y only; the two
// segments exist so the windowed renderer can loop the strip seamlessly.
type Ground struct {
	Y    float64
	X1   float64
	X2   float64
	SegW float64
}

// NewGround creates a ground strip spanning the screen width.
func NewGround(y, screenW float64) *Ground {
	return &Ground{Y: y, X1: 0, X2: screenW, SegW: screenW}
}

// Step scrolls both segments left, looping each behind the other.
func (g *Ground) Step(speed float64) {
	g.X1 -= speed
	g.X2 -= speed
	if g.X1+g.SegW < 0 {
		g.X1 = g.X2 + g.SegW
	}
	if g.X2+g.SegW < 0 {
		g.X2 = g.X1 + g.SegW
	}
}
