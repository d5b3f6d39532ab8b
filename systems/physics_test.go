package systems

import (
	"testing"

	"flappyneat/components"
)

func testBirdParams() BirdParams {
	return BirdParams{
		JumpImpulse: -10.5,
		FallAccel:   1.5,
		MaxFallStep: 16,
		RiseBonus:   2,
		MaxTilt:     25,
		TiltRate:    20,
	}
}

func TestDisplacementMonotonicUnderGravity(t *testing.T) {
	p := testBirdParams()
	b := &components.Bird{Y: 350}

	prev := -1e9
	reachedTerminal := false
	for tick := 0; tick < 30; tick++ {
		d := Displacement(b, p)
		if d < prev {
			t.Fatalf("tick %d: displacement decreased %v -> %v without a jump", tick, prev, d)
		}
		if d == p.MaxFallStep {
			reachedTerminal = true
		}
		if d > p.MaxFallStep {
			t.Fatalf("tick %d: displacement %v exceeds terminal %v", tick, d, p.MaxFallStep)
		}
		prev = d
		BirdStep(b, p)
	}
	if !reachedTerminal {
		t.Error("bird never reached terminal fall step")
	}
}

func TestBirdStepFalls(t *testing.T) {
	p := testBirdParams()
	b := &components.Bird{Y: 350}

	prevY := b.Y
	for tick := 0; tick < 10; tick++ {
		BirdStep(b, p)
		if b.Y <= prevY {
			t.Fatalf("tick %d: bird rose from %v to %v with no jump", tick, prevY, b.Y)
		}
		prevY = b.Y
	}
}

func TestJumpResetsArc(t *testing.T) {
	p := testBirdParams()
	b := &components.Bird{Y: 350}

	// Let it fall, then jump.
	for i := 0; i < 5; i++ {
		BirdStep(b, p)
	}
	Jump(b, p)

	if b.Vel != p.JumpImpulse {
		t.Errorf("Vel = %v after jump, want %v", b.Vel, p.JumpImpulse)
	}
	if b.Ticks != 0 {
		t.Errorf("Ticks = %d after jump, want 0", b.Ticks)
	}
	if b.JumpY != b.Y {
		t.Errorf("JumpY = %v, want current y %v", b.JumpY, b.Y)
	}

	// First tick after a jump must move the bird up.
	yBefore := b.Y
	BirdStep(b, p)
	if b.Y >= yBefore {
		t.Errorf("bird did not rise after jump: %v -> %v", yBefore, b.Y)
	}
	if b.Tilt != p.MaxTilt {
		t.Errorf("Tilt = %v while rising, want %v", b.Tilt, p.MaxTilt)
	}
}

func TestTiltDivesWhenFalling(t *testing.T) {
	p := testBirdParams()
	b := &components.Bird{Y: 350}

	for i := 0; i < 30; i++ {
		BirdStep(b, p)
	}
	if b.Tilt > -80 {
		t.Errorf("Tilt = %v after a long fall, want a dive below -80", b.Tilt)
	}
	if b.Tilt < -90-p.TiltRate {
		t.Errorf("Tilt = %v, overshot the -90 dive limit", b.Tilt)
	}
}

func TestGroundLoops(t *testing.T) {
	g := NewGround(730, 500)

	for i := 0; i < 1000; i++ {
		g.Step(5)
		if g.X1+g.SegW < 0 && g.X2+g.SegW < 0 {
			t.Fatalf("tick %d: both ground segments off screen (x1=%v x2=%v)", i, g.X1, g.X2)
		}
	}
	if g.Y != 730 {
		t.Errorf("ground y changed to %v", g.Y)
	}
}
