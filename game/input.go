package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input in windowed mode.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerFrame > 1 {
		g.stepsPerFrame--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerFrame < maxStepsPerFrame {
		g.stepsPerFrame++
	}
}

// frame runs one windowed-mode frame: input, up to stepsPerFrame simulation
// ticks, and a draw call.
func (g *Game) frame() {
	if rl.WindowShouldClose() {
		g.stopRequested = true
		return
	}

	g.handleInput()

	if !g.paused {
		for i := 0; i < g.stepsPerFrame && g.alive > 0 &&
			g.tick < g.cfg.Evolution.MaxTicks && g.score < g.cfg.Evolution.MaxScore; i++ {
			g.step()
		}
	}

	g.draw()
}
