package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"flappyneat/ui"
)

// draw renders one frame: course, ground, birds and the HUD overlay.
func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	g.drawPipes()
	g.drawGround()
	g.drawBirds()

	g.stepsPerFrame = ui.Draw(ui.HUDData{
		Generation:   g.generation,
		Score:        g.score,
		Alive:        g.alive,
		Tick:         g.tick,
		Speed:        g.stepsPerFrame,
		MaxSpeed:     maxStepsPerFrame,
		Paused:       g.paused,
		ScreenWidth:  g.cfg.Derived.ScreenW32,
		ScreenHeight: g.cfg.Derived.ScreenH32,
	})

	rl.EndDrawing()
}

// drawPipes renders both segments of every pipe on the course.
func (g *Game) drawPipes() {
	w := float32(g.course.Params().Width)
	screenH := float32(g.cfg.Screen.Height)

	for i := range g.course.Pipes {
		pipe := &g.course.Pipes[i]
		x := float32(pipe.X)
		gapTop := float32(pipe.GapTop)
		gapBot := float32(pipe.GapBot)

		top := rl.Rectangle{X: x, Y: 0, Width: w, Height: gapTop}
		bottom := rl.Rectangle{X: x, Y: gapBot, Width: w, Height: screenH - gapBot}

		rl.DrawRectangleRec(top, rl.Lime)
		rl.DrawRectangleRec(bottom, rl.Lime)
		rl.DrawRectangleLinesEx(top, 2, rl.DarkGreen)
		rl.DrawRectangleLinesEx(bottom, 2, rl.DarkGreen)
	}
}

// drawGround renders the two looping ground segments.
func (g *Game) drawGround() {
	y := float32(g.ground.Y)
	w := float32(g.ground.SegW)
	h := float32(g.cfg.Screen.Height) - y

	rl.DrawRectangleRec(rl.Rectangle{X: float32(g.ground.X1), Y: y, Width: w, Height: h}, rl.Brown)
	rl.DrawRectangleRec(rl.Rectangle{X: float32(g.ground.X2), Y: y, Width: w, Height: h}, rl.Brown)
	rl.DrawLineEx(
		rl.Vector2{X: 0, Y: y},
		rl.Vector2{X: float32(g.cfg.Screen.Width), Y: y},
		3, rl.DarkBrown,
	)
}

// drawBirds renders every live bird as a tilted body with a wing stripe.
func (g *Game) drawBirds() {
	w := float32(g.cfg.Bird.Width)
	h := float32(g.cfg.Bird.Height)

	query := g.filter.Query()
	for query.Next() {
		bird, state := query.Get()
		if !state.Alive {
			continue
		}

		rec := rl.Rectangle{
			X:      float32(bird.X) + w/2,
			Y:      float32(bird.Y) + h/2,
			Width:  w,
			Height: h,
		}
		origin := rl.Vector2{X: w / 2, Y: h / 2}
		// Tilt is nose-up positive; raylib rotation is clockwise.
		rot := float32(-bird.Tilt)

		rl.DrawRectanglePro(rec, origin, rot, rl.Gold)
	}
}
