// Package ui renders the HUD overlay for windowed runs.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD displays for one frame.
type HUDData struct {
	Generation   int
	Score        int
	Alive        int
	Tick         int
	Speed        int
	MaxSpeed     int
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// Draw renders the HUD and the speed slider. Returns the (possibly changed)
// steps-per-frame value from the slider.
func Draw(data HUDData) int {
	// Score in the top-right corner, generation top-left.
	scoreText := fmt.Sprintf("Score: %d", data.Score)
	rl.DrawText(scoreText, data.ScreenWidth-10-rl.MeasureText(scoreText, 24), 10, 24, rl.White)

	rl.DrawText(fmt.Sprintf("Gen: %d", data.Generation), 10, 10, 24, rl.White)
	rl.DrawText(fmt.Sprintf("Alive: %d  Tick: %d", data.Alive, data.Tick), 10, 40, 16, rl.RayWhite)

	if data.Paused {
		rl.DrawText("PAUSED [space]", 10, 62, 20, rl.Yellow)
	}

	return speedSlider(data)
}

// speedSlider draws the simulation speed slider along the bottom edge.
func speedSlider(data HUDData) int {
	bounds := rl.Rectangle{
		X:      60,
		Y:      float32(data.ScreenHeight) - 28,
		Width:  float32(data.ScreenWidth) - 120,
		Height: 16,
	}
	v := gui.SliderBar(bounds, "1x", fmt.Sprintf("%dx", data.MaxSpeed),
		float32(data.Speed), 1, float32(data.MaxSpeed))

	speed := int(v + 0.5)
	if speed < 1 {
		speed = 1
	}
	if speed > data.MaxSpeed {
		speed = data.MaxSpeed
	}
	return speed
}
