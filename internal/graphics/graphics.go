package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the editor window. Zero Width or Height opens a 1280×800 window.
type Window struct {
	Title  string
	Width  int32
	Height int32
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// (input), then clears the screen to bg and calls draw. ESC is left to the editor; close via
// the window button.
func Run(w Window, bg rl.Color, update, draw func()) {
	if w.Width <= 0 || w.Height <= 0 {
		w.Width, w.Height = 1280, 800
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
}
