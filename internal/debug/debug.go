package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// Text is rebuilt every updateInterval frames.
	updateInterval = 30
)

// Debug draws the runtime overlay in the top-right corner: FPS, heap size and scene statistics
// supplied by Stats. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Stats returns extra lines such as entity and triangle counts. Shown with ShowFPS.
	Stats func() []string

	font       rl.Font
	frameCount uint32
	lines      []string
	mem        runtime.MemStats
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

func (d *Debug) refresh() {
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
		if d.Stats != nil {
			d.lines = append(d.lines, d.Stats()...)
		}
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.mem)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.mem.Alloc)/(1024*1024)))
	}
}

// Draw renders the enabled overlays. Call last in the 2D pass.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		d.lines = d.lines[:0]
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || len(d.lines) == 0 {
		d.refresh()
	}
	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	for _, text := range d.lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}
