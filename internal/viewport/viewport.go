// Package viewport is the raylib front end of the editor: it owns the window and the orbit
// camera, turns pointer and key input into session calls, and draws the scene, edit helpers,
// transform gizmo and overlay panels.
package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"blander/internal/camera"
	"blander/internal/debug"
	"blander/internal/editor"
	"blander/internal/graphics"
	"blander/internal/inspector"
	"blander/internal/selection"
	"blander/internal/terminal"
)

const (
	orbitSpeed = 0.008
	panSpeed   = 0.0015
	zoomStep   = 0.1
)

var background = rl.NewColor(30, 32, 36, 255)

// Options configures a Viewport. Terminal and Debug are optional.
type Options struct {
	Title       string
	Width       int32
	Height      int32
	Keymap      editor.Keymap
	GridVisible bool
	Inspector   *inspector.Inspector
	Terminal    *terminal.Terminal
	Debug       *debug.Debug
	// FontPath, if set, is loaded once the window exists and used by the console and debug overlays.
	FontPath string
}

// Viewport drives one editor session.
type Viewport struct {
	s    *editor.Session
	opts Options
	keys editor.Keymap
	grid bool

	cam     *camera.Orbit
	meshes  *meshCache
	insp    *inspector.Inspector
	toolbar []button

	drag      *editor.AxisDrag
	hoverAxis int
	fontDone  bool
}

// New returns a viewport for s. Nothing touches the window until Run.
func New(s *editor.Session, opts Options) *Viewport {
	if opts.Title == "" {
		opts.Title = "blander"
	}
	if opts.Keymap == nil {
		opts.Keymap = editor.DefaultKeymap()
	}
	if opts.Inspector == nil {
		opts.Inspector = inspector.Attach(s)
	}
	v := &Viewport{
		s:         s,
		opts:      opts,
		keys:      opts.Keymap,
		grid:      opts.GridVisible,
		cam:       camera.Default(),
		meshes:    newMeshCache(),
		insp:      opts.Inspector,
		hoverAxis: -1,
	}
	v.buildToolbar()
	return v
}

// SetKeymap replaces the key bindings.
func (v *Viewport) SetKeymap(km editor.Keymap) {
	if km != nil {
		v.keys = km
	}
}

// SetGridVisible sets whether the ground grid is drawn.
func (v *Viewport) SetGridVisible(visible bool) { v.grid = visible }

// Camera returns the orbit camera.
func (v *Viewport) Camera() *camera.Orbit { return v.cam }

// Run opens the window and loops until it is closed. frame, if set, runs first in every
// iteration on the window thread.
func (v *Viewport) Run(frame func()) {
	update := func() {
		if frame != nil {
			frame()
		}
		v.update()
	}
	win := graphics.Window{Title: v.opts.Title, Width: v.opts.Width, Height: v.opts.Height}
	graphics.Run(win, background, update, v.draw)
}

func (v *Viewport) draw() {
	rl.BeginMode3D(v.rlCamera())
	if v.grid {
		drawGrid()
	}
	v.drawEntities()
	v.drawHelpers()
	v.drawGizmo()
	rl.EndMode3D()
	v.drawPanels()
	if v.opts.Terminal != nil {
		v.opts.Terminal.Draw()
	}
	if v.opts.Debug != nil {
		v.opts.Debug.Draw()
	}
}

func (v *Viewport) rlCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(v.cam.Position()),
		Target:     vec(v.cam.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       v.cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func (v *Viewport) pointerRay() editor.Ray {
	p := rl.GetMousePosition()
	return v.cam.Ray(p.X, p.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (v *Viewport) loadFont() {
	v.fontDone = true
	if v.opts.FontPath == "" {
		return
	}
	font := rl.LoadFont(v.opts.FontPath)
	if font.Texture.ID == 0 {
		editor.Logger().Warn("font not loaded", "path", v.opts.FontPath)
		return
	}
	if v.opts.Terminal != nil {
		v.opts.Terminal.SetFont(font)
	}
	if v.opts.Debug != nil {
		v.opts.Debug.SetFont(font)
	}
}

func (v *Viewport) update() {
	if !v.fontDone {
		v.loadFont()
	}
	v.s.Frame()
	if v.opts.Terminal != nil && v.opts.Terminal.Update() {
		return
	}
	ray := v.pointerRay()

	if v.drag != nil {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			if t, ok := v.drag.Update(ray); ok {
				v.s.Drag(t)
			}
			return
		}
		v.drag = nil
		v.s.EndDrag()
	}

	v.hoverAxis = v.pickAxis(ray)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !v.clickPanel(rl.GetMousePosition()) {
		v.pointerDown(ray)
	}
	if v.s.CameraInteractionEnabled() {
		v.updateCamera()
	}
	v.updateKeys()
}

// pointerDown starts a gizmo drag when a handle is hit, otherwise it picks.
func (v *Viewport) pointerDown(ray editor.Ray) {
	if v.hoverAxis >= 0 {
		if d, ok := editor.NewAxisDrag(v.s.Tool(), v.hoverAxis, ray); ok && v.s.BeginDrag() {
			v.drag = d
			return
		}
	}
	v.s.PointerDown(ray, modifiers())
}

func (v *Viewport) updateCamera() {
	delta := rl.GetMouseDelta()
	switch {
	case rl.IsMouseButtonDown(rl.MouseButtonRight):
		v.cam.Rotate(-delta.X*orbitSpeed, delta.Y*orbitSpeed)
	case rl.IsMouseButtonDown(rl.MouseButtonMiddle):
		v.cam.Pan(-delta.X*panSpeed, delta.Y*panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.Zoom(1 - wheel*zoomStep)
	}
}

func (v *Viewport) updateKeys() {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if name := keyName(k); name != "" {
			v.s.HandleKey(v.keys, editor.Chord{Key: name, Shift: shift})
		}
	}
}

func modifiers() selection.Modifiers {
	return selection.Modifiers{
		Shift: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Ctrl:  rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Meta:  rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper),
	}
}

// keyName maps a raylib key code to the chord key names used by keymaps.
func keyName(k int32) string {
	switch {
	case k >= rl.KeyA && k <= rl.KeyZ:
		return string(rune('a' + k - rl.KeyA))
	case k >= rl.KeyZero && k <= rl.KeyNine:
		return string(rune('0' + k - rl.KeyZero))
	}
	switch k {
	case rl.KeyTab:
		return "tab"
	case rl.KeyEscape:
		return "escape"
	case rl.KeyDelete:
		return "delete"
	case rl.KeyBackspace:
		return "backspace"
	case rl.KeySpace:
		return "space"
	case rl.KeyEnter:
		return "enter"
	}
	return ""
}
