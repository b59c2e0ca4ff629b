package viewport

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"blander/internal/editor"
	"blander/internal/inspector"
	"blander/internal/primitives"
	"blander/internal/selection"
)

const (
	panelWidth   = 240
	panelPadding = 10
	toolbarH     = 34
	buttonH      = 24
	buttonGap    = 6
	textSize     = 16
	rowHeight    = textSize + 6
)

var (
	panelBg       = rl.NewColor(22, 24, 28, 225)
	buttonBg      = rl.NewColor(52, 56, 64, 255)
	buttonActive  = rl.NewColor(75, 93, 255, 255)
	buttonOff     = rl.NewColor(38, 40, 44, 255)
	textOff       = rl.NewColor(110, 110, 110, 255)
	itemHighlight = rl.NewColor(75, 93, 255, 120)
)

// button is one toolbar entry. enabled and active read the inspector model.
type button struct {
	label   string
	enabled func(m inspector.Model) bool
	active  func(m inspector.Model) bool
	run     func()
}

func always(inspector.Model) bool { return true }

func (v *Viewport) buildToolbar() {
	s := v.s
	add := func(k primitives.Kind) button {
		return button{label: "+" + k.Label(), enabled: always, run: func() {
			if _, err := s.AddPrimitive(k); err != nil {
				editor.Logger().Warn("add primitive failed", "kind", k, "err", err)
			}
		}}
	}
	mode := func(label string, m editor.TransformMode) button {
		return button{
			label:   label,
			enabled: always,
			active:  func(md inspector.Model) bool { return md.TransformMode == m.String() },
			run:     func() { s.SetTransformMode(m) },
		}
	}
	component := func(label string, m selection.Mode) button {
		return button{
			label:   label,
			enabled: func(md inspector.Model) bool { return md.ComponentsEnabled },
			active:  func(md inspector.Model) bool { return md.EditActive && md.ComponentMode == m.String() },
			run:     func() { s.SetComponentMode(m) },
		}
	}
	v.toolbar = []button{
		add(primitives.Cube), add(primitives.Sphere), add(primitives.Cylinder), add(primitives.Plane),
		{label: "Delete", enabled: func(m inspector.Model) bool { return m.DeleteEnabled }, run: func() { s.DeleteSelected() }},
		{
			label:   "Edit",
			enabled: func(m inspector.Model) bool { return m.EditEnabled },
			active:  func(m inspector.Model) bool { return m.EditActive },
			run:     func() { s.ToggleEditMode() },
		},
		component("Vertex", selection.Vertex),
		component("Face", selection.Face),
		{label: "Subdivide", enabled: func(m inspector.Model) bool { return m.SubdivideEnabled }, run: func() { s.Subdivide() }},
		mode("Move", editor.Translate),
		mode("Rotate", editor.Rotate),
		mode("Scale", editor.Scale),
		{label: "Undo", enabled: func(m inspector.Model) bool { return m.CanUndo }, run: func() { s.Undo() }},
		{label: "Redo", enabled: func(m inspector.Model) bool { return m.CanRedo }, run: func() { s.Redo() }},
	}
}

// toolbarRects lays the toolbar out left to right along the top edge.
func (v *Viewport) toolbarRects() []rl.Rectangle {
	rects := make([]rl.Rectangle, len(v.toolbar))
	x := float32(panelPadding)
	for i, b := range v.toolbar {
		w := float32(rl.MeasureText(b.label, textSize) + 2*panelPadding)
		rects[i] = rl.NewRectangle(x, (toolbarH-buttonH)/2, w, buttonH)
		x += w + buttonGap
	}
	return rects
}

func outlinerRect(i int) rl.Rectangle {
	y := float32(toolbarH + panelPadding + rowHeight + i*rowHeight)
	return rl.NewRectangle(panelPadding, y, panelWidth-2*panelPadding, rowHeight)
}

// mouseInPanel reports whether p lies over the toolbar or a side panel.
func mouseInPanel(p rl.Vector2) bool {
	w := float32(rl.GetScreenWidth())
	return p.Y < toolbarH || p.X < panelWidth || p.X > w-panelWidth
}

// clickPanel runs the toolbar button or activates the outliner row under p. It reports whether
// the click landed on the overlay.
func (v *Viewport) clickPanel(p rl.Vector2) bool {
	if !mouseInPanel(p) {
		return false
	}
	m := v.insp.Model()
	for i, r := range v.toolbarRects() {
		if rl.CheckCollisionPointRec(p, r) {
			if b := v.toolbar[i]; b.enabled(m) {
				b.run()
			}
			return true
		}
	}
	for i, item := range v.insp.Items() {
		if rl.CheckCollisionPointRec(p, outlinerRect(i)) {
			v.insp.Activate(item.ID)
			return true
		}
	}
	return true
}

func (v *Viewport) drawPanels() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	m := v.insp.Model()

	rl.DrawRectangle(0, 0, screenW, toolbarH, panelBg)
	for i, r := range v.toolbarRects() {
		b := v.toolbar[i]
		bg, fg := buttonBg, rl.RayWhite
		switch {
		case !b.enabled(m):
			bg, fg = buttonOff, textOff
		case b.active != nil && b.active(m):
			bg = buttonActive
		}
		rl.DrawRectangleRec(r, bg)
		rl.DrawText(b.label, int32(r.X)+panelPadding, int32(r.Y)+(buttonH-textSize)/2, textSize, fg)
	}

	// scene list
	rl.DrawRectangle(0, toolbarH, panelWidth, screenH-toolbarH, panelBg)
	rl.DrawText("Scene", panelPadding, toolbarH+panelPadding, textSize, rl.Gray)
	for i, item := range v.insp.Items() {
		r := outlinerRect(i)
		if item.Active {
			rl.DrawRectangleRec(r, itemHighlight)
		}
		rl.DrawText(fmt.Sprintf("%s  (%s)", item.Name, item.Kind), int32(r.X)+4, int32(r.Y)+3, textSize, rl.RayWhite)
	}

	// inspector
	x := screenW - panelWidth
	rl.DrawRectangle(x, toolbarH, panelWidth, screenH-toolbarH, panelBg)
	y := int32(toolbarH + panelPadding)
	rl.DrawText("Inspector", x+panelPadding, y, textSize, rl.Gray)
	for _, line := range m.Lines() {
		y += rowHeight
		rl.DrawText(line, x+panelPadding, y, textSize, rl.RayWhite)
	}
}
