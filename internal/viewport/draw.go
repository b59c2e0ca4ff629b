package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/editor"
	"blander/internal/selection"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120

	// gizmo sizes are fractions of the camera distance so the tool keeps its screen size
	gizmoLength = 0.12
	gizmoHandle = 0.012
	discHalf    = 0.004
	discSides   = 20
)

var (
	axisColors   = [3]rl.Color{rl.NewColor(235, 80, 80, 255), rl.NewColor(110, 210, 90, 255), rl.NewColor(80, 130, 245, 255)}
	hoverColor   = rl.NewColor(255, 230, 90, 255)
	edgeColor    = rl.NewColor(20, 20, 24, 255)
	ringRotation = [3]struct {
		axis  rl.Vector3
		angle float32
	}{
		{rl.NewVector3(0, 1, 0), 90},
		{rl.NewVector3(1, 0, 0), 90},
		{rl.NewVector3(0, 0, 1), 0},
	}
)

// drawGrid draws a grid on the XZ plane with major/minor lines and the three axis lines.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		if i == 0 {
			continue
		}
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, 0, -gridExtent), rl.NewVector3(f, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, f), rl.NewVector3(gridExtent, 0, f), c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisColors[0])
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisColors[2])
}

func (v *Viewport) drawEntities() {
	target := v.s.EditTarget()
	for _, e := range v.s.Scene().Entities() {
		m := v.meshes.get(e)
		if m == nil {
			continue
		}
		m.draw()
		if e == target {
			m.drawEdges(edgeColor)
		}
	}
}

func (v *Viewport) drawHelpers() {
	for _, h := range v.s.Helpers() {
		c := color(h.Color, 255)
		if h.Key.Mode == selection.Vertex {
			rl.DrawSphere(vec(h.Position), h.Radius, c)
			continue
		}
		n := h.Orientation.Rotate(mgl32.Vec3{0, 0, 1}).Mul(discHalf * v.cam.Distance)
		rl.DrawCylinderEx(vec(h.Position.Sub(n)), vec(h.Position.Add(n)), h.Radius, h.Radius, discSides, c)
	}
}

// gizmoHandles returns the world positions of the three axis handles and the handle radius.
func (v *Viewport) gizmoHandles(t editor.Tool) ([3]mgl32.Vec3, float32) {
	length := gizmoLength * v.cam.Distance
	var ends [3]mgl32.Vec3
	for i, axis := range [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		ends[i] = t.Transform.Position.Add(axis.Mul(length))
	}
	return ends, gizmoHandle * v.cam.Distance
}

// pickAxis returns the gizmo axis whose handle r hits first, or -1.
func (v *Viewport) pickAxis(r editor.Ray) int {
	t := v.s.Tool()
	if t.Kind == editor.ToolNone {
		return -1
	}
	ends, radius := v.gizmoHandles(t)
	best, bestDist := -1, float32(0)
	for i, end := range ends {
		if d, ok := r.Sphere(end, radius*1.6); ok && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	return best
}

// drawGizmo draws the transform tool over the scene.
func (v *Viewport) drawGizmo() {
	t := v.s.Tool()
	if t.Kind == editor.ToolNone {
		return
	}
	ends, radius := v.gizmoHandles(t)
	origin := vec(t.Transform.Position)
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()
	for i, end := range ends {
		c := axisColors[i]
		if i == v.activeAxis() {
			c = hoverColor
		}
		rl.DrawLine3D(origin, vec(end), c)
		switch t.Mode {
		case editor.Translate:
			rl.DrawSphere(vec(end), radius, c)
		case editor.Scale:
			size := radius * 1.8
			rl.DrawCube(vec(end), size, size, size, c)
		case editor.Rotate:
			rl.DrawCircle3D(origin, gizmoLength*v.cam.Distance, ringRotation[i].axis, ringRotation[i].angle, c)
			rl.DrawSphere(vec(end), radius, c)
		}
	}
	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

func (v *Viewport) activeAxis() int {
	if v.drag != nil {
		return v.drag.Axis
	}
	return v.hoverAxis
}
