package editor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/scene"
	"blander/internal/selection"
)

// Helper is a pickable marker for one vertex or face of the edited entity. Positions are world
// space. Face helpers are discs whose local +Z is rotated onto the face normal by Orientation.
type Helper struct {
	Key         selection.Key
	Position    mgl32.Vec3
	Normal      mgl32.Vec3
	Orientation mgl32.Quat
	Radius      float32
	Color       uint32
	Selected    bool
}

type editState struct {
	entity  *scene.Entity
	mode    selection.Mode
	helpers []Helper
	keys    selection.Set
	pivot   scene.Transform
	drag    *pivotDrag
}

// pivotDrag records the pivot and the affected vertices at drag start.
type pivotDrag struct {
	start      mgl32.Mat4
	vertices   []int
	startWorld []mgl32.Vec3
}

// ToggleEditMode enters edit mode on the selection, or leaves it when already editing it.
// It reports false when the selection has no editable geometry.
func (s *Session) ToggleEditMode() bool {
	if !s.selected.Editable() {
		return false
	}
	if s.edit != nil && s.edit.entity == s.selected {
		s.ExitEditMode()
	} else {
		s.EnterEditMode(s.selected)
	}
	return true
}

// EnterEditMode starts component editing on e with one helper per vertex or face.
func (s *Session) EnterEditMode(e *scene.Entity) {
	if !e.Editable() {
		return
	}
	s.ExitEditMode()
	s.edit = &editState{entity: e, mode: s.componentMode}
	s.buildHelpers()
	Logger().Debug("edit mode entered", "id", e.ID, "mode", s.componentMode.String(), "helpers", len(s.edit.helpers))
	s.notify()
}

// ExitEditMode tears down helpers and the component selection. The transform tool falls back
// to the selected entity.
func (s *Session) ExitEditMode() {
	if s.edit == nil {
		return
	}
	id := s.edit.entity.ID
	if s.gesture.tool == ToolPivot {
		s.gesture = gesture{}
	}
	s.edit = nil
	Logger().Debug("edit mode exited", "id", id)
	s.notify()
}

// SetComponentMode switches between vertex and face editing. The component selection is cleared
// and helpers are regenerated. It reports false outside edit mode.
func (s *Session) SetComponentMode(m selection.Mode) bool {
	if s.edit == nil {
		return false
	}
	s.componentMode = m
	if s.edit.mode == m {
		return true
	}
	s.edit.mode = m
	s.edit.keys.Clear()
	s.buildHelpers()
	s.notify()
	return true
}

// ClearComponentSelection deselects every component. It reports false when nothing was selected.
func (s *Session) ClearComponentSelection() bool {
	if s.edit == nil || s.edit.keys.Len() == 0 {
		return false
	}
	s.edit.keys.Clear()
	s.updateHelperSelection()
	s.notify()
	return true
}

// ClickHelper applies a click on helper i with the given modifiers.
func (s *Session) ClickHelper(i int, mods selection.Modifiers) bool {
	if s.edit == nil || i < 0 || i >= len(s.edit.helpers) {
		return false
	}
	s.edit.keys.Click(s.edit.helpers[i].Key, mods)
	s.updateHelperSelection()
	s.notify()
	return true
}

// SelectedComponents returns the selected component keys in selection order.
func (s *Session) SelectedComponents() []selection.Key {
	if s.edit == nil {
		return nil
	}
	return s.edit.keys.Keys()
}

// Helpers returns a copy of the current helpers.
func (s *Session) Helpers() []Helper {
	if s.edit == nil {
		return nil
	}
	return append([]Helper(nil), s.edit.helpers...)
}

// Pivot returns the synthesized pivot transform and whether it is active.
func (s *Session) Pivot() (scene.Transform, bool) {
	if s.edit == nil || s.edit.keys.Len() == 0 {
		return scene.Transform{}, false
	}
	return s.edit.pivot, true
}

// Frame refreshes helper positions from the live geometry and transform. Call once per frame.
func (s *Session) Frame() {
	s.refreshHelpers()
}

func (s *Session) buildHelpers() {
	ed := s.edit
	g := ed.entity.Geometry
	ed.helpers = ed.helpers[:0]
	if ed.mode == selection.Face {
		for t := 0; t < g.TriangleCount(); t++ {
			ed.helpers = append(ed.helpers, Helper{Key: selection.FaceKey(g.Triangle(t)), Radius: s.opts.FaceHelperRadius})
		}
	} else {
		for i := 0; i < g.VertexCount(); i++ {
			ed.helpers = append(ed.helpers, Helper{Key: selection.VertexKey(i), Radius: s.opts.VertexHelperRadius})
		}
	}
	s.refreshHelpers()
}

func (s *Session) refreshHelpers() {
	ed := s.edit
	if ed == nil {
		return
	}
	e := ed.entity
	m := e.WorldMatrix()
	world := func(i int) mgl32.Vec3 {
		return mgl32.TransformCoordinate(e.Geometry.Vertex(i), m)
	}
	for i := range ed.helpers {
		h := &ed.helpers[i]
		if h.Key.Mode == selection.Vertex {
			h.Position = world(h.Key.Verts[0])
			h.Orientation = mgl32.QuatIdent()
			continue
		}
		a, b, c := world(h.Key.Verts[0]), world(h.Key.Verts[1]), world(h.Key.Verts[2])
		h.Position = a.Add(b).Add(c).Mul(1.0 / 3)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		h.Normal = n
		h.Orientation = faceOrientation(n)
	}
	s.updateHelperSelection()
}

func (s *Session) updateHelperSelection() {
	ed := s.edit
	for i := range ed.helpers {
		h := &ed.helpers[i]
		h.Selected = ed.keys.Has(h.Key)
		switch {
		case h.Key.Mode == selection.Face && h.Selected:
			h.Color = FaceHelperSelectedColor
		case h.Key.Mode == selection.Face:
			h.Color = FaceHelperColor
		case h.Selected:
			h.Color = VertexHelperSelectedColor
		default:
			h.Color = VertexHelperColor
		}
	}
	if ed.drag == nil {
		ed.pivot = scene.Transform{Position: s.componentCenter(), Scale: mgl32.Vec3{1, 1, 1}}
	}
}

// faceOrientation returns the rotation taking local +Z onto the unit normal n.
func faceOrientation(n mgl32.Vec3) mgl32.Quat {
	z := mgl32.Vec3{0, 0, 1}
	if n.Len() == 0 {
		return mgl32.QuatIdent()
	}
	cos := mgl32.Clamp(z.Dot(n), -1, 1)
	axis := z.Cross(n)
	if axis.Len() < 1e-6 {
		if cos > 0 {
			return mgl32.QuatIdent()
		}
		return mgl32.QuatRotate(math32.Pi, mgl32.Vec3{1, 0, 0})
	}
	return mgl32.QuatRotate(math32.Acos(cos), axis.Normalize())
}

// componentCenter averages the world positions of the selected components.
func (s *Session) componentCenter() mgl32.Vec3 {
	ed := s.edit
	var sum mgl32.Vec3
	n := 0
	for _, h := range ed.helpers {
		if h.Selected {
			sum = sum.Add(h.Position)
			n++
		}
	}
	if n == 0 {
		return mgl32.Vec3{}
	}
	return sum.Mul(1 / float32(n))
}

func (ed *editState) beginPivotDrag() {
	verts := ed.keys.Vertices()
	d := &pivotDrag{start: ed.pivot.Matrix(), vertices: verts, startWorld: make([]mgl32.Vec3, len(verts))}
	for i, v := range verts {
		d.startWorld[i] = ed.entity.WorldVertex(v)
	}
	ed.drag = d
}

// applyPivotDelta moves every affected vertex by the pivot's change since drag start. Shared
// vertices appear once in the drag record, so they move once.
func (ed *editState) applyPivotDelta() bool {
	d := ed.drag
	if d == nil {
		return false
	}
	delta := ed.pivot.Matrix().Mul4(d.start.Inv())
	toLocal := ed.entity.WorldMatrix().Inv()
	g := ed.entity.Geometry
	changed := false
	for i, v := range d.vertices {
		p := mgl32.TransformCoordinate(mgl32.TransformCoordinate(d.startWorld[i], delta), toLocal)
		if p != g.Vertex(v) {
			g.SetVertex(v, p)
			changed = true
		}
	}
	return changed
}
