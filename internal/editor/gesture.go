package editor

import "blander/internal/scene"

// ToolKind names what the transform tool is attached to.
type ToolKind int

const (
	ToolNone ToolKind = iota
	ToolEntity
	ToolPivot
)

func (k ToolKind) String() string {
	switch k {
	case ToolEntity:
		return "entity"
	case ToolPivot:
		return "pivot"
	}
	return "none"
}

// Phase is the transform-tool gesture state: Idle, then Dragging between BeginDrag and EndDrag,
// then Committing while the finished gesture is recorded.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	}
	return "idle"
}

type gesture struct {
	phase   Phase
	tool    ToolKind
	changed bool
}

// Tool describes the transform tool attachment for drawing a gizmo.
type Tool struct {
	Kind      ToolKind
	Mode      TransformMode
	Transform scene.Transform
}

// Tool returns the current tool attachment. In edit mode the tool sits on the component pivot
// while components are selected; otherwise it sits on the selected entity.
func (s *Session) Tool() Tool {
	t := Tool{Mode: s.mode}
	switch {
	case s.edit != nil:
		if p, ok := s.Pivot(); ok {
			t.Kind, t.Transform = ToolPivot, p
		}
	case s.selected != nil:
		t.Kind, t.Transform = ToolEntity, s.selected.Transform
	}
	return t
}

// Phase returns the gesture phase.
func (s *Session) Phase() Phase { return s.gesture.phase }

// CameraInteractionEnabled reports whether camera orbiting may consume pointer input.
func (s *Session) CameraInteractionEnabled() bool { return s.gesture.phase == PhaseIdle }

// BeginDrag starts a transform-tool gesture. It reports false when no tool is attached or a
// gesture is already running.
func (s *Session) BeginDrag() bool {
	if s.gesture.phase != PhaseIdle {
		return false
	}
	t := s.Tool()
	if t.Kind == ToolNone {
		return false
	}
	s.gesture = gesture{phase: PhaseDragging, tool: t.Kind}
	if t.Kind == ToolPivot {
		s.edit.beginPivotDrag()
	}
	return true
}

// Drag applies the tool's new transform for one intermediate frame. For the entity tool it
// becomes the entity transform; for the pivot it moves the selected vertices. Nothing is
// committed until EndDrag.
func (s *Session) Drag(t scene.Transform) {
	if s.gesture.phase != PhaseDragging {
		return
	}
	switch s.gesture.tool {
	case ToolEntity:
		if s.selected == nil {
			return
		}
		s.selected.Transform = t
		s.gesture.changed = true
	case ToolPivot:
		if s.edit == nil {
			return
		}
		s.edit.pivot = t
		if s.edit.applyPivotDelta() {
			s.gesture.changed = true
		}
	}
	s.refreshHelpers()
	s.notify()
}

// EndDrag finishes the gesture and commits once when anything changed.
func (s *Session) EndDrag() {
	if s.gesture.phase != PhaseDragging {
		return
	}
	s.gesture.phase = PhaseCommitting
	if s.gesture.tool == ToolPivot && s.edit != nil {
		if s.edit.applyPivotDelta() {
			s.gesture.changed = true
		}
		s.edit.drag = nil
		s.refreshHelpers()
	}
	if s.gesture.changed {
		s.Commit()
	}
	s.gesture = gesture{}
	s.notify()
}
