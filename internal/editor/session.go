// Package editor owns one editing session: the live scene, the selected entity, component
// edit mode with its helpers and pivot, the transform-tool gesture and the undo history.
// Every intent is a method on Session and runs synchronously on the caller's goroutine.
package editor

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"blander/internal/history"
	"blander/internal/primitives"
	"blander/internal/scene"
	"blander/internal/selection"
)

// ErrNoSelection is returned by console commands that need a selected entity.
var ErrNoSelection = errors.New("no entity selected")

// Options configure a Session. Zero fields take the package defaults.
type Options struct {
	HistoryLimit       int
	Highlight          uint32
	Primitives         *primitives.Registry
	PickColor          scene.ColorPicker
	VertexHelperRadius float32
	FaceHelperRadius   float32
}

// Helper colours and default sizes.
const (
	VertexHelperColor         uint32 = 0xfff176
	VertexHelperSelectedColor uint32 = 0xff8f5a
	FaceHelperColor           uint32 = 0x7a9cff
	FaceHelperSelectedColor   uint32 = 0xff9f6f

	DefaultVertexHelperRadius = 0.05
	DefaultFaceHelperRadius   = 0.14
)

func (o Options) withDefaults() Options {
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = history.DefaultLimit
	}
	if o.Highlight == 0 {
		o.Highlight = scene.HighlightEmissive
	}
	if o.VertexHelperRadius <= 0 {
		o.VertexHelperRadius = DefaultVertexHelperRadius
	}
	if o.FaceHelperRadius <= 0 {
		o.FaceHelperRadius = DefaultFaceHelperRadius
	}
	return o
}

// Session is the explicitly owned editor state. It is not safe for concurrent use.
type Session struct {
	opts    Options
	scene   *scene.Scene
	history *history.History

	selected      *scene.Entity
	mode          TransformMode
	componentMode selection.Mode
	edit          *editState
	gesture       gesture
	restoring     bool

	listeners []func()
}

// New returns a session with an empty scene and one initial history entry.
func New(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts:    opts,
		scene:   scene.New(opts.Primitives, opts.PickColor),
		history: history.New(opts.HistoryLimit),
	}
	s.Commit()
	Logger().Info("session created", "history_limit", opts.HistoryLimit)
	return s
}

// OnChange registers fn to run after every mutation, e.g. to refresh an inspector.
func (s *Session) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Scene returns the live entity collection.
func (s *Session) Scene() *scene.Scene { return s.scene }

// History returns the undo history.
func (s *Session) History() *history.History { return s.history }

// Selected returns the selected entity or nil.
func (s *Session) Selected() *scene.Entity { return s.selected }

// TransformMode returns the current transform-tool mode.
func (s *Session) TransformMode() TransformMode { return s.mode }

// ComponentMode returns the component granularity used by edit mode.
func (s *Session) ComponentMode() selection.Mode { return s.componentMode }

// EditActive reports whether component edit mode is active.
func (s *Session) EditActive() bool { return s.edit != nil }

// EditTarget returns the entity being edited, or nil.
func (s *Session) EditTarget() *scene.Entity {
	if s.edit == nil {
		return nil
	}
	return s.edit.entity
}

// State returns the current selection state.
func (s *Session) State() State {
	switch {
	case s.edit != nil:
		return ComponentEditing
	case s.selected != nil:
		return ObjectSelected
	}
	return Idle
}

// CanEdit reports whether edit mode and subdivision are available for the selection.
func (s *Session) CanEdit() bool { return s.selected.Editable() }

// AddPrimitive creates an entity of kind k, selects it and commits.
func (s *Session) AddPrimitive(k primitives.Kind) (*scene.Entity, error) {
	e, err := s.scene.Add(k)
	if err != nil {
		return nil, err
	}
	s.SelectEntity(e)
	s.Commit()
	return e, nil
}

// Select selects the entity with the given identity. Zero or an unknown identity clears the
// selection.
func (s *Session) Select(id int) {
	s.SelectEntity(s.scene.Find(id))
}

// SelectEntity makes e the selection, or clears it when e is nil. Edit mode on another entity
// exits before the new selection is applied. Selection changes are not committed.
func (s *Session) SelectEntity(e *scene.Entity) {
	if e == s.selected {
		return
	}
	if s.edit != nil && s.edit.entity != e {
		s.ExitEditMode()
	}
	if s.selected != nil {
		s.selected.Highlight(false, s.opts.Highlight)
	}
	s.selected = e
	if e != nil {
		e.Highlight(true, s.opts.Highlight)
	}
	s.notify()
}

// DeleteSelected removes the selected entity and commits. It reports false without a selection.
func (s *Session) DeleteSelected() bool {
	e := s.selected
	if e == nil {
		return false
	}
	s.ExitEditMode()
	s.selected = nil
	s.scene.Remove(e.ID)
	s.Commit()
	return true
}

// SetTransformMode switches the transform tool between translate, rotate and scale.
func (s *Session) SetTransformMode(m TransformMode) {
	if s.mode == m {
		return
	}
	s.mode = m
	s.notify()
}

// SetNumericField parses raw and writes it to one transform component of the selection.
// Rotation values are degrees. Malformed or non-finite input is ignored and nothing is
// committed.
func (s *Session) SetNumericField(f scene.Field, axis int, raw string) bool {
	if s.selected == nil || axis < 0 || axis > 2 {
		return false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	s.selected.SetTransform(f, axis, float32(v))
	s.refreshHelpers()
	s.Commit()
	return true
}

// Subdivide replaces the selected entity's geometry with its 4x subdivision and commits.
// Edit mode on that entity is rebuilt against the new topology.
func (s *Session) Subdivide() bool {
	target := s.selected
	if !target.Editable() {
		return false
	}
	wasEditing := s.edit != nil && s.edit.entity == target
	if wasEditing {
		s.ExitEditMode()
	}
	before := target.Geometry.TriangleCount()
	target.SetGeometry(target.Geometry.Subdivide())
	if target.Kind == primitives.Plane {
		target.Material.Side = scene.DoubleSide
	}
	if wasEditing {
		s.EnterEditMode(target)
	}
	Logger().Debug("subdivided", "id", target.ID, "triangles_before", before, "triangles", target.Geometry.TriangleCount())
	s.Commit()
	return true
}

// Commit records the current state in history and notifies listeners. Consecutive identical
// states are collapsed and commits are suppressed while a snapshot is being restored.
func (s *Session) Commit() bool {
	if s.restoring {
		return false
	}
	defer s.notify()
	added, err := s.history.Commit(s.Capture())
	if err != nil {
		Logger().Warn("commit failed", "err", err)
		return false
	}
	if added {
		Logger().Debug("commit", "index", s.history.Index(), "len", s.history.Len())
	} else {
		Logger().Debug("commit deduplicated", "index", s.history.Index())
	}
	return added
}

// Undo restores the previous snapshot. It reports false at the earliest snapshot or when the
// snapshot cannot be copied.
func (s *Session) Undo() bool {
	snap, ok, err := s.history.Undo()
	if err != nil {
		Logger().Warn("undo failed", "index", s.history.Index(), "err", err)
		return false
	}
	if !ok {
		return false
	}
	Logger().Debug("undo", "index", s.history.Index())
	s.Restore(snap)
	return true
}

// Redo restores the next snapshot. It reports false at the latest snapshot or when the
// snapshot cannot be copied.
func (s *Session) Redo() bool {
	snap, ok, err := s.history.Redo()
	if err != nil {
		Logger().Warn("redo failed", "index", s.history.Index(), "err", err)
		return false
	}
	if !ok {
		return false
	}
	Logger().Debug("redo", "index", s.history.Index())
	s.Restore(snap)
	return true
}
