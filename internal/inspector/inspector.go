// Package inspector derives the read model shown next to the viewport: the selected entity's
// name, kind and transform fields, which controls are enabled, and the scene list.
package inspector

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/editor"
)

// Placeholder is shown for the name and kind when nothing is selected.
const Placeholder = "-"

// Model is the inspector state after the latest mutation. Field values are formatted the way
// input boxes show them: position and scale with two decimals, rotation in degrees with one.
type Model struct {
	Name string
	Kind string

	Position [3]string
	Rotation [3]string
	Scale    [3]string

	FieldsEnabled    bool
	DeleteEnabled    bool
	EditEnabled      bool
	EditActive       bool
	SubdivideEnabled bool

	ComponentMode      string
	ComponentsEnabled  bool
	SelectedComponents int

	TransformMode string
	CanUndo       bool
	CanRedo       bool
}

// Item is one row of the scene list.
type Item struct {
	ID     int
	Name   string
	Kind   string
	Active bool
}

// Build returns the model for the session's current state.
func Build(s *editor.Session) Model {
	m := Model{
		Name:          Placeholder,
		Kind:          Placeholder,
		EditActive:    s.EditActive(),
		ComponentMode: s.ComponentMode().String(),
		TransformMode: s.TransformMode().String(),
		CanUndo:       s.History().CanUndo(),
		CanRedo:       s.History().CanRedo(),
	}
	m.ComponentsEnabled = m.EditActive
	m.SelectedComponents = len(s.SelectedComponents())
	e := s.Selected()
	if e == nil {
		return m
	}
	m.Name = e.Name
	m.Kind = e.DisplayKind()
	m.Position = format(e.Transform.Position, "%.2f")
	m.Rotation = format(e.Transform.RotationDegrees(), "%.1f")
	m.Scale = format(e.Transform.Scale, "%.2f")
	m.FieldsEnabled = true
	m.DeleteEnabled = true
	m.EditEnabled = s.CanEdit()
	m.SubdivideEnabled = s.CanEdit()
	return m
}

// Items returns the scene list in insertion order.
func Items(s *editor.Session) []Item {
	sel := s.Selected()
	entities := s.Scene().Entities()
	items := make([]Item, 0, len(entities))
	for _, e := range entities {
		items = append(items, Item{ID: e.ID, Name: e.Name, Kind: e.DisplayKind(), Active: e == sel})
	}
	return items
}

func format(v mgl32.Vec3, verb string) [3]string {
	return [3]string{fmt.Sprintf(verb, v[0]), fmt.Sprintf(verb, v[1]), fmt.Sprintf(verb, v[2])}
}

// Inspector keeps Model and Items current by rebuilding them on every session change.
type Inspector struct {
	s     *editor.Session
	model Model
	items []Item
}

// Attach subscribes a new inspector to s.
func Attach(s *editor.Session) *Inspector {
	in := &Inspector{s: s}
	in.refresh()
	s.OnChange(in.refresh)
	return in
}

func (in *Inspector) refresh() {
	in.model = Build(in.s)
	in.items = Items(in.s)
}

// Model returns the latest model.
func (in *Inspector) Model() Model { return in.model }

// Items returns the latest scene list.
func (in *Inspector) Items() []Item { return in.items }

// Activate selects the scene list row with the given identity.
func (in *Inspector) Activate(id int) { in.s.Select(id) }

// Lines renders the model as text rows for an overlay panel.
func (m Model) Lines() []string {
	lines := []string{
		"Name: " + m.Name,
		"Type: " + m.Kind,
	}
	if m.FieldsEnabled {
		lines = append(lines,
			fmt.Sprintf("Position: %s, %s, %s", m.Position[0], m.Position[1], m.Position[2]),
			fmt.Sprintf("Rotation: %s, %s, %s", m.Rotation[0], m.Rotation[1], m.Rotation[2]),
			fmt.Sprintf("Scale: %s, %s, %s", m.Scale[0], m.Scale[1], m.Scale[2]),
		)
	}
	mode := "Object"
	if m.EditActive {
		mode = fmt.Sprintf("Edit (%s, %d selected)", m.ComponentMode, m.SelectedComponents)
	}
	lines = append(lines, "Mode: "+mode, "Tool: "+m.TransformMode)
	return lines
}
