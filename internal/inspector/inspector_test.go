package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blander/internal/editor"
	"blander/internal/primitives"
	"blander/internal/scene"
	"blander/internal/selection"
)

func session() *editor.Session {
	return editor.New(editor.Options{PickColor: func() uint32 { return 0x5ad4ff }})
}

func TestEmptyModel(t *testing.T) {
	m := Build(session())
	assert.Equal(t, Placeholder, m.Name)
	assert.Equal(t, Placeholder, m.Kind)
	assert.False(t, m.FieldsEnabled)
	assert.False(t, m.DeleteEnabled)
	assert.False(t, m.EditEnabled)
	assert.False(t, m.CanUndo)
	assert.Equal(t, [3]string{}, m.Position)
	assert.Equal(t, []string{"Name: -", "Type: -", "Mode: Object", "Tool: translate"}, m.Lines())
}

func TestInspectorRefreshesAfterMutations(t *testing.T) {
	s := session()
	in := Attach(s)

	_, err := s.AddPrimitive(primitives.Plane)
	require.NoError(t, err)
	m := in.Model()
	assert.Equal(t, "Plane 1", m.Name)
	assert.Equal(t, "Plane", m.Kind)
	assert.Equal(t, [3]string{"0.00", "0.01", "0.00"}, m.Position)
	assert.Equal(t, [3]string{"-90.0", "0.0", "0.0"}, m.Rotation)
	assert.Equal(t, [3]string{"1.00", "1.00", "1.00"}, m.Scale)
	assert.True(t, m.FieldsEnabled)
	assert.True(t, m.EditEnabled)
	assert.True(t, m.SubdivideEnabled)
	assert.True(t, m.CanUndo)
	assert.False(t, m.CanRedo)

	s.SetNumericField(scene.Position, 2, "1.234")
	assert.Equal(t, "1.23", in.Model().Position[2])

	s.ToggleEditMode()
	m = in.Model()
	assert.True(t, m.EditActive)
	assert.True(t, m.ComponentsEnabled)
	assert.Equal(t, "vertex", m.ComponentMode)
	s.ClickHelper(1, selection.Modifiers{})
	assert.Equal(t, 1, in.Model().SelectedComponents)
	assert.Contains(t, in.Model().Lines(), "Mode: Edit (vertex, 1 selected)")

	s.Undo()
	assert.True(t, in.Model().CanRedo)
	assert.False(t, in.Model().EditActive)

	require.True(t, s.Subdivide())
	m = in.Model()
	assert.True(t, m.CanUndo)
	assert.False(t, m.CanRedo)

	require.True(t, s.DeleteSelected())
	m = in.Model()
	assert.Equal(t, Placeholder, m.Name)
	assert.True(t, m.CanUndo)
	assert.False(t, m.CanRedo)
}

func TestSceneList(t *testing.T) {
	s := session()
	in := Attach(s)
	_, _ = s.AddPrimitive(primitives.Cube)
	_, _ = s.AddPrimitive(primitives.Sphere)

	assert.Equal(t, []Item{
		{ID: 1, Name: "Cube 1", Kind: "Cube"},
		{ID: 2, Name: "Sphere 1", Kind: "Sphere", Active: true},
	}, in.Items())

	in.Activate(1)
	assert.True(t, in.Items()[0].Active)
	assert.False(t, in.Items()[1].Active)
	assert.Equal(t, "Cube 1", in.Model().Name)
}
