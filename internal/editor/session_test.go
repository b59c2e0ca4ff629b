package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blander/internal/history"
	"blander/internal/primitives"
	"blander/internal/scene"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(Options{PickColor: func() uint32 { return 0xff8f5a }})
}

func names(s *Session) []string {
	var out []string
	for _, e := range s.Scene().Entities() {
		out = append(out, e.Name)
	}
	return out
}

func TestNewSessionHasInitialEntry(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, 1, s.History().Len())
	assert.Equal(t, history.DefaultLimit, s.History().Limit())
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())
}

func TestUndoRedoTwoCubes(t *testing.T) {
	s := newSession(t)
	c1, err := s.AddPrimitive(primitives.Cube)
	require.NoError(t, err)
	c2, err := s.AddPrimitive(primitives.Cube)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cube 1", "Cube 2"}, names(s))
	assert.Same(t, c2, s.Selected())
	assert.False(t, c1.Highlighted())

	s.Select(c2.ID)
	require.True(t, s.Undo())
	assert.Equal(t, []string{"Cube 1"}, names(s))
	require.NotNil(t, s.Selected())
	assert.Equal(t, "Cube 1", s.Selected().Name)
	assert.Equal(t, scene.HighlightEmissive, s.Selected().Material.Emissive)

	require.True(t, s.Redo())
	assert.Equal(t, []string{"Cube 1", "Cube 2"}, names(s))
	require.NotNil(t, s.Selected())
	assert.Equal(t, "Cube 2", s.Selected().Name)
	assert.Equal(t, 2, s.Selected().ID)
	assert.False(t, s.Scene().Find(1).Highlighted())
	assert.Equal(t, uint32(0), s.Scene().Find(1).Material.Emissive)
}

func TestListenersSeeCommittedHistory(t *testing.T) {
	s := newSession(t)
	var lens []int
	s.OnChange(func() { lens = append(lens, s.History().Len()) })
	last := func() int { return lens[len(lens)-1] }

	_, err := s.AddPrimitive(primitives.Plane)
	require.NoError(t, err)
	assert.Equal(t, 2, last())

	require.True(t, s.SetNumericField(scene.Position, 0, "2"))
	assert.Equal(t, 3, last())

	require.True(t, s.Subdivide())
	assert.Equal(t, 4, last())

	require.True(t, s.DeleteSelected())
	assert.Equal(t, 5, last())

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	assert.True(t, s.History().CanRedo())
	_, err = s.AddPrimitive(primitives.Cube)
	require.NoError(t, err)
	assert.Equal(t, 4, last())
	assert.False(t, s.History().CanRedo())
}

func TestCommitDeduplicates(t *testing.T) {
	s := newSession(t)
	_, err := s.AddPrimitive(primitives.Sphere)
	require.NoError(t, err)
	n := s.History().Len()
	assert.False(t, s.Commit())
	assert.False(t, s.Commit())
	assert.Equal(t, n, s.History().Len())
}

func TestNewCommitPrunesRedo(t *testing.T) {
	s := newSession(t)
	_, _ = s.AddPrimitive(primitives.Cube)
	_, _ = s.AddPrimitive(primitives.Sphere)
	require.True(t, s.Undo())
	_, _ = s.AddPrimitive(primitives.Cylinder)
	assert.False(t, s.Redo())
	assert.Equal(t, []string{"Cube 1", "Cylinder 1"}, names(s))
}

func TestUndoRedoInverse(t *testing.T) {
	s := newSession(t)
	_, _ = s.AddPrimitive(primitives.Cube)
	_, _ = s.AddPrimitive(primitives.Plane)
	require.True(t, s.SetNumericField(scene.Position, 0, "2"))
	require.True(t, s.SetNumericField(scene.Rotation, 1, "45"))
	require.True(t, s.Subdivide())
	s.SetTransformMode(Rotate)
	s.Commit()

	want, err := history.Hash(s.Capture())
	require.NoError(t, err)
	require.True(t, s.Undo())
	require.True(t, s.Redo())
	got, err := history.Hash(s.Capture())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, Rotate, s.TransformMode())
	assert.Equal(t, 8, s.Selected().Geometry.TriangleCount())
}

func TestRestoreSuppressesCommits(t *testing.T) {
	s := newSession(t)
	// a listener that commits on every change mimics UI code paths reacting to mutations
	s.OnChange(func() { s.Commit() })
	_, _ = s.AddPrimitive(primitives.Cube)
	_, _ = s.AddPrimitive(primitives.Cube)
	n := s.History().Len()

	require.True(t, s.Undo())
	assert.Equal(t, n, s.History().Len())
	assert.True(t, s.History().CanRedo())
}

func TestSelectingAnotherEntityExitsEditMode(t *testing.T) {
	s := newSession(t)
	c1, _ := s.AddPrimitive(primitives.Cube)
	c2, _ := s.AddPrimitive(primitives.Cube)
	require.True(t, s.ToggleEditMode())
	assert.Same(t, c2, s.EditTarget())

	s.Select(c1.ID)
	assert.False(t, s.EditActive())
	assert.Equal(t, ObjectSelected, s.State())
	assert.Same(t, c1, s.Selected())
	assert.False(t, c2.Highlighted())
	assert.True(t, c1.Highlighted())

	s.Select(0)
	assert.Equal(t, Idle, s.State())
	assert.False(t, c1.Highlighted())
}

func TestSelectionChangesDoNotCommit(t *testing.T) {
	s := newSession(t)
	c1, _ := s.AddPrimitive(primitives.Cube)
	_, _ = s.AddPrimitive(primitives.Cube)
	n := s.History().Len()
	s.Select(c1.ID)
	s.Select(0)
	assert.Equal(t, n, s.History().Len())
}

func TestDeleteSelected(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.DeleteSelected())

	c, _ := s.AddPrimitive(primitives.Cube)
	g := c.Geometry
	require.True(t, s.ToggleEditMode())
	n := s.History().Len()

	require.True(t, s.DeleteSelected())
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 0, s.Scene().Len())
	assert.True(t, g.Disposed())
	assert.Equal(t, n+1, s.History().Len())

	require.True(t, s.Undo())
	assert.Equal(t, []string{"Cube 1"}, names(s))
}

func TestSetNumericField(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.SetNumericField(scene.Position, 0, "1"))

	c, _ := s.AddPrimitive(primitives.Cube)
	n := s.History().Len()
	for _, bad := range []string{"", "abc", "1,5", "NaN", "Inf"} {
		assert.False(t, s.SetNumericField(scene.Position, 0, bad), bad)
	}
	assert.False(t, s.SetNumericField(scene.Position, 3, "1"))
	assert.Equal(t, n, s.History().Len())
	assert.Equal(t, float32(0), c.Transform.Position[0])

	require.True(t, s.SetNumericField(scene.Rotation, 2, " 180 "))
	assert.InDelta(t, 3.14159265, c.Transform.Rotation[2], 1e-5)
	require.True(t, s.SetNumericField(scene.Scale, 1, "2.5"))
	assert.Equal(t, float32(2.5), c.Transform.Scale[1])
	assert.Equal(t, n+2, s.History().Len())
}

func TestSubdivide(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.Subdivide())

	c, _ := s.AddPrimitive(primitives.Cube)
	before := c.Geometry.Bounds()
	require.Equal(t, 12, c.Geometry.TriangleCount())
	n := s.History().Len()

	require.True(t, s.Subdivide())
	assert.Equal(t, 48, c.Geometry.TriangleCount())
	assert.False(t, c.Geometry.Indexed())
	assert.True(t, c.Geometry.Bounds().ContainsBox(before))
	assert.Equal(t, n+1, s.History().Len())

	require.True(t, s.ToggleEditMode())
	assert.Len(t, s.Helpers(), 144)
}

func TestSubdivideRebuildsEditMode(t *testing.T) {
	s := newSession(t)
	c, _ := s.AddPrimitive(primitives.Plane)
	require.True(t, s.ToggleEditMode())
	require.True(t, s.ClickHelper(0, noMods))
	assert.Len(t, s.Helpers(), 4)

	require.True(t, s.Subdivide())
	assert.True(t, s.EditActive())
	assert.Same(t, c, s.EditTarget())
	assert.Len(t, s.Helpers(), 24)
	assert.Empty(t, s.SelectedComponents())
	assert.Equal(t, scene.DoubleSide, c.Material.Side)
}

func TestCaptureRecordsBaseEmissive(t *testing.T) {
	s := newSession(t)
	c, _ := s.AddPrimitive(primitives.Cube)
	require.True(t, c.Highlighted())

	snap := s.Capture()
	require.Len(t, snap.Entities, 1)
	assert.Equal(t, uint32(0), snap.Entities[0].Material.Emissive)
	assert.Equal(t, c.ID, snap.SelectedID)
	assert.Equal(t, "translate", snap.TransformMode)
	assert.Equal(t, 2, snap.NextID)
	assert.Equal(t, 1, snap.Counters["cube"])
	assert.Equal(t, 0, snap.Counters["plane"])
}

func TestRestoreDefaultsMissingCounters(t *testing.T) {
	s := newSession(t)
	_, _ = s.AddPrimitive(primitives.Sphere)
	snap := s.Capture()
	snap.Counters = map[string]int{"cube": 3}
	snap.NextID = 0
	snap.SelectedID = 99
	snap.TransformMode = "bogus"
	s.SetTransformMode(Scale)

	s.Restore(snap)
	c := s.Scene().Counters()
	assert.Equal(t, 3, c[primitives.Cube])
	assert.Equal(t, 0, c[primitives.Sphere])
	assert.Equal(t, 2, s.Scene().NextID())
	assert.Nil(t, s.Selected())
	assert.Equal(t, Scale, s.TransformMode())
}
