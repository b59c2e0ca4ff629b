package history

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blander/internal/primitives"
	"blander/internal/scene"
)

func snap(n int) Snapshot {
	s := Snapshot{Counters: map[string]int{"cube": n}, TransformMode: "translate", NextID: n + 1}
	for i := 1; i <= n; i++ {
		s.Entities = append(s.Entities, EntityRecord{
			ID:       i,
			Kind:     "cube",
			Scale:    [3]float32{1, 1, 1},
			Geometry: GeometryRecord{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}},
		})
	}
	return s
}

func TestCommitDeduplicatesByValue(t *testing.T) {
	h := New(0)
	assert.Equal(t, DefaultLimit, h.Limit())

	ok, err := h.Commit(snap(1))
	require.NoError(t, err)
	assert.True(t, ok)

	// a structurally identical but separately built snapshot is a duplicate
	ok, err = h.Commit(snap(1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())

	ok, _ = h.Commit(snap(2))
	assert.True(t, ok)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Index())
}

func TestUndoRedoCursor(t *testing.T) {
	h := New(10)
	_, ok, err := h.Undo()
	assert.False(t, ok)
	assert.NoError(t, err)
	_, ok, err = h.Redo()
	assert.False(t, ok)
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := h.Commit(snap(i))
		require.NoError(t, err)
	}
	assert.False(t, h.CanRedo())

	s, ok, err := h.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, s.Entities, 1)
	s, ok, _ = h.Undo()
	require.True(t, ok)
	assert.Empty(t, s.Entities)
	_, ok, _ = h.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Index())

	s, ok, err = h.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, s.Entities, 1)
	assert.True(t, h.CanRedo())
}

func TestFailedCopyKeepsCursor(t *testing.T) {
	h := New(10)
	for i := 0; i < 3; i++ {
		_, err := h.Commit(snap(i))
		require.NoError(t, err)
	}
	_, _, err := h.Undo()
	require.NoError(t, err)
	require.Equal(t, 1, h.Index())

	copySnapshot = func(Snapshot) (Snapshot, error) { return Snapshot{}, errors.New("copy failed") }
	t.Cleanup(func() { copySnapshot = clone })

	_, ok, err := h.Undo()
	assert.False(t, ok)
	assert.EqualError(t, err, "copy failed")
	assert.Equal(t, 1, h.Index())
	assert.True(t, h.CanUndo())

	_, ok, err = h.Redo()
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, 1, h.Index())
	assert.True(t, h.CanRedo())

	copySnapshot = clone
	s, ok, err := h.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, s.Entities, 2)
	assert.Equal(t, 2, h.Index())
}

func TestCommitPrunesRedoBranch(t *testing.T) {
	h := New(10)
	for i := 0; i < 4; i++ {
		_, _ = h.Commit(snap(i))
	}
	h.Undo()
	h.Undo()
	require.Equal(t, 1, h.Index())

	ok, err := h.Commit(snap(7))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, h.Len())
	assert.False(t, h.CanRedo())

	cur, _ := h.Current()
	assert.Len(t, cur.Entities, 7)
}

func TestCommitAtCursorAfterUndoIsDuplicate(t *testing.T) {
	h := New(10)
	_, _ = h.Commit(snap(0))
	_, _ = h.Commit(snap(1))
	h.Undo()

	// committing the state under the cursor keeps the redo branch
	ok, _ := h.Commit(snap(0))
	assert.False(t, ok)
	assert.True(t, h.CanRedo())
}

func TestEvictsOldest(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		_, _ = h.Commit(snap(i))
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Index())

	h.Undo()
	s, ok, err := h.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, s.Entities, 2)
	assert.False(t, h.CanUndo())
}

func TestSnapshotsNeverAlias(t *testing.T) {
	h := New(10)
	s := snap(1)
	_, _ = h.Commit(s)

	s.Entities[0].Geometry.Positions[0] = 99
	s.Counters["cube"] = 42

	cur, _ := h.Current()
	assert.Equal(t, float32(0), cur.Entities[0].Geometry.Positions[0])
	assert.Equal(t, 1, cur.Counters["cube"])

	cur.Entities[0].Geometry.Positions[1] = 99
	again, _ := h.Current()
	assert.Equal(t, float32(0), again.Entities[0].Geometry.Positions[1])
}

func TestHashChangesWithContent(t *testing.T) {
	a, err := Hash(snap(1))
	require.NoError(t, err)
	b, _ := Hash(snap(1))
	assert.Equal(t, a, b)

	s := snap(1)
	s.Entities[0].Geometry.Positions[4] = 0.5
	c, _ := Hash(s)
	assert.NotEqual(t, a, c)

	s = snap(1)
	s.SelectedID = 1
	d, _ := Hash(s)
	assert.NotEqual(t, a, d)
}

func TestRecordRoundTripIsDetached(t *testing.T) {
	sc := scene.New(nil, func() uint32 { return 0x7a9cff })
	e, err := sc.Add(primitives.Plane)
	require.NoError(t, err)
	e.Material.Emissive = 0x010203
	e.Highlight(true, scene.HighlightEmissive)
	e.Material.Side = scene.FrontSide

	r := RecordEntity(e)
	assert.Equal(t, uint32(0x010203), r.Material.Emissive)
	assert.Equal(t, e.Geometry.VertexCount()*3, len(r.Geometry.Positions))

	e.Geometry.SetVertex(0, mgl32.Vec3{9, 9, 9})
	assert.NotEqual(t, float32(9), r.Geometry.Positions[0])

	rebuilt := r.Entity()
	assert.Equal(t, e.ID, rebuilt.ID)
	assert.Equal(t, e.Name, rebuilt.Name)
	assert.Equal(t, scene.DoubleSide, rebuilt.Material.Side)
	assert.False(t, rebuilt.Highlighted())
	assert.Equal(t, e.Transform.Rotation, rebuilt.Transform.Rotation)

	rebuilt.Geometry.SetVertex(1, mgl32.Vec3{7, 7, 7})
	assert.NotEqual(t, float32(7), r.Geometry.Positions[3])
}

func TestRecordWithoutNormalsRecomputes(t *testing.T) {
	r := EntityRecord{
		ID:       3,
		Kind:     "cube",
		Scale:    [3]float32{1, 1, 1},
		Geometry: GeometryRecord{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}},
	}
	e := r.Entity()
	assert.InDelta(t, 1, e.Geometry.Normal(0)[2], 1e-6)
	assert.False(t, e.Geometry.Indexed())
}
