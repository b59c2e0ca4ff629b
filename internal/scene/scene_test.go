package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blander/internal/primitives"
)

func fixedColor(c uint32) ColorPicker { return func() uint32 { return c } }

func TestAddNamesAndIdentities(t *testing.T) {
	s := New(nil, fixedColor(0x123456))

	c1, err := s.Add(primitives.Cube)
	require.NoError(t, err)
	c2, err := s.Add(primitives.Cube)
	require.NoError(t, err)
	sp, err := s.Add(primitives.Sphere)
	require.NoError(t, err)

	assert.Equal(t, "Cube 1", c1.Name)
	assert.Equal(t, "Cube 2", c2.Name)
	assert.Equal(t, "Sphere 1", sp.Name)
	assert.Equal(t, []int{1, 2, 3}, []int{c1.ID, c2.ID, sp.ID})
	assert.Equal(t, "Sphere", sp.DisplayKind())
	assert.Equal(t, 4, s.NextID())
	assert.Equal(t, 2, s.Counters()[primitives.Cube])

	_, err = s.Add("torus")
	assert.ErrorIs(t, err, primitives.ErrUnknownKind)
	assert.Equal(t, 4, s.NextID())
}

func TestIdentitiesNeverReused(t *testing.T) {
	s := New(nil, nil)
	r := rand.New(rand.NewPCG(7, 11))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		if s.Len() > 0 && r.IntN(3) == 0 {
			victim := s.Entities()[r.IntN(s.Len())]
			require.True(t, s.Remove(victim.ID))
			continue
		}
		e, err := s.Add(primitives.Kinds()[r.IntN(4)])
		require.NoError(t, err)
		require.False(t, seen[e.ID], "identity %d reused", e.ID)
		seen[e.ID] = true

		live := map[int]bool{}
		for _, le := range s.Entities() {
			require.False(t, live[le.ID])
			live[le.ID] = true
		}
	}
}

func TestPrimitiveDefaults(t *testing.T) {
	s := New(nil, fixedColor(0xff8f5a))
	cube, _ := s.Add(primitives.Cube)
	plane, _ := s.Add(primitives.Plane)
	sphere, _ := s.Add(primitives.Sphere)

	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, cube.Transform.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cube.Transform.Scale)
	assert.True(t, cube.CastShadow)
	assert.False(t, cube.ReceiveShadow)
	assert.Equal(t, FrontSide, cube.Material.Side)
	assert.Equal(t, Material{Color: 0xff8f5a, Roughness: 0.4, Metalness: 0.05}, cube.Material)

	assert.InDelta(t, 0.6, sphere.Transform.Position[1], 1e-5)

	assert.Equal(t, float32(planeLift), plane.Transform.Position[1])
	assert.Equal(t, float32(-math32.Pi/2), plane.Transform.Rotation[0])
	assert.Equal(t, DoubleSide, plane.Material.Side)
	assert.True(t, plane.ReceiveShadow)
	// the plane lies flat: its world-space bounding corners share one height
	assert.InDelta(t, planeLift, plane.WorldVertex(0)[1], 1e-5)
	assert.InDelta(t, planeLift, plane.WorldVertex(3)[1], 1e-5)
}

func TestHighlightNeverDrifts(t *testing.T) {
	s := New(nil, nil)
	e, _ := s.Add(primitives.Cube)
	e.Material.Emissive = 0x111111

	for i := 0; i < 3; i++ {
		e.Highlight(true, HighlightEmissive)
		e.Highlight(true, HighlightEmissive)
		assert.Equal(t, HighlightEmissive, e.Material.Emissive)
		assert.Equal(t, uint32(0x111111), e.BaseEmissive())
		assert.True(t, e.Highlighted())

		e.Highlight(false, HighlightEmissive)
		assert.Equal(t, uint32(0x111111), e.Material.Emissive)
		assert.False(t, e.Highlighted())
	}
	e.Highlight(false, HighlightEmissive)
	assert.Equal(t, uint32(0x111111), e.Material.Emissive)
}

func TestRemoveDisposesGeometry(t *testing.T) {
	s := New(nil, nil)
	e, _ := s.Add(primitives.Cube)
	g := e.Geometry
	assert.True(t, s.Remove(e.ID))
	assert.True(t, g.Disposed())
	assert.False(t, s.Remove(e.ID))
	assert.Nil(t, s.Find(e.ID))
}

func TestCountersAndNextID(t *testing.T) {
	s := New(nil, nil)
	s.SetCounters(map[primitives.Kind]int{primitives.Cube: 4})
	c := s.Counters()
	assert.Equal(t, 4, c[primitives.Cube])
	assert.Equal(t, 0, c[primitives.Plane])
	assert.Len(t, c, 4)

	e, _ := s.Add(primitives.Cube)
	assert.Equal(t, "Cube 5", e.Name)

	s.Insert(&Entity{ID: 9, Kind: primitives.Sphere})
	s.SetNextID(0)
	assert.Equal(t, 10, s.NextID())
	s.SetNextID(20)
	assert.Equal(t, 20, s.NextID())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, e.Geometry.Disposed())
}

func TestTransformSetAndSpaces(t *testing.T) {
	e := &Entity{Transform: Identity()}
	e.SetTransform(Position, 0, 2)
	e.SetTransform(Rotation, 1, 90)
	e.SetTransform(Scale, 2, 3)

	assert.Equal(t, mgl32.Vec3{2, 0, 0}, e.Transform.Position)
	assert.InDelta(t, math32.Pi/2, e.Transform.Rotation[1], 1e-6)
	assert.InDelta(t, 90, e.Transform.RotationDegrees()[1], 1e-4)

	// rotating +Z local by 90° about Y lands on +X, scaled by 3 and offset by 2
	w := e.LocalToWorld(mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 5, w[0], 1e-5)
	assert.InDelta(t, 0, w[2], 1e-5)

	back := e.WorldToLocal(w)
	assert.InDelta(t, 0, back[0], 1e-5)
	assert.InDelta(t, 1, back[2], 1e-5)
}

func TestParseFieldAndAxis(t *testing.T) {
	f, err := ParseField("Rotation")
	require.NoError(t, err)
	assert.Equal(t, Rotation, f)
	assert.Equal(t, "rotation", f.String())
	_, err = ParseField("skew")
	assert.Error(t, err)

	a, err := ParseAxis("Z")
	require.NoError(t, err)
	assert.Equal(t, 2, a)
	_, err = ParseAxis("w")
	assert.Error(t, err)
}
