package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v vs %v", i, want, got)
	}
}

func TestDefaultPosition(t *testing.T) {
	o := Default()
	assertNear(t, mgl32.Vec3{10, 10, 10}, o.Position(), 1e-3)
}

func TestRotateClampsPitch(t *testing.T) {
	o := Default()
	o.Rotate(0, 10)
	assert.InDelta(t, maxPitch, o.Pitch, 1e-6)
	o.Rotate(0, -20)
	assert.InDelta(t, -maxPitch, o.Pitch, 1e-6)
}

func TestZoomClamps(t *testing.T) {
	o := Default()
	o.Zoom(1e-6)
	assert.Equal(t, float32(minDistance), o.Distance)
	o.Zoom(1e9)
	assert.Equal(t, float32(maxDistance), o.Distance)
	o.Zoom(-1)
	assert.Equal(t, float32(maxDistance), o.Distance)
}

func TestPanMovesTargetInViewPlane(t *testing.T) {
	o := &Orbit{Distance: 10, Fovy: 45}
	o.Pan(0.1, 0)
	assertNear(t, mgl32.Vec3{1, 0, 0}, o.Target, 1e-5)
	o.Pan(0, 0.2)
	assertNear(t, mgl32.Vec3{1, 2, 0}, o.Target, 1e-5)
	assertNear(t, mgl32.Vec3{1, 2, 10}, o.Position(), 1e-5)
}

func TestCentreRayHitsTarget(t *testing.T) {
	o := Default()
	o.Target = mgl32.Vec3{1, 2, 3}
	r := o.Ray(400, 300, 800, 600)

	assertNear(t, o.Position(), r.Origin, 0.2)
	want := o.Target.Sub(o.Position()).Normalize()
	assertNear(t, want, r.Dir, 1e-3)
}

func TestOffCentreRayLeansRight(t *testing.T) {
	o := &Orbit{Distance: 10, Fovy: 45}
	// looking down -Z from +Z, a pointer right of centre leans towards +X
	r := o.Ray(700, 300, 800, 600)
	assert.Greater(t, r.Dir[0], float32(0))
	assert.Less(t, r.Dir[2], float32(0))
}
