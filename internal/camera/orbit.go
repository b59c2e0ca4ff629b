// Package camera provides the editor's orbit camera: a position kept on a sphere around a target,
// steered by yaw, pitch and distance.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/editor"
)

const (
	minDistance = 1
	maxDistance = 200
	maxPitch    = 89 * math32.Pi / 180
	near        = 0.1
	far         = 1000
)

// Orbit looks at Target from Distance away. Yaw turns about +Y and Pitch raises the eye above
// the ground plane, both in radians.
type Orbit struct {
	Target   mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Distance float32
	Fovy     float32 // degrees
}

// Default frames the origin from (10, 10, 10).
func Default() *Orbit {
	return &Orbit{
		Yaw:      math32.Pi / 4,
		Pitch:    math32.Asin(1 / math32.Sqrt(3)),
		Distance: math32.Sqrt(300),
		Fovy:     45,
	}
}

// Position returns the eye position.
func (o *Orbit) Position() mgl32.Vec3 {
	cp := math32.Cos(o.Pitch)
	offset := mgl32.Vec3{
		o.Distance * cp * math32.Sin(o.Yaw),
		o.Distance * math32.Sin(o.Pitch),
		o.Distance * cp * math32.Cos(o.Yaw),
	}
	return o.Target.Add(offset)
}

// Rotate turns the camera by the given yaw and pitch deltas. Pitch stays short of the poles.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.Yaw += dYaw
	o.Pitch = mgl32.Clamp(o.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance by factor, clamped to a usable range.
func (o *Orbit) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	o.Distance = mgl32.Clamp(o.Distance*factor, minDistance, maxDistance)
}

// Pan slides the target across the view plane. dx and dy are fractions of the distance, with
// positive dx moving the view right and positive dy moving it up.
func (o *Orbit) Pan(dx, dy float32) {
	forward := o.Target.Sub(o.Position()).Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)
	o.Target = o.Target.Add(right.Mul(dx * o.Distance)).Add(up.Mul(dy * o.Distance))
}

// View returns the world-to-camera matrix.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (o *Orbit) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(o.Fovy), aspect, near, far)
}

// Ray unprojects a pointer at pixel (x, y) on a w×h surface, y down.
func (o *Orbit) Ray(x, y, w, h float32) editor.Ray {
	if w <= 0 || h <= 0 {
		return editor.Ray{Origin: o.Position(), Dir: o.Target.Sub(o.Position()).Normalize()}
	}
	ndc := mgl32.Vec2{2*x/w - 1, 1 - 2*y/h}
	return editor.RayFromNDC(ndc, o.View(), o.Projection(w/h))
}
