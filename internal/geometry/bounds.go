package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box. An empty box has Min > Max on every axis so that the
// first ExpandByPoint sets both corners.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox returns a box that contains nothing.
func EmptyBox() Box {
	inf := math32.Inf(1)
	return Box{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to include p.
func (b *Box) ExpandByPoint(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// ContainsPoint reports whether p lies inside or on the box.
func (b Box) ContainsPoint(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ContainsBox reports whether o lies entirely inside b. An empty o is contained by any box.
func (b Box) ContainsBox(o Box) bool {
	if o.IsEmpty() {
		return true
	}
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box on each axis.
func (b Box) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// boundsOf computes the box and sphere for a flat xyz position array. The sphere is centred on
// the box centre with the radius reaching the farthest point, matching the usual engine rule.
func boundsOf(positions []float32) (Box, Sphere) {
	box := EmptyBox()
	n := len(positions) / 3
	for i := 0; i < n; i++ {
		box.ExpandByPoint(mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]})
	}
	if box.IsEmpty() {
		return box, Sphere{}
	}
	c := box.Center()
	var r2 float32
	for i := 0; i < n; i++ {
		d := mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}.Sub(c)
		r2 = max(r2, d.Dot(d))
	}
	return box, Sphere{Center: c, Radius: math32.Sqrt(r2)}
}
