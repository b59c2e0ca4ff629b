package editor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/scene"
	"blander/internal/selection"
)

const rayEpsilon = 1e-6

// Ray is a world-space picking ray with a unit direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// RayFromNDC unprojects a pointer position in normalized device coordinates (x right, y up,
// both in [-1, 1]) through the camera's view and projection matrices.
func RayFromNDC(ndc mgl32.Vec2, view, projection mgl32.Mat4) Ray {
	inv := projection.Mul4(view).Inv()
	near := mgl32.TransformCoordinate(mgl32.Vec3{ndc[0], ndc[1], -1}, inv)
	far := mgl32.TransformCoordinate(mgl32.Vec3{ndc[0], ndc[1], 1}, inv)
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// Sphere returns the nearest non-negative hit distance with a sphere.
func (r Ray) Sphere(center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Disc returns the hit distance with a disc of the given centre, unit normal and radius. Both
// sides are pickable.
func (r Ray) Disc(center, normal mgl32.Vec3, radius float32) (float32, bool) {
	denom := normal.Dot(r.Dir)
	if math32.Abs(denom) < rayEpsilon {
		return 0, false
	}
	t := center.Sub(r.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	if r.At(t).Sub(center).Len() > radius {
		return 0, false
	}
	return t, true
}

// Triangle returns the hit distance with triangle abc from either side (Möller–Trumbore).
func (r Ray) Triangle(a, b, c mgl32.Vec3) (float32, bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// PickEntity returns the nearest entity whose surface the ray hits, or nil.
func (s *Session) PickEntity(r Ray) *scene.Entity {
	var best *scene.Entity
	bestT := math32.Inf(1)
	for _, e := range s.scene.Entities() {
		if t, ok := intersectEntity(r, e); ok && t < bestT {
			best, bestT = e, t
		}
	}
	return best
}

func intersectEntity(r Ray, e *scene.Entity) (float32, bool) {
	g := e.Geometry
	if !g.HasPositions() {
		return 0, false
	}
	m := e.WorldMatrix()
	bs := g.BoundingSphere()
	sc := e.Transform.Scale
	reach := bs.Radius * max(math32.Abs(sc[0]), math32.Abs(sc[1]), math32.Abs(sc[2]))
	if _, ok := r.Sphere(mgl32.TransformCoordinate(bs.Center, m), reach); !ok {
		return 0, false
	}
	hit, bestT := false, math32.Inf(1)
	for t := 0; t < g.TriangleCount(); t++ {
		tri := g.Triangle(t)
		a := mgl32.TransformCoordinate(g.Vertex(tri[0]), m)
		b := mgl32.TransformCoordinate(g.Vertex(tri[1]), m)
		c := mgl32.TransformCoordinate(g.Vertex(tri[2]), m)
		if d, ok := r.Triangle(a, b, c); ok && d < bestT {
			hit, bestT = true, d
		}
	}
	return bestT, hit
}

// PickHelper returns the index of the nearest helper the ray hits.
func (s *Session) PickHelper(r Ray) (int, bool) {
	if s.edit == nil {
		return 0, false
	}
	best, bestT := -1, math32.Inf(1)
	for i, h := range s.edit.helpers {
		var t float32
		var ok bool
		if h.Key.Mode == selection.Face {
			t, ok = r.Disc(h.Position, h.Normal, h.Radius)
		} else {
			t, ok = r.Sphere(h.Position, h.Radius)
		}
		if ok && t < bestT {
			best, bestT = i, t
		}
	}
	return best, best >= 0
}

// PointerDown handles a primary-button press. In edit mode helpers are tested first; a helper
// hit applies the multi-select protocol and stops there. A miss without modifiers clears the
// component selection. Otherwise the nearest entity is selected, or none on a miss.
func (s *Session) PointerDown(r Ray, mods selection.Modifiers) {
	if s.gesture.phase != PhaseIdle {
		return
	}
	if s.edit != nil && len(s.edit.helpers) > 0 {
		if i, ok := s.PickHelper(r); ok {
			s.ClickHelper(i, mods)
			return
		}
		if mods.None() {
			s.ClearComponentSelection()
		}
	}
	s.SelectEntity(s.PickEntity(r))
}
