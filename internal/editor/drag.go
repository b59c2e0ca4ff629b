package editor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/scene"
)

const minDragScale = 1e-3

var worldAxes = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// AxisDrag turns pointer rays into tool transforms for a single-axis gizmo drag. Translate and
// scale follow the pointer along a world axis through the tool origin; rotate measures the angle
// swept in the plane perpendicular to the axis.
type AxisDrag struct {
	Axis int
	Mode TransformMode

	start  scene.Transform
	origin mgl32.Vec3
	dir    mgl32.Vec3
	anchor float32
	from   mgl32.Vec3
}

// NewAxisDrag anchors a drag of tool t along axis (0, 1 or 2) at the pointer ray r. It reports
// false when the tool is detached or the ray is parallel to the drag line or plane.
func NewAxisDrag(t Tool, axis int, r Ray) (*AxisDrag, bool) {
	if t.Kind == ToolNone || axis < 0 || axis > 2 {
		return nil, false
	}
	d := &AxisDrag{
		Axis:   axis,
		Mode:   t.Mode,
		start:  t.Transform,
		origin: t.Transform.Position,
		dir:    worldAxes[axis],
	}
	if d.Mode == Rotate {
		v, ok := d.planeVector(r)
		if !ok {
			return nil, false
		}
		d.from = v
		return d, true
	}
	s, ok := d.lineParam(r)
	if !ok {
		return nil, false
	}
	d.anchor = s
	return d, true
}

// Update returns the tool transform for the pointer ray r. ok is false when the ray gives no
// usable reading this frame; the caller keeps the previous transform.
func (d *AxisDrag) Update(r Ray) (scene.Transform, bool) {
	t := d.start
	switch d.Mode {
	case Translate:
		s, ok := d.lineParam(r)
		if !ok {
			return t, false
		}
		t.Position = d.start.Position.Add(d.dir.Mul(s - d.anchor))
	case Scale:
		s, ok := d.lineParam(r)
		if !ok {
			return t, false
		}
		t.Scale[d.Axis] = d.start.Scale[d.Axis] * max(1+s-d.anchor, minDragScale)
	case Rotate:
		v, ok := d.planeVector(r)
		if !ok {
			return t, false
		}
		angle := math32.Atan2(d.dir.Dot(d.from.Cross(v)), d.from.Dot(v))
		t.Rotation[d.Axis] = d.start.Rotation[d.Axis] + angle
	}
	return t, true
}

// lineParam returns the distance along the drag line of its closest point to r.
func (d *AxisDrag) lineParam(r Ray) (float32, bool) {
	w0 := d.origin.Sub(r.Origin)
	b := d.dir.Dot(r.Dir)
	c := r.Dir.Dot(r.Dir)
	denom := c - b*b
	if math32.Abs(denom) < rayEpsilon {
		return 0, false
	}
	return (b*r.Dir.Dot(w0) - c*d.dir.Dot(w0)) / denom, true
}

// planeVector returns the unit vector from the tool origin to where r crosses the rotation plane.
func (d *AxisDrag) planeVector(r Ray) (mgl32.Vec3, bool) {
	denom := d.dir.Dot(r.Dir)
	if math32.Abs(denom) < rayEpsilon {
		return mgl32.Vec3{}, false
	}
	t := d.dir.Dot(d.origin.Sub(r.Origin)) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	v := r.At(t).Sub(d.origin)
	if v.Len() < rayEpsilon {
		return mgl32.Vec3{}, false
	}
	return v.Normalize(), true
}
