package primitives

import (
	"fmt"

	"blander/internal/geometry"
)

// Registry maps primitive kinds to the definition used to build their geometry.
type Registry struct {
	defs map[Kind]Def
}

// DefaultDefs returns the built-in definitions: a 1×1×1 cube, a sphere of radius 0.6 with 32×24
// segments, a capped cylinder of radius 0.5 and height 1.2 with 32 radial segments and a
// 1.5×1.5 plane.
func DefaultDefs() []Def {
	return []Def{
		{Type: Cube, Size: [3]float32{1, 1, 1}, Segments: [2]int{1, 1}},
		{Type: Sphere, Radius: 0.6, Segments: [2]int{32, 24}},
		{Type: Cylinder, RadiusTop: 0.5, RadiusBottom: 0.5, Height: 1.2, Segments: [2]int{32, 1}},
		{Type: Plane, Size: [3]float32{1.5, 1.5, 0}, Segments: [2]int{1, 1}},
	}
}

// NewRegistry returns a registry holding the defaults with overrides applied on top. Zero
// fields in an override keep the default value.
func NewRegistry(overrides ...Def) *Registry {
	r := &Registry{defs: make(map[Kind]Def)}
	for _, d := range DefaultDefs() {
		r.defs[d.Type] = d
	}
	for _, o := range overrides {
		base, ok := r.defs[o.Type]
		if !ok {
			continue
		}
		r.defs[o.Type] = merge(base, o)
	}
	return r
}

// Def returns the definition for k.
func (r *Registry) Def(k Kind) (Def, bool) {
	d, ok := r.defs[k]
	return d, ok
}

// Build generates fresh geometry for k.
func (r *Registry) Build(k Kind) (*geometry.Buffer, error) {
	d, ok := r.defs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	switch k {
	case Cube:
		return Box(d.Size[0], d.Size[1], d.Size[2], d.Segments[0], d.Segments[1]), nil
	case Sphere:
		return UVSphere(d.Radius, d.Segments[0], d.Segments[1]), nil
	case Cylinder:
		return CappedCylinder(d.RadiusTop, d.RadiusBottom, d.Height, d.Segments[0], d.Segments[1]), nil
	case Plane:
		return Quad(d.Size[0], d.Size[1], d.Segments[0], d.Segments[1]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

func merge(base, o Def) Def {
	for i := range o.Size {
		if o.Size[i] > 0 {
			base.Size[i] = o.Size[i]
		}
	}
	if o.Radius > 0 {
		base.Radius = o.Radius
	}
	if o.RadiusTop > 0 {
		base.RadiusTop = o.RadiusTop
	}
	if o.RadiusBottom > 0 {
		base.RadiusBottom = o.RadiusBottom
	}
	if o.Height > 0 {
		base.Height = o.Height
	}
	for i := range o.Segments {
		if o.Segments[i] > 0 {
			base.Segments[i] = o.Segments[i]
		}
	}
	return base
}
