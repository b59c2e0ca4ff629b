package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/geometry"
	"blander/internal/primitives"
)

// Entity is one independently transformable primitive instance. ID is stable for the whole
// session and independent of the geometry contents.
type Entity struct {
	ID            int
	Kind          primitives.Kind
	Name          string
	Geometry      *geometry.Buffer
	Material      Material
	Transform     Transform
	CastShadow    bool
	ReceiveShadow bool

	// baseEmissive is the emissive colour recorded before the entity was highlighted.
	baseEmissive uint32
	highlighted  bool
}

// DisplayKind returns the capitalized kind shown in lists and the inspector.
func (e *Entity) DisplayKind() string { return e.Kind.Label() }

// WorldMatrix returns the local-to-world matrix. Entities have no parents, so this is the
// local transform matrix.
func (e *Entity) WorldMatrix() mgl32.Mat4 { return e.Transform.Matrix() }

// LocalToWorld converts a local-space point into world space.
func (e *Entity) LocalToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, e.WorldMatrix())
}

// WorldToLocal converts a world-space point into local space.
func (e *Entity) WorldToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, e.WorldMatrix().Inv())
}

// WorldVertex returns vertex i in world space.
func (e *Entity) WorldVertex(i int) mgl32.Vec3 {
	return e.LocalToWorld(e.Geometry.Vertex(i))
}

// Editable reports whether the geometry exposes position data for component editing.
func (e *Entity) Editable() bool {
	return e != nil && e.Geometry.HasPositions()
}

// SetTransform writes one transform component. Rotation values are degrees.
func (e *Entity) SetTransform(f Field, axis int, value float32) {
	e.Transform.Set(f, axis, value)
}

// Highlight shows or clears the selection highlight. The un-highlighted emissive colour is
// captured on the first highlight and restored on clear, so repeated cycles never drift.
func (e *Entity) Highlight(on bool, color uint32) {
	if on {
		if !e.highlighted {
			e.baseEmissive = e.Material.Emissive
			e.highlighted = true
		}
		e.Material.Emissive = color
		return
	}
	if e.highlighted {
		e.Material.Emissive = e.baseEmissive
		e.highlighted = false
	}
}

// Highlighted reports whether the selection highlight is shown.
func (e *Entity) Highlighted() bool { return e.highlighted }

// BaseEmissive returns the emissive colour without any selection highlight.
func (e *Entity) BaseEmissive() uint32 {
	if e.highlighted {
		return e.baseEmissive
	}
	return e.Material.Emissive
}

// SetGeometry replaces the geometry, disposing the previous buffer.
func (e *Entity) SetGeometry(g *geometry.Buffer) {
	if e.Geometry != nil && e.Geometry != g {
		e.Geometry.Dispose()
	}
	e.Geometry = g
}

// Dispose releases the geometry.
func (e *Entity) Dispose() {
	if e.Geometry != nil {
		e.Geometry.Dispose()
	}
}
