package history

import (
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/geometry"
	"blander/internal/primitives"
	"blander/internal/scene"
)

// Snapshot is a self-contained copy of the editor state. It never shares storage with live
// entities. SelectedID is zero when nothing is selected.
type Snapshot struct {
	Entities      []EntityRecord `json:"entities"`
	SelectedID    int            `json:"selectedId,omitempty"`
	Counters      map[string]int `json:"counters"`
	TransformMode string         `json:"transformMode"`
	NextID        int            `json:"nextObjectId"`
}

// EntityRecord is the by-value form of one scene.Entity.
type EntityRecord struct {
	ID            int            `json:"id"`
	Kind          string         `json:"type"`
	Name          string         `json:"name"`
	Position      [3]float32     `json:"position"`
	Rotation      [3]float32     `json:"rotation"`
	Scale         [3]float32     `json:"scale"`
	Material      MaterialRecord `json:"material"`
	CastShadow    bool           `json:"castShadow"`
	ReceiveShadow bool           `json:"receiveShadow"`
	Geometry      GeometryRecord `json:"geometry"`
}

// MaterialRecord stores the un-highlighted material parameters.
type MaterialRecord struct {
	Color     uint32  `json:"color"`
	Emissive  uint32  `json:"emissive"`
	Roughness float32 `json:"roughness"`
	Metalness float32 `json:"metalness"`
	Side      int     `json:"side"`
}

// GeometryRecord stores copied attribute arrays.
type GeometryRecord struct {
	Positions []float32 `json:"position,omitempty"`
	Normals   []float32 `json:"normal,omitempty"`
	UVs       []float32 `json:"uv,omitempty"`
	Indices   []uint32  `json:"index,omitempty"`
}

// RecordEntity copies e into a record. The selection highlight is not recorded.
func RecordEntity(e *scene.Entity) EntityRecord {
	r := EntityRecord{
		ID:            e.ID,
		Kind:          string(e.Kind),
		Name:          e.Name,
		Position:      e.Transform.Position,
		Rotation:      e.Transform.Rotation,
		Scale:         e.Transform.Scale,
		CastShadow:    e.CastShadow,
		ReceiveShadow: e.ReceiveShadow,
		Material: MaterialRecord{
			Color:     e.Material.Color,
			Emissive:  e.BaseEmissive(),
			Roughness: e.Material.Roughness,
			Metalness: e.Material.Metalness,
			Side:      int(e.Material.Side),
		},
	}
	if e.Geometry != nil && !e.Geometry.Disposed() {
		a := e.Geometry.Attributes()
		r.Geometry = GeometryRecord{Positions: a.Positions, Normals: a.Normals, UVs: a.UVs, Indices: a.Indices}
	}
	return r
}

// Entity rebuilds a live entity from the record with freshly allocated geometry. Missing normals
// are recomputed. Planes are always double-sided.
func (r EntityRecord) Entity() *scene.Entity {
	g := r.Geometry
	e := &scene.Entity{
		ID:   r.ID,
		Kind: primitives.Kind(r.Kind),
		Name: r.Name,
		Geometry: geometry.FromAttributes(geometry.Attributes{
			Positions: cloneFloats(g.Positions),
			Normals:   cloneFloats(g.Normals),
			UVs:       cloneFloats(g.UVs),
			Indices:   cloneIndices(g.Indices),
		}),
		Material: scene.Material{
			Color:     r.Material.Color,
			Emissive:  r.Material.Emissive,
			Roughness: r.Material.Roughness,
			Metalness: r.Material.Metalness,
			Side:      scene.Side(r.Material.Side),
		},
		Transform: scene.Transform{
			Position: mgl32.Vec3(r.Position),
			Rotation: mgl32.Vec3(r.Rotation),
			Scale:    mgl32.Vec3(r.Scale),
		},
		CastShadow:    r.CastShadow,
		ReceiveShadow: r.ReceiveShadow,
	}
	if e.Kind == primitives.Plane {
		e.Material.Side = scene.DoubleSide
	}
	return e
}

// Find returns the record with the given identity.
func (s *Snapshot) Find(id int) (EntityRecord, bool) {
	for _, r := range s.Entities {
		if r.ID == id {
			return r, true
		}
	}
	return EntityRecord{}, false
}

func cloneFloats(s []float32) []float32 {
	if len(s) == 0 {
		return nil
	}
	return append([]float32(nil), s...)
}

func cloneIndices(s []uint32) []uint32 {
	if len(s) == 0 {
		return nil
	}
	return append([]uint32(nil), s...)
}
