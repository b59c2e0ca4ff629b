// Package geometry holds raw per-vertex attribute storage for editable meshes: positions, the
// derived normals, optional UVs and an optional triangle index. Normals and bounds are derived
// data; they are recomputed lazily after any position write and are never edited directly.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Attributes is the plain-data form of a Buffer. A nil slice means the attribute is absent:
// nil Normals are recomputed from positions, nil UVs mean the mesh carries no texture
// coordinates and nil Indices mean the positions form a flat triangle list.
type Attributes struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// Buffer is the geometry of one entity. The zero value is an empty non-indexed buffer.
// A Buffer is single-owner: history snapshots and clones hold independent copies.
type Buffer struct {
	positions []float32
	normals   []float32
	uvs       []float32
	indices   []uint32

	normalsStale bool
	boundsStale  bool
	box          Box
	sphere       Sphere

	version   uint64
	disposed  bool
	onRelease []func()
}

// FromAttributes builds a Buffer that takes ownership of the slices in a. Normals whose length
// does not match the positions are discarded and recomputed; UVs of the wrong length are dropped.
func FromAttributes(a Attributes) *Buffer {
	b := &Buffer{
		positions:    a.Positions,
		indices:      a.Indices,
		normalsStale: true,
		boundsStale:  true,
	}
	if len(a.Indices) == 0 {
		b.indices = nil
	}
	if len(a.Normals) > 0 && len(a.Normals) == len(a.Positions) {
		b.normals = a.Normals
		b.normalsStale = false
	}
	if len(a.UVs) > 0 && len(a.UVs)/2 == len(a.Positions)/3 {
		b.uvs = a.UVs
	}
	return b
}

// Attributes returns a deep copy of the buffer contents with normals brought up to date.
func (b *Buffer) Attributes() Attributes {
	b.ensureNormals()
	return Attributes{
		Positions: cloneFloats(b.positions),
		Normals:   cloneFloats(b.normals),
		UVs:       cloneFloats(b.uvs),
		Indices:   cloneIndices(b.indices),
	}
}

// HasPositions reports whether the buffer exposes position data. Edit mode and subdivision
// require it.
func (b *Buffer) HasPositions() bool {
	return b != nil && !b.disposed && len(b.positions) >= 3
}

// HasUVs reports whether a UV attribute is present.
func (b *Buffer) HasUVs() bool { return len(b.uvs) > 0 }

// Indexed reports whether the buffer uses an index sequence.
func (b *Buffer) Indexed() bool { return len(b.indices) > 0 }

// VertexCount returns the number of vertex positions.
func (b *Buffer) VertexCount() int { return len(b.positions) / 3 }

// TriangleCount returns the number of triangles, whether indexed or not.
func (b *Buffer) TriangleCount() int {
	if b.Indexed() {
		return len(b.indices) / 3
	}
	return b.VertexCount() / 3
}

// Triangle returns the vertex indices of triangle t.
func (b *Buffer) Triangle(t int) [3]int {
	if b.Indexed() {
		return [3]int{int(b.indices[t*3]), int(b.indices[t*3+1]), int(b.indices[t*3+2])}
	}
	return [3]int{t * 3, t*3 + 1, t*3 + 2}
}

// Vertex returns the local-space position of vertex i.
func (b *Buffer) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.positions[i*3], b.positions[i*3+1], b.positions[i*3+2]}
}

// SetVertex writes the local-space position of vertex i. The caller guarantees i < VertexCount.
// Normals and bounds are marked stale and recomputed before their next read.
func (b *Buffer) SetVertex(i int, p mgl32.Vec3) {
	b.positions[i*3] = p[0]
	b.positions[i*3+1] = p[1]
	b.positions[i*3+2] = p[2]
	b.normalsStale = true
	b.boundsStale = true
	b.version++
}

// Normal returns the normal of vertex i.
func (b *Buffer) Normal(i int) mgl32.Vec3 {
	b.ensureNormals()
	return mgl32.Vec3{b.normals[i*3], b.normals[i*3+1], b.normals[i*3+2]}
}

// UV returns the texture coordinate of vertex i, or the zero vector when no UVs are present.
func (b *Buffer) UV(i int) mgl32.Vec2 {
	if !b.HasUVs() {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{b.uvs[i*2], b.uvs[i*2+1]}
}

// Positions returns the live position array for upload by a renderer. It must not be modified.
func (b *Buffer) Positions() []float32 { return b.positions }

// Normals returns the live, up to date normal array. It must not be modified.
func (b *Buffer) Normals() []float32 {
	b.ensureNormals()
	return b.normals
}

// UVs returns the live UV array or nil. It must not be modified.
func (b *Buffer) UVs() []float32 { return b.uvs }

// Indices returns the live index array or nil. It must not be modified.
func (b *Buffer) Indices() []uint32 { return b.indices }

// Bounds returns the local-space bounding box.
func (b *Buffer) Bounds() Box {
	b.ensureBounds()
	return b.box
}

// BoundingSphere returns the local-space bounding sphere.
func (b *Buffer) BoundingSphere() Sphere {
	b.ensureBounds()
	return b.sphere
}

// Version increases on every position write. Renderers use it to decide when to re-upload.
func (b *Buffer) Version() uint64 { return b.version }

// Clone returns an independent deep copy.
func (b *Buffer) Clone() *Buffer {
	c := FromAttributes(b.Attributes())
	c.version = b.version
	return c
}

// OnRelease registers fn to run when the buffer is disposed, e.g. to free GPU-side copies.
func (b *Buffer) OnRelease(fn func()) {
	b.onRelease = append(b.onRelease, fn)
}

// Dispose releases the buffer. Release hooks run once; the buffer is empty afterwards.
func (b *Buffer) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, fn := range b.onRelease {
		fn()
	}
	b.onRelease = nil
	b.positions, b.normals, b.uvs, b.indices = nil, nil, nil, nil
	b.box, b.sphere = EmptyBox(), Sphere{}
	b.boundsStale = false
	b.normalsStale = false
}

// Disposed reports whether Dispose has been called.
func (b *Buffer) Disposed() bool { return b.disposed }

// ToNonIndexed materializes an indexed buffer into a flat triangle list. A non-indexed buffer is
// cloned.
func (b *Buffer) ToNonIndexed() *Buffer {
	if !b.Indexed() {
		return b.Clone()
	}
	n := len(b.indices)
	a := Attributes{Positions: make([]float32, 0, n*3)}
	if b.HasUVs() {
		a.UVs = make([]float32, 0, n*2)
	}
	for _, idx := range b.indices {
		i := int(idx)
		a.Positions = append(a.Positions, b.positions[i*3], b.positions[i*3+1], b.positions[i*3+2])
		if a.UVs != nil {
			a.UVs = append(a.UVs, b.uvs[i*2], b.uvs[i*2+1])
		}
	}
	return FromAttributes(a)
}

func (b *Buffer) ensureNormals() {
	if !b.normalsStale {
		return
	}
	b.normals = computeVertexNormals(b.positions, b.indices, b.normals)
	b.normalsStale = false
}

func (b *Buffer) ensureBounds() {
	if !b.boundsStale {
		return
	}
	b.box, b.sphere = boundsOf(b.positions)
	b.boundsStale = false
}

func cloneFloats(s []float32) []float32 {
	if s == nil {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}

func cloneIndices(s []uint32) []uint32 {
	if s == nil {
		return nil
	}
	out := make([]uint32, len(s))
	copy(out, s)
	return out
}
