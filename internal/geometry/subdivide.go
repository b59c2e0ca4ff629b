package geometry

import "github.com/go-gl/mathgl/mgl32"

// Subdivide returns a new non-indexed buffer in which every triangle of b is split into four:
// the three corner triangles, each made of one original vertex and its two adjacent edge
// midpoints, followed by the centre triangle formed by the midpoints. UVs, when present, follow
// the same midpoint rule. Midpoints shared by neighbouring triangles are not welded, so every
// output triangle owns its three vertices. b is left untouched.
func (b *Buffer) Subdivide() *Buffer {
	base := b.ToNonIndexed()
	defer base.Dispose()

	tris := base.VertexCount() / 3
	out := Attributes{Positions: make([]float32, 0, tris*4*9)}
	hasUV := base.HasUVs()
	if hasUV {
		out.UVs = make([]float32, 0, tris*4*6)
	}

	pushTri := func(p, q, r mgl32.Vec3) {
		out.Positions = append(out.Positions, p[0], p[1], p[2], q[0], q[1], q[2], r[0], r[1], r[2])
	}
	pushUV := func(p, q, r mgl32.Vec2) {
		out.UVs = append(out.UVs, p[0], p[1], q[0], q[1], r[0], r[1])
	}

	for t := 0; t < tris; t++ {
		i := t * 3
		v0, v1, v2 := base.Vertex(i), base.Vertex(i+1), base.Vertex(i+2)
		m01 := v0.Add(v1).Mul(0.5)
		m12 := v1.Add(v2).Mul(0.5)
		m20 := v2.Add(v0).Mul(0.5)

		pushTri(v0, m01, m20)
		pushTri(m01, v1, m12)
		pushTri(m20, m12, v2)
		pushTri(m01, m12, m20)

		if hasUV {
			u0, u1, u2 := base.UV(i), base.UV(i+1), base.UV(i+2)
			u01 := u0.Add(u1).Mul(0.5)
			u12 := u1.Add(u2).Mul(0.5)
			u20 := u2.Add(u0).Mul(0.5)

			pushUV(u0, u01, u20)
			pushUV(u01, u1, u12)
			pushUV(u20, u12, u2)
			pushUV(u01, u12, u20)
		}
	}

	result := FromAttributes(out)
	result.ensureNormals()
	result.ensureBounds()
	return result
}
