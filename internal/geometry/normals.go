package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// computeVertexNormals returns per-vertex normals for positions. Indexed geometry accumulates the
// area-weighted face normals of every triangle sharing a vertex; a flat triangle list gives each
// corner its own face normal. dst is reused when it has the right length.
func computeVertexNormals(positions []float32, indices []uint32, dst []float32) []float32 {
	if len(dst) != len(positions) {
		dst = make([]float32, len(positions))
	} else {
		clear(dst)
	}
	vertex := func(i int) mgl32.Vec3 {
		return mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
	}
	add := func(i int, n mgl32.Vec3) {
		dst[i*3] += n[0]
		dst[i*3+1] += n[1]
		dst[i*3+2] += n[2]
	}
	faceNormal := func(a, b, c int) mgl32.Vec3 {
		pa, pb, pc := vertex(a), vertex(b), vertex(c)
		return pc.Sub(pb).Cross(pa.Sub(pb))
	}

	if len(indices) > 0 {
		for t := 0; t+2 < len(indices); t += 3 {
			a, b, c := int(indices[t]), int(indices[t+1]), int(indices[t+2])
			n := faceNormal(a, b, c)
			add(a, n)
			add(b, n)
			add(c, n)
		}
	} else {
		count := len(positions) / 3
		for a := 0; a+2 < count; a += 3 {
			n := faceNormal(a, a+1, a+2)
			add(a, n)
			add(a+1, n)
			add(a+2, n)
		}
	}

	for i := 0; i+2 < len(dst); i += 3 {
		x, y, z := dst[i], dst[i+1], dst[i+2]
		l := math32.Sqrt(x*x + y*y + z*z)
		if l == 0 {
			continue
		}
		dst[i], dst[i+1], dst[i+2] = x/l, y/l, z/l
	}
	return dst
}
