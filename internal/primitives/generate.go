package primitives

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/geometry"
)

// meshBuilder accumulates indexed attribute data before it is handed to geometry.FromAttributes.
type meshBuilder struct {
	a     geometry.Attributes
	count uint32
}

func (m *meshBuilder) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	m.a.Positions = append(m.a.Positions, p[0], p[1], p[2])
	m.a.Normals = append(m.a.Normals, n[0], n[1], n[2])
	m.a.UVs = append(m.a.UVs, u, v)
	m.count++
	return m.count - 1
}

func (m *meshBuilder) tri(a, b, c uint32) {
	m.a.Indices = append(m.a.Indices, a, b, c)
}

func (m *meshBuilder) build() *geometry.Buffer {
	return geometry.FromAttributes(m.a)
}

// Box returns an indexed box centred on the origin. Each side is a grid of segX×segY quads with
// its own vertices, so a 1-segment box has 24 vertices and 12 triangles.
func Box(width, height, depth float32, segX, segY int) *geometry.Buffer {
	segX, segY = max(segX, 1), max(segY, 1)
	m := &meshBuilder{}
	// axes: u, v, w index into xyz; udir/vdir flip the grid; the face sits at w = depth/2
	side := func(u, v, w int, udir, vdir, width, height, depth float32) {
		half := [2]float32{width / 2, height / 2}
		sw, sh := width/float32(segX), height/float32(segY)
		start := m.count
		for iy := 0; iy <= segY; iy++ {
			y := float32(iy)*sh - half[1]
			for ix := 0; ix <= segX; ix++ {
				x := float32(ix)*sw - half[0]
				var p, n mgl32.Vec3
				p[u] = x * udir
				p[v] = y * vdir
				p[w] = depth / 2
				if depth > 0 {
					n[w] = 1
				} else {
					n[w] = -1
				}
				m.vertex(p, n, float32(ix)/float32(segX), 1-float32(iy)/float32(segY))
			}
		}
		row := uint32(segX + 1)
		for iy := 0; iy < segY; iy++ {
			for ix := 0; ix < segX; ix++ {
				a := start + uint32(ix) + row*uint32(iy)
				b := start + uint32(ix) + row*uint32(iy+1)
				c := start + uint32(ix+1) + row*uint32(iy+1)
				d := start + uint32(ix+1) + row*uint32(iy)
				m.tri(a, b, d)
				m.tri(b, c, d)
			}
		}
	}
	const x, y, z = 0, 1, 2
	side(z, y, x, -1, -1, depth, height, width)
	side(z, y, x, 1, -1, depth, height, -width)
	side(x, z, y, 1, 1, width, depth, height)
	side(x, z, y, 1, -1, width, depth, -height)
	side(x, y, z, 1, -1, width, height, depth)
	side(x, y, z, -1, -1, width, height, -depth)
	return m.build()
}

// UVSphere returns an indexed latitude/longitude sphere. The pole rows keep one triangle per
// segment.
func UVSphere(radius float32, widthSegments, heightSegments int) *geometry.Buffer {
	widthSegments, heightSegments = max(widthSegments, 3), max(heightSegments, 2)
	m := &meshBuilder{}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}
		grid[iy] = make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi, theta := u*2*math32.Pi, v*math32.Pi
			p := mgl32.Vec3{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			}
			n := p
			if l := p.Len(); l > 0 {
				n = p.Mul(1 / l)
			}
			grid[iy][ix] = m.vertex(p, n, u+uOffset, 1-v)
		}
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.tri(a, b, d)
			}
			if iy != heightSegments-1 {
				m.tri(b, c, d)
			}
		}
	}
	return m.build()
}

// CappedCylinder returns an indexed cylinder (or cone when a radius is zero) centred on the
// origin with its axis along Y, closed by a top and a bottom cap.
func CappedCylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int) *geometry.Buffer {
	radialSegments, heightSegments = max(radialSegments, 3), max(heightSegments, 1)
	m := &meshBuilder{}
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	rows := make([][]uint32, heightSegments+1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		rows[y] = make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			theta := u * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			p := mgl32.Vec3{radius * sin, -v*height + half, radius * cos}
			n := mgl32.Vec3{sin, slope, cos}.Normalize()
			rows[y][x] = m.vertex(p, n, u, 1-v)
		}
	}
	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			a := rows[y][x]
			b := rows[y+1][x]
			c := rows[y+1][x+1]
			d := rows[y][x+1]
			if radiusTop > 0 || y != 0 {
				m.tri(a, b, d)
			}
			if radiusBottom > 0 || y != heightSegments-1 {
				m.tri(b, c, d)
			}
		}
	}

	addCap := func(top bool) {
		radius, sign := radiusBottom, float32(-1)
		if top {
			radius, sign = radiusTop, 1
		}
		if radius <= 0 {
			return
		}
		n := mgl32.Vec3{0, sign, 0}
		centers := m.count
		for x := 1; x <= radialSegments; x++ {
			m.vertex(mgl32.Vec3{0, half * sign, 0}, n, 0.5, 0.5)
		}
		rim := m.count
		for x := 0; x <= radialSegments; x++ {
			theta := float32(x) / float32(radialSegments) * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			m.vertex(mgl32.Vec3{radius * sin, half * sign, radius * cos}, n, cos*0.5+0.5, sin*0.5*sign+0.5)
		}
		for x := 0; x < radialSegments; x++ {
			c := centers + uint32(x)
			i := rim + uint32(x)
			if top {
				m.tri(i, i+1, c)
			} else {
				m.tri(i+1, i, c)
			}
		}
	}
	addCap(true)
	addCap(false)
	return m.build()
}

// Quad returns an indexed plane in the XY plane facing +Z, centred on the origin.
func Quad(width, height float32, segX, segY int) *geometry.Buffer {
	segX, segY = max(segX, 1), max(segY, 1)
	m := &meshBuilder{}
	sw, sh := width/float32(segX), height/float32(segY)
	for iy := 0; iy <= segY; iy++ {
		y := float32(iy)*sh - height/2
		for ix := 0; ix <= segX; ix++ {
			x := float32(ix)*sw - width/2
			m.vertex(mgl32.Vec3{x, -y, 0}, mgl32.Vec3{0, 0, 1}, float32(ix)/float32(segX), 1-float32(iy)/float32(segY))
		}
	}
	row := uint32(segX + 1)
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix) + row*uint32(iy)
			b := uint32(ix) + row*uint32(iy+1)
			c := uint32(ix+1) + row*uint32(iy+1)
			d := uint32(ix+1) + row*uint32(iy)
			m.tri(a, b, d)
			m.tri(b, c, d)
		}
	}
	return m.build()
}
