package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/geometry"
	"blander/internal/scene"
)

const (
	ambient = 0.28
	diffuse = 0.72
)

var lightDir = mgl32.Vec3{0.4, 1, 0.3}.Normalize()

type bakedTri struct {
	a, b, c rl.Vector3
	col     rl.Color
}

// bakedMesh is an entity's geometry flattened to world-space triangles with per-face lighting.
// It is rebuilt when the buffer version, transform or material changes.
type bakedMesh struct {
	stale     bool
	version   uint64
	transform scene.Transform
	material  scene.Material
	tris      []bakedTri
}

// meshCache holds one bakedMesh per geometry buffer. Entries are dropped when their buffer is
// disposed, which happens on delete, subdivide and restore.
type meshCache struct {
	entries map[*geometry.Buffer]*bakedMesh
}

func newMeshCache() *meshCache {
	return &meshCache{entries: make(map[*geometry.Buffer]*bakedMesh)}
}

func (mc *meshCache) get(e *scene.Entity) *bakedMesh {
	g := e.Geometry
	if g == nil || g.Disposed() {
		return nil
	}
	m, ok := mc.entries[g]
	if !ok {
		m = &bakedMesh{stale: true}
		mc.entries[g] = m
		g.OnRelease(func() { delete(mc.entries, g) })
	}
	if m.stale || m.version != g.Version() || m.transform != e.Transform || m.material != e.Material {
		m.bake(e)
	}
	return m
}

func (m *bakedMesh) bake(e *scene.Entity) {
	g := e.Geometry
	world := e.WorldMatrix()
	m.tris = m.tris[:0]
	for t := 0; t < g.TriangleCount(); t++ {
		idx := g.Triangle(t)
		a := mgl32.TransformCoordinate(g.Vertex(idx[0]), world)
		b := mgl32.TransformCoordinate(g.Vertex(idx[1]), world)
		c := mgl32.TransformCoordinate(g.Vertex(idx[2]), world)
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		if e.Material.Side != scene.BackSide {
			m.tris = append(m.tris, bakedTri{vec(a), vec(b), vec(c), shade(e.Material, n)})
		}
		if e.Material.Side != scene.FrontSide {
			m.tris = append(m.tris, bakedTri{vec(a), vec(c), vec(b), shade(e.Material, n.Mul(-1))})
		}
	}
	m.stale = false
	m.version = g.Version()
	m.transform = e.Transform
	m.material = e.Material
}

func (m *bakedMesh) draw() {
	for _, t := range m.tris {
		rl.DrawTriangle3D(t.a, t.b, t.c, t.col)
	}
}

func (m *bakedMesh) drawEdges(col rl.Color) {
	for _, t := range m.tris {
		rl.DrawLine3D(t.a, t.b, col)
		rl.DrawLine3D(t.b, t.c, col)
		rl.DrawLine3D(t.c, t.a, col)
	}
}

// shade lights the base colour with an ambient and one directional term, then adds emissive.
func shade(mat scene.Material, n mgl32.Vec3) rl.Color {
	k := ambient + diffuse*max(n.Dot(lightDir), 0)
	channel := func(shift uint) uint8 {
		v := float32((mat.Color>>shift)&0xff)*k + float32((mat.Emissive>>shift)&0xff)
		return uint8(min(v, 255))
	}
	return rl.NewColor(channel(16), channel(8), channel(0), 255)
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func color(c uint32, alpha uint8) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), alpha)
}
