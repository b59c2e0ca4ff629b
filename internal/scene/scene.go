// Package scene holds the flat collection of editable entities: identities, per-kind display
// counters and the rules for creating primitives with their default material and placement.
package scene

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"blander/internal/primitives"
)

// planeLift keeps planes just above the ground grid so they do not z-fight with it.
const planeLift = 0.01

// ColorPicker returns the base colour for a new primitive.
type ColorPicker func() uint32

// PaletteColor returns a picker choosing uniformly from palette with r.
func PaletteColor(palette []uint32, r *rand.Rand) ColorPicker {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return func() uint32 { return palette[r.IntN(len(palette))] }
}

// Scene owns the live entities. Identities are assigned from a monotonically increasing
// counter and never reused; display names use a per-kind counter.
type Scene struct {
	prims     *primitives.Registry
	pickColor ColorPicker

	entities []*Entity
	counters map[primitives.Kind]int
	nextID   int
}

// New returns an empty scene building geometry from prims and colouring it with pick.
func New(prims *primitives.Registry, pick ColorPicker) *Scene {
	if prims == nil {
		prims = primitives.NewRegistry()
	}
	if pick == nil {
		pick = PaletteColor(DefaultPalette, rand.New(rand.NewPCG(1, 2)))
	}
	s := &Scene{
		prims:     prims,
		pickColor: pick,
		nextID:    1,
	}
	s.resetCounters(nil)
	return s
}

// Add creates a primitive of kind k with the next identity and a name such as "Cube 2".
// Solids rest with their base on the ground; planes lie flat just above it, are double-sided
// and receive shadows.
func (s *Scene) Add(k primitives.Kind) (*Entity, error) {
	g, err := s.prims.Build(k)
	if err != nil {
		return nil, fmt.Errorf("add primitive: %w", err)
	}
	s.counters[k]++
	e := &Entity{
		ID:         s.nextID,
		Kind:       k,
		Name:       fmt.Sprintf("%s %d", k.Label(), s.counters[k]),
		Geometry:   g,
		Material:   defaultMaterial(s.pickColor()),
		Transform:  Identity(),
		CastShadow: true,
	}
	s.nextID++
	if k == primitives.Plane {
		e.Transform.Position = mgl32.Vec3{0, planeLift, 0}
		e.Transform.Rotation[0] = -math32.Pi / 2
		e.Material.Side = DoubleSide
		e.ReceiveShadow = true
	} else {
		e.Transform.Position = mgl32.Vec3{0, -g.Bounds().Min[1], 0}
	}
	s.entities = append(s.entities, e)
	return e, nil
}

// Insert appends an entity rebuilt from elsewhere (history restoration) keeping its identity.
func (s *Scene) Insert(e *Entity) {
	s.entities = append(s.entities, e)
	if _, ok := s.counters[e.Kind]; !ok {
		s.counters[e.Kind] = 0
	}
}

// Remove deletes the entity with the given identity and releases its geometry.
func (s *Scene) Remove(id int) bool {
	i := slices.IndexFunc(s.entities, func(e *Entity) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	s.entities[i].Dispose()
	s.entities = slices.Delete(s.entities, i, i+1)
	return true
}

// Clear releases every entity.
func (s *Scene) Clear() {
	for _, e := range s.entities {
		e.Dispose()
	}
	s.entities = nil
}

// Entities returns the live entities in insertion order. The slice must not be modified.
func (s *Scene) Entities() []*Entity { return s.entities }

// Len returns the number of live entities.
func (s *Scene) Len() int { return len(s.entities) }

// Find returns the entity with the given identity, or nil.
func (s *Scene) Find(id int) *Entity {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Counters returns a copy of the per-kind display counters.
func (s *Scene) Counters() map[primitives.Kind]int {
	return maps.Clone(s.counters)
}

// SetCounters replaces the display counters. Known kinds missing from c reset to zero.
func (s *Scene) SetCounters(c map[primitives.Kind]int) {
	s.resetCounters(c)
}

// NextID returns the identity the next Add will assign.
func (s *Scene) NextID() int { return s.nextID }

// SetNextID sets the identity counter. A value of zero or less is recomputed as one past the
// largest live identity.
func (s *Scene) SetNextID(n int) {
	if n <= 0 {
		n = 1
		for _, e := range s.entities {
			n = max(n, e.ID+1)
		}
	}
	s.nextID = n
}

// Primitives returns the registry used to build geometry.
func (s *Scene) Primitives() *primitives.Registry { return s.prims }

func (s *Scene) resetCounters(c map[primitives.Kind]int) {
	s.counters = make(map[primitives.Kind]int)
	for _, k := range primitives.Kinds() {
		s.counters[k] = c[k]
	}
	for k, n := range c {
		if _, ok := s.counters[k]; !ok {
			s.counters[k] = n
		}
	}
}
