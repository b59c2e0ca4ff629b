// Package selection tracks component (vertex or face) selections during mesh editing and
// implements the modifier-driven multi-select protocol: shift adds, ctrl/cmd toggles and a
// plain click replaces.
package selection

import (
	"fmt"
	"slices"
	"strings"
)

// Mode is the component granularity of edit mode.
type Mode int

const (
	Vertex Mode = iota
	Face
)

func (m Mode) String() string {
	if m == Face {
		return "face"
	}
	return "vertex"
}

// ParseMode maps "vertex" or "face" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "vertex":
		return Vertex, nil
	case "face":
		return Face, nil
	}
	return 0, fmt.Errorf("unknown component mode %q", s)
}

// Key identifies one component. A vertex key holds the vertex index; a face key is derived
// from the face's vertex triple.
type Key struct {
	Mode  Mode
	Verts [3]int
}

// VertexKey returns the key of vertex i.
func VertexKey(i int) Key {
	return Key{Mode: Vertex, Verts: [3]int{i, -1, -1}}
}

// FaceKey returns the key of the face with vertices tri.
func FaceKey(tri [3]int) Key {
	return Key{Mode: Face, Verts: tri}
}

// Vertices returns the vertex indices the component touches.
func (k Key) Vertices() []int {
	if k.Mode == Vertex {
		return []int{k.Verts[0]}
	}
	return k.Verts[:]
}

func (k Key) String() string {
	if k.Mode == Vertex {
		return fmt.Sprintf("v%d", k.Verts[0])
	}
	return fmt.Sprintf("f%d-%d-%d", k.Verts[0], k.Verts[1], k.Verts[2])
}

// Modifiers are the keyboard modifiers held during a click.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Meta  bool
}

// None reports whether no modifier is held.
func (m Modifiers) None() bool { return !m.Shift && !m.Ctrl && !m.Meta }

// Toggle reports whether the click toggles membership (ctrl or cmd).
func (m Modifiers) Toggle() bool { return m.Ctrl || m.Meta }

// Additive reports whether the click adds to the selection (shift without ctrl or cmd).
func (m Modifiers) Additive() bool { return m.Shift && !m.Toggle() }

// Set is an insertion-ordered set of component keys.
type Set struct {
	keys []Key
}

// Click applies one helper click with the given modifiers.
func (s *Set) Click(k Key, m Modifiers) {
	switch {
	case m.Toggle():
		s.Toggle(k)
	case m.Additive():
		s.Add(k)
	default:
		s.Replace(k)
	}
}

// Add inserts k if missing.
func (s *Set) Add(k Key) {
	if !s.Has(k) {
		s.keys = append(s.keys, k)
	}
}

// Remove deletes k if present.
func (s *Set) Remove(k Key) {
	if i := slices.Index(s.keys, k); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
}

// Toggle flips membership of k.
func (s *Set) Toggle(k Key) {
	if s.Has(k) {
		s.Remove(k)
		return
	}
	s.keys = append(s.keys, k)
}

// Replace makes k the only member.
func (s *Set) Replace(k Key) {
	s.keys = append(s.keys[:0], k)
}

// Clear empties the set.
func (s *Set) Clear() { s.keys = s.keys[:0] }

// Has reports whether k is selected.
func (s *Set) Has(k Key) bool { return slices.Contains(s.keys, k) }

// Len returns the number of selected components.
func (s *Set) Len() int { return len(s.keys) }

// Keys returns a copy of the selected keys in selection order.
func (s *Set) Keys() []Key { return slices.Clone(s.keys) }

// Vertices returns the distinct vertex indices touched by the selection, in first-seen order.
// Vertices shared by several selected faces appear once.
func (s *Set) Vertices() []int {
	var out []int
	seen := map[int]bool{}
	for _, k := range s.keys {
		for _, v := range k.Vertices() {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
