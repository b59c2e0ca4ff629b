package editor

import (
	"fmt"
	"strings"

	"blander/internal/selection"
)

// Intent is a discrete user action reachable from the keyboard or the console.
type Intent int

const (
	IntentNone Intent = iota
	IntentUndo
	IntentRedo
	IntentToggleEdit
	IntentVertexMode
	IntentFaceMode
	IntentClearComponents
	IntentTranslate
	IntentRotate
	IntentScale
	IntentDelete
	IntentSubdivide
)

var intentNames = map[Intent]string{
	IntentUndo:            "undo",
	IntentRedo:            "redo",
	IntentToggleEdit:      "toggle_edit",
	IntentVertexMode:      "vertex_mode",
	IntentFaceMode:        "face_mode",
	IntentClearComponents: "clear_components",
	IntentTranslate:       "translate",
	IntentRotate:          "rotate",
	IntentScale:           "scale",
	IntentDelete:          "delete",
	IntentSubdivide:       "subdivide",
}

func (i Intent) String() string {
	if n, ok := intentNames[i]; ok {
		return n
	}
	return "none"
}

// ParseIntent maps a name such as "toggle_edit" to its Intent.
func ParseIntent(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range intentNames {
		if n == name {
			return i, nil
		}
	}
	return IntentNone, fmt.Errorf("unknown intent %q", name)
}

// Chord is a key name plus the shift modifier, written "z" or "shift+z".
type Chord struct {
	Key   string
	Shift bool
}

func (c Chord) String() string {
	if c.Shift {
		return "shift+" + c.Key
	}
	return c.Key
}

// ParseChord parses "z", "shift+z" or "Tab".
func ParseChord(s string) (Chord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var c Chord
	if rest, ok := strings.CutPrefix(s, "shift+"); ok {
		c.Shift = true
		s = rest
	}
	if s == "" {
		return Chord{}, fmt.Errorf("empty key chord")
	}
	c.Key = s
	return c, nil
}

// Keymap binds chords to intents.
type Keymap map[Chord]Intent

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		{Key: "z"}:              IntentUndo,
		{Key: "z", Shift: true}: IntentRedo,
		{Key: "tab"}:            IntentToggleEdit,
		{Key: "escape"}:         IntentClearComponents,
		{Key: "1"}:              IntentVertexMode,
		{Key: "3"}:              IntentFaceMode,
		{Key: "g"}:              IntentTranslate,
		{Key: "r"}:              IntentRotate,
		{Key: "s"}:              IntentScale,
		{Key: "x"}:              IntentDelete,
		{Key: "delete"}:         IntentDelete,
	}
}

// ParseKeymap builds a keymap from chord → intent-name pairs layered over the defaults.
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := DefaultKeymap()
	for chord, name := range bindings {
		c, err := ParseChord(chord)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", chord, err)
		}
		i, err := ParseIntent(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", chord, err)
		}
		km[c] = i
	}
	return km, nil
}

// Resolve returns the intent bound to c. A shifted chord without its own binding falls back to
// the unshifted one.
func (km Keymap) Resolve(c Chord) Intent {
	if i, ok := km[c]; ok {
		return i
	}
	if c.Shift {
		return km[Chord{Key: c.Key}]
	}
	return IntentNone
}

// HandleKey resolves c through km and dispatches the intent. It reports whether the key was
// consumed.
func (s *Session) HandleKey(km Keymap, c Chord) bool {
	return s.Dispatch(km.Resolve(c))
}

// Dispatch performs intent i when its precondition holds and reports whether it did.
func (s *Session) Dispatch(i Intent) bool {
	switch i {
	case IntentUndo:
		s.Undo()
		return true
	case IntentRedo:
		s.Redo()
		return true
	case IntentToggleEdit:
		if s.selected == nil {
			return false
		}
		s.ToggleEditMode()
		return true
	case IntentVertexMode:
		return s.SetComponentMode(selection.Vertex)
	case IntentFaceMode:
		return s.SetComponentMode(selection.Face)
	case IntentClearComponents:
		return s.ClearComponentSelection()
	case IntentTranslate:
		s.SetTransformMode(Translate)
		return true
	case IntentRotate:
		s.SetTransformMode(Rotate)
		return true
	case IntentScale:
		s.SetTransformMode(Scale)
		return true
	case IntentDelete:
		return s.DeleteSelected()
	case IntentSubdivide:
		return s.Subdivide()
	}
	return false
}
