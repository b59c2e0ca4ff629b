package editor

import (
	"fmt"
	"strings"
)

// TransformMode is the operation the transform tool performs when dragged.
type TransformMode int

const (
	Translate TransformMode = iota
	Rotate
	Scale
)

func (m TransformMode) String() string {
	switch m {
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	}
	return "translate"
}

// ParseTransformMode maps "translate", "rotate" or "scale" to a TransformMode.
func ParseTransformMode(s string) (TransformMode, error) {
	switch strings.ToLower(s) {
	case "translate":
		return Translate, nil
	case "rotate":
		return Rotate, nil
	case "scale":
		return Scale, nil
	}
	return 0, fmt.Errorf("unknown transform mode %q", s)
}

// State is the selection and edit-mode state of a session.
type State int

const (
	Idle State = iota
	ObjectSelected
	ComponentEditing
)

func (s State) String() string {
	switch s {
	case ObjectSelected:
		return "object-selected"
	case ComponentEditing:
		return "component-editing"
	}
	return "idle"
}
