package primitives

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a primitive kind name is not one of Kinds.
var ErrUnknownKind = errors.New("unknown primitive kind")

// Kind tags the primitive an entity was created from.
type Kind string

const (
	Cube     Kind = "cube"
	Sphere   Kind = "sphere"
	Cylinder Kind = "cylinder"
	Plane    Kind = "plane"
)

// Kinds lists every primitive kind in menu order.
func Kinds() []Kind {
	return []Kind{Cube, Sphere, Cylinder, Plane}
}

// ParseKind maps a name such as "cube" or "Cube" to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Label returns the capitalized display form, e.g. "Cube". It prefixes generated entity names.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Def is the YAML definition for a primitive's geometry (e.g. an entry under primitives: in
// config/editor.yaml). Zero fields fall back to the built-in default for Type.
// Size is width/height/depth for cubes and width/height for planes. Segments are
// width/height segments for spheres, radial/height segments for cylinders and grid
// segments for cubes and planes.
type Def struct {
	Type         Kind       `yaml:"type"`
	Size         [3]float32 `yaml:"size,omitempty"`
	Radius       float32    `yaml:"radius,omitempty"`
	RadiusTop    float32    `yaml:"radius_top,omitempty"`
	RadiusBottom float32    `yaml:"radius_bottom,omitempty"`
	Height       float32    `yaml:"height,omitempty"`
	Segments     [2]int     `yaml:"segments,omitempty"`
}

// ParseDefs decodes a YAML list of definitions and validates their kinds.
func ParseDefs(data []byte) ([]Def, error) {
	var defs []Def
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse primitive defs: %w", err)
	}
	for i, d := range defs {
		k, err := ParseKind(string(d.Type))
		if err != nil {
			return nil, fmt.Errorf("primitive def %d: %w", i, err)
		}
		defs[i].Type = k
	}
	return defs, nil
}
