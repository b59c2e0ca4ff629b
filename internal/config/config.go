// Package config loads and saves editor preferences from config/editor.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"blander/internal/primitives"
	"blander/internal/scene"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/editor.yaml"

// Prefs holds editor preferences. Persisted across runs; scene contents are not.
type Prefs struct {
	HistoryLimit       int               `yaml:"history_limit"`
	HighlightEmissive  uint32            `yaml:"highlight_emissive"`
	Palette            []uint32          `yaml:"palette,flow"`
	VertexHelperRadius float32           `yaml:"vertex_helper_radius"`
	FaceHelperRadius   float32           `yaml:"face_helper_radius"`
	GridVisible        bool              `yaml:"grid_visible"`
	ShowFPS            bool              `yaml:"show_fps"`
	Keys               map[string]string `yaml:"keys,omitempty"`
	Primitives         []primitives.Def  `yaml:"primitives,omitempty"`
}

// Default returns the stock preferences (50 undo steps, grid on).
func Default() Prefs {
	return Prefs{
		HistoryLimit:       50,
		HighlightEmissive:  scene.HighlightEmissive,
		Palette:            append([]uint32(nil), scene.DefaultPalette...),
		VertexHelperRadius: 0.05,
		FaceHelperRadius:   0.14,
		GridVisible:        true,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error; an invalid file
// yields Default() and the parse error. Absent or zero numeric fields keep their defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes preferences from YAML layered over Default().
func Parse(data []byte) (Prefs, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse preferences: %w", err)
	}
	for i, d := range p.Primitives {
		k, err := primitives.ParseKind(string(d.Type))
		if err != nil {
			return Default(), fmt.Errorf("parse preferences: %w", err)
		}
		p.Primitives[i].Type = k
	}
	return p.normalize(), nil
}

func (p Prefs) normalize() Prefs {
	d := Default()
	if p.HistoryLimit <= 0 {
		p.HistoryLimit = d.HistoryLimit
	}
	if p.HighlightEmissive == 0 {
		p.HighlightEmissive = d.HighlightEmissive
	}
	if len(p.Palette) == 0 {
		p.Palette = d.Palette
	}
	if p.VertexHelperRadius <= 0 {
		p.VertexHelperRadius = d.VertexHelperRadius
	}
	if p.FaceHelperRadius <= 0 {
		p.FaceHelperRadius = d.FaceHelperRadius
	}
	return p
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Registry builds the primitive registry with the configured overrides.
func (p Prefs) Registry() *primitives.Registry {
	return primitives.NewRegistry(p.Primitives...)
}
