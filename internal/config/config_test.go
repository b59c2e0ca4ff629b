package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blander/internal/primitives"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, 50, p.HistoryLimit)
	assert.Equal(t, uint32(0x4b5dff), p.HighlightEmissive)
	assert.True(t, p.GridVisible)
}

func TestParseLayersOverDefaults(t *testing.T) {
	p, err := Parse([]byte(`
history_limit: 10
highlight_emissive: 0x112233
grid_visible: false
face_helper_radius: 0
keys:
  e: toggle_edit
primitives:
  - type: sphere
    radius: 2
`))
	require.NoError(t, err)
	assert.Equal(t, 10, p.HistoryLimit)
	assert.Equal(t, uint32(0x112233), p.HighlightEmissive)
	assert.False(t, p.GridVisible)
	assert.Equal(t, float32(0.14), p.FaceHelperRadius)
	assert.Equal(t, float32(0.05), p.VertexHelperRadius)
	assert.Len(t, p.Palette, 5)
	assert.Equal(t, map[string]string{"e": "toggle_edit"}, p.Keys)

	d, ok := p.Registry().Def(primitives.Sphere)
	require.True(t, ok)
	assert.Equal(t, float32(2), d.Radius)
	assert.Equal(t, [2]int{32, 24}, d.Segments)
}

func TestParseInvalid(t *testing.T) {
	p, err := Parse([]byte("history_limit: [nope"))
	assert.Error(t, err)
	assert.Equal(t, Default(), p)

	_, err = Parse([]byte("primitives:\n  - type: torus\n"))
	assert.ErrorIs(t, err, primitives.ErrUnknownKind)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "editor.yaml")
	want := Default()
	want.HistoryLimit = 7
	want.ShowFPS = true
	want.Keys = map[string]string{"shift+d": "subdivide"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	require.NoError(t, Save(path, Default()))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("history_limit: 12\n"), 0644))
	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-w.Changes():
			if p.HistoryLimit == 12 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
