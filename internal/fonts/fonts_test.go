package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "Mono.otf"))
	touch(t, filepath.Join(dir, "readme.txt"))

	files, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Regular.TTF", "Mono.otf"}, files)

	files, err = ScanDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestPick(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(a, "Sans.ttf"))
	touch(t, filepath.Join(b, "JetBrainsMono.ttf"))

	got, ok := Pick([]string{a, b}, "mono")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(b, "JetBrainsMono.ttf"), got)

	got, ok = Pick([]string{a, b}, "serif")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(a, "Sans.ttf"), got)

	_, ok = Pick([]string{filepath.Join(a, "none")}, "")
	assert.False(t, ok)
}
