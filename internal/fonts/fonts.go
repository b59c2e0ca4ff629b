// Package fonts finds overlay font files on disk. Loading them is left to the renderer.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns the directories searched for fonts, relative to the working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the font files under dir as slash-separated paths relative to dir, sorted.
// A missing dir yields no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(filepath.Clean(dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	slices.Sort(out)
	return out, err
}

// Pick returns the font to use from dirs: the first file whose name contains prefer
// (case-insensitive), else the first file of the first directory that has any.
func Pick(dirs []string, prefer string) (string, bool) {
	prefer = strings.ToLower(prefer)
	var fallback string
	for _, dir := range dirs {
		files, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			full := filepath.Join(dir, filepath.FromSlash(f))
			if prefer != "" && strings.Contains(strings.ToLower(filepath.Base(f)), prefer) {
				return full, true
			}
			if fallback == "" {
				fallback = full
			}
		}
	}
	return fallback, fallback != ""
}
