//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// coverNames lists album art base names in priority order.
var coverNames = []string{"cover", "folder", "album", "front"}

// coverExts lists accepted image extensions in priority order.
var coverExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// FindAlbumArt looks for album art next to the source file. Names are matched
// case-insensitively. Returns the path to the art file, or empty string if
// none is found.
func FindAlbumArt(sourcePath string) string {
	dir := filepath.Dir(sourcePath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if _, ok := files[lower]; !ok {
			files[lower] = e.Name()
		}
	}

	for _, name := range coverNames {
		for _, ext := range coverExts {
			if actual, ok := files[name+ext]; ok {
				return filepath.Join(dir, actual)
			}
		}
	}
	return ""
}
