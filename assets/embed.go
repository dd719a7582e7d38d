// Package assets resolves tileset ids to images on disk or in the binary.
package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTileset is the id of the tileset bundled with the editor.
const DefaultTileset = "tiles.png"

//go:embed *.png
var bundledFS embed.FS

// Bundled returns a registry over the embedded tilesets.
func Bundled() (*Registry, error) {
	return NewRegistry(bundledFS)
}

// Open returns a registry for dir layered over the bundled tilesets. Ids
// found in dir shadow bundled ones. A missing dir yields only the bundled set.
func Open(dir string) (*Registry, error) {
	if dir == "" {
		return Bundled()
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Bundled()
	}
	return NewRegistry(os.DirFS(dir), bundledFS)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".bmp", ".webp":
		return true
	}
	return false
}
