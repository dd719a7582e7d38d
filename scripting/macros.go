package scripting

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed macros/*.tengo
var MacrosFS embed.FS

// LoadMacro reads a macro from dir when it exists there and falls back to the
// bundled copy otherwise. The .tengo extension is optional.
func LoadMacro(dir, name string) ([]byte, error) {
	clean := cleanMacroPath(name)
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return MacrosFS.ReadFile(path.Join("macros", clean))
}

// BundledMacros lists the embedded macro names without extension.
func BundledMacros() []string {
	entries, err := MacrosFS.ReadDir("macros")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	sort.Strings(names)
	return names
}

func cleanMacroPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "macros/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return s
}
