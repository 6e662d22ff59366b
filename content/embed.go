package content

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default.yaml
var defaultSpec []byte

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is the on-disk directory checked before the embedded copies.
const Dir = "content"

// DefaultFile is the on-disk copy of the embedded default content.
var DefaultFile = filepath.Join(Dir, "default.yaml")

// Load reads the content file at path. An empty path reads DefaultFile when
// it exists on disk and the embedded default otherwise.
func Load(path string) (*Spec, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return Parse(defaultSpec)
		}
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", path, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return spec, nil
}

// LoadScript returns a motion script, preferring the on-disk copy so edits
// are picked up by hot reload.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := ScriptsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("content: script %s: %w", name, err)
	}
	return data, nil
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(strings.TrimSpace(path))
	if after, ok := strings.CutPrefix(s, "content/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}
