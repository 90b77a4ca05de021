package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

// Load returns a registry holding the built-in themes plus every theme
// definition found in dir. Files define one theme each; the theme name is
// the file's "name" field or, when absent, its capitalized base name.
// Supported extensions are .toml, .yaml, .yml and .json. A definition with
// the same name as a built-in theme replaces it.
//
// Load is meant to run once at startup; the returned registry is read-only.
func Load(dir string) (*Registry, error) {
	defs, err := decodeTOML(builtinTOML)
	if err != nil {
		return nil, fmt.Errorf("builtin themes: %w", err)
	}
	if dir == "" {
		return NewRegistry(defs)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read theme dir: %w", err)
	}

	byKey := make(map[string]string, len(defs))
	for name := range defs {
		byKey[key(name)] = name
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		def, ok, err := decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", e.Name(), err)
		}
		if !ok {
			continue
		}
		if def.Name == "" {
			def.Name = displayName(e.Name())
		}
		if def.Name == "" {
			continue
		}
		if err := errors.ValidateThemeName(def.Name); err != nil {
			return nil, fmt.Errorf("theme %s: %w", e.Name(), err)
		}
		if prev, exists := byKey[key(def.Name)]; exists {
			delete(defs, prev)
		}
		defs[def.Name] = def
		byKey[key(def.Name)] = def.Name
	}
	return NewRegistry(defs)
}

// decodeFile parses one theme definition. ok is false for files with an
// unsupported extension.
func decodeFile(path string) (def Theme, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, false, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &def)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	case ".json":
		err = json.Unmarshal(data, &def)
	default:
		return Theme{}, false, nil
	}
	return def, err == nil, err
}

// displayName turns "solarized.toml" into "Solarized".
func displayName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		return base
	}
	return strings.ToUpper(base[:1]) + strings.ToLower(base[1:])
}
