package theme

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

//go:embed themes.toml
var builtinTOML string

// Registry is an immutable set of named themes. It is safe for concurrent
// use; nothing mutates it after construction.
type Registry struct {
	themes map[string]Theme
	names  []string
}

// NewRegistry builds a registry from definitions keyed by display name.
// A definition named Default is required; slots a definition leaves empty
// are inherited from it.
func NewRegistry(defs map[string]Theme) (*Registry, error) {
	var base Theme
	found := false
	for name, def := range defs {
		if key(name) == key(DefaultName) {
			base, found = def, true
		}
	}
	if !found {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme set has no %q theme", DefaultName)
	}
	base.Name = DefaultName
	if !base.complete() {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "theme %q must define every slot", DefaultName)
	}

	r := &Registry{themes: make(map[string]Theme, len(defs))}
	for name, def := range defs {
		if def.Name == "" {
			def.Name = name
		}
		if err := def.validate(); err != nil {
			return nil, err
		}
		k := key(def.Name)
		if _, dup := r.themes[k]; dup {
			return nil, errors.New(errors.ErrCodeInvalidTheme, "duplicate theme %q", def.Name)
		}
		r.themes[k] = def.inherit(base)
		r.names = append(r.names, def.Name)
	}
	slices.Sort(r.names)
	return r, nil
}

var builtin = sync.OnceValues(func() (*Registry, error) {
	defs, err := decodeTOML(builtinTOML)
	if err != nil {
		return nil, fmt.Errorf("builtin themes: %w", err)
	}
	return NewRegistry(defs)
})

// Builtin returns the registry of embedded themes. It is parsed once.
func Builtin() *Registry {
	r, err := builtin()
	if err != nil {
		panic(err)
	}
	return r
}

func decodeTOML(data string) (map[string]Theme, error) {
	var defs map[string]Theme
	if _, err := toml.Decode(data, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Lookup returns the named theme, or Default when the name is unknown.
func (r *Registry) Lookup(name string) Theme {
	if t, ok := r.themes[key(name)]; ok {
		return t
	}
	return r.themes[key(DefaultName)]
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.themes[key(name)]
	return ok
}

// Resolve looks up name and merges the overrides onto a copy of it.
// Unknown names resolve to Default; only malformed overrides fail.
func (r *Registry) Resolve(name string, o Overrides) (Theme, error) {
	return r.Lookup(name).Apply(o)
}

// Names returns the display names of all themes, sorted.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered themes.
func (r *Registry) Len() int { return len(r.themes) }
