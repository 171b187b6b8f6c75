// Package shapes loads shape sets from authored files and the built-in
// collection, normalizing every shape for the engine.
package shapes

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/shapes/formats"
)

// DefaultSet is used when no set is configured.
const DefaultSet = "classic"

//go:embed sets/*.yaml
var builtin embed.FS

// Set is a named collection of normalized shapes.
type Set struct {
	ID       string
	Name     string
	Shapes   []*core.Shape
	FilePath string // Empty for built-in sets
}

// ByName returns the shape with the given name.
func (s *Set) ByName(name string) (*core.Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Name() == name {
			return sh, true
		}
	}
	return nil, false
}

// Names returns the shape names in set order.
func (s *Set) Names() []string {
	names := make([]string, len(s.Shapes))
	for i, sh := range s.Shapes {
		names[i] = sh.Name()
	}
	return names
}

// BuiltinIDs lists the embedded sets in sorted order.
func BuiltinIDs() []string {
	entries, err := builtin.ReadDir("sets")
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids
}

// Builtin loads an embedded set by ID.
func Builtin(id string) (*Set, error) {
	data, err := builtin.ReadFile(path.Join("sets", id+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("shapes: unknown set %q (available: %s)", id, strings.Join(BuiltinIDs(), ", "))
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shapes: built-in set %s: %w", id, err)
	}
	if set.ID == "" {
		set.ID = id
	}
	return set, nil
}

// LoadFile loads and normalizes a shape file.
func LoadFile(p string) (*Set, error) {
	ext := strings.ToLower(filepath.Ext(p))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("shapes: unsupported extension %q", ext)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("shapes: reading file %s: %w", p, err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shapes: parsing file %s: %w", p, err)
	}
	if set.ID == "" {
		set.ID = strings.TrimSuffix(filepath.Base(p), ext)
	}
	if set.Name == "" {
		set.Name = set.ID
	}
	set.FilePath = p
	return set, nil
}

// Load resolves a set from configuration: a file path wins over a built-in ID.
// An empty ID selects DefaultSet.
func Load(id, file string) (*Set, error) {
	if file != "" {
		return LoadFile(file)
	}
	if id == "" {
		id = DefaultSet
	}
	return Builtin(id)
}

// Resolve treats arg as a file when it looks like a path and as a built-in
// set ID otherwise.
func Resolve(arg string) (*Set, error) {
	if isSupportedExtension(strings.ToLower(filepath.Ext(arg))) {
		return LoadFile(arg)
	}
	return Builtin(arg)
}

// Parse decodes YAML and normalizes every shape in it.
func Parse(data []byte) (*Set, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return nil, err
	}

	set := &Set{ID: parsed.ID, Name: parsed.Name}
	for _, ps := range parsed.Shapes {
		sh, err := core.Normalize(ps.Name, ps.Cells)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", ps.ID, err)
		}
		set.Shapes = append(set.Shapes, sh)
	}
	return set, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
