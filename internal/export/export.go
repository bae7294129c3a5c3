// Package export renders generated worlds into files: raster and vector
// maps, a legend, machine-readable JSON and diagnostic noise maps. Each
// format registers itself under a short name so callers can enable outputs
// individually.
package export

import (
	"sort"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

// Request bundles everything a format may need to render one artifact.
type Request struct {
	World *planet.World

	// Fields holds the per-cell intermediate signals in column-major
	// order. Only formats that declare NeedsFields read it.
	Fields []gen.FieldSample

	// Dir is the output directory; it must exist before rendering.
	Dir string
}

// RenderFunc writes one artifact for a generated world.
type RenderFunc func(req Request) error

// Format describes a registered output backend.
type Format struct {
	Name        string
	NeedsFields bool
	Render      RenderFunc
}

var formats = map[string]Format{}

// Register adds a format under its name. Empty names and nil renderers are
// ignored.
func Register(f Format) {
	if f.Name == "" || f.Render == nil {
		return
	}
	formats[f.Name] = f
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// Names lists the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
