package schemagen

import (
	"maps"
	"slices"

	"github.com/erraggy/apidoc2oas/openapi"
)

// Registry holds the component schemas produced during one conversion run.
// Names are unique; registering a name again replaces the earlier schema.
//
// A Registry is not safe for concurrent use. Each conversion creates its own.
type Registry struct {
	schemas map[string]*openapi.Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*openapi.Schema)}
}

// Set registers s under name and reports whether an earlier schema was replaced.
func (r *Registry) Set(name string, s *openapi.Schema) bool {
	_, replaced := r.schemas[name]
	r.schemas[name] = s
	return replaced
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*openapi.Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.schemas))
}

// Schemas returns a copy of the name to schema mapping.
func (r *Registry) Schemas() map[string]*openapi.Schema {
	return maps.Clone(r.schemas)
}
