package schemagen

import (
	"regexp"
	"slices"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/fieldpath"
	"github.com/erraggy/apidoc2oas/openapi"
)

// deepNestedRegex matches descriptions produced by apidoc for array paths
// nested two levels deep ("list[items[id]"); such rows cannot be placed.
var deepNestedRegex = regexp.MustCompile(`(<p>)*\[\w+\[\w+`)

// MergeOption configures a Merge call.
type MergeOption func(*mergeConfig)

type mergeConfig struct {
	logger apidoc.Logger
}

// WithLogger sets the logger used to report skipped rows and created containers.
func WithLogger(l apidoc.Logger) MergeOption {
	return func(cfg *mergeConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// merger holds the state of a single Merge call.
type merger struct {
	root   *openapi.Schema
	mounts map[string]*openapi.Schema
	logger apidoc.Logger

	virtualRoot    string
	hasVirtualRoot bool
}

// Merge grafts fields onto root and returns root.
//
// Fields are applied in order. Each one is attached to the container named by
// its path prefix; see the package documentation for the precedence rules.
func Merge(fields []apidoc.DocumentedField, root *openapi.Schema, opts ...MergeOption) *openapi.Schema {
	cfg := &mergeConfig{logger: apidoc.NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	if root == nil {
		root = openapi.NewObjectSchema()
	}

	m := &merger{
		root:   root,
		mounts: map[string]*openapi.Schema{fieldpath.Root: root},
		logger: cfg.logger,
	}
	for i, f := range fields {
		m.apply(i, f)
	}
	return root
}

func (m *merger) apply(index int, f apidoc.DocumentedField) {
	if deepNestedRegex.MatchString(f.Description) {
		m.logger.Debug("skipping deeply nested field", "field", f.Path)
		return
	}

	property, containerID := fieldpath.Resolve(f.Path, fieldpath.Root)
	mountID := strings.TrimSuffix(f.Path, "[]")

	// The first object-array row names the root array itself.
	if f.Kind == apidoc.FieldObjectArray && index == 0 && m.rootIsObjectArray() {
		m.virtualRoot, m.hasVirtualRoot = property, true
		m.mounts[mountID] = m.root.Items
		return
	}

	container := m.container(containerID)

	switch f.Kind {
	case apidoc.FieldObjectArray:
		prop := container.Properties[property]
		switch {
		case prop != nil && prop.Type == openapi.TypeArray:
			if prop.Items == nil {
				prop.Items = openapi.NewObjectSchema()
			}
		case prop != nil && prop.Type == openapi.TypeObject:
			// An example showed a single element; it becomes the item schema.
			prop = openapi.NewArraySchema(prop)
			container.Properties[property] = prop
		default:
			prop = openapi.NewArraySchema(openapi.NewObjectSchema())
			container.Properties[property] = prop
		}
		m.mounts[mountID] = prop.Items

	case apidoc.FieldScalarArray:
		if _, ok := container.Properties[property]; !ok {
			container.Properties[property] = openapi.NewArraySchema(&openapi.Schema{
				Type:        f.Type,
				Description: f.Description,
				Example:     f.DefaultValue,
			})
		}

	case apidoc.FieldObject:
		prop, ok := container.Properties[property]
		if !ok || prop == nil || (f.Optional && prop.Type == openapi.TypeNull) {
			prop = openapi.NewObjectSchema()
			container.Properties[property] = prop
		}
		m.mounts[mountID] = prop

	case apidoc.FieldScalar:
		container.Properties[property] = &openapi.Schema{
			Type:        f.Type,
			Description: f.Description,
		}
	}

	if !f.Optional && !(m.hasVirtualRoot && property == m.virtualRoot) {
		container.Required = appendUnique(container.Required, property)
	}
}

// container returns the mounted node for id, creating it and its ancestors
// when a row references a container that was never declared.
func (m *merger) container(id string) *openapi.Schema {
	if node, ok := m.mounts[id]; ok {
		if node.Properties == nil {
			node.Properties = make(map[string]*openapi.Schema)
		}
		return node
	}

	property, parentID := fieldpath.Resolve(id, fieldpath.Root)
	parent := m.container(parentID)

	var node *openapi.Schema
	existing := parent.Properties[property]
	switch {
	case existing != nil && existing.Type == openapi.TypeObject:
		node = existing
	case existing != nil && existing.Type == openapi.TypeArray:
		if existing.Items == nil {
			existing.Items = openapi.NewObjectSchema()
		}
		node = existing.Items
	default:
		node = openapi.NewObjectSchema()
		parent.Properties[property] = node
		if fieldpath.IsNested(id) {
			m.logger.Debug("created undeclared nested container", "field", id, "parent", parentID)
		} else {
			m.logger.Debug("created undeclared container", "field", id)
		}
	}
	if node.Properties == nil {
		node.Properties = make(map[string]*openapi.Schema)
	}
	m.mounts[id] = node
	return node
}

func (m *merger) rootIsObjectArray() bool {
	return m.root.Type == openapi.TypeArray &&
		m.root.Items != nil &&
		m.root.Items.Type == openapi.TypeObject
}

func appendUnique(list []string, name string) []string {
	if slices.Contains(list, name) {
		return list
	}
	return append(list, name)
}
