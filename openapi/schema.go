package openapi

import (
	json "github.com/goccy/go-json"
)

// JSON Schema primitive type names
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// SchemaRefPrefix is the JSON pointer prefix of component schemas.
const SchemaRefPrefix = "#/components/schemas/"

// Schema represents a JSON Schema node as used by OAS 3.0.
//
// Properties distinguishes nil (absent) from an empty map: an object node
// created without members still serializes "properties: {}".
type Schema struct {
	Ref     string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Dialect string `yaml:"$schema,omitempty" json:"$schema,omitempty"` // JSON Schema draft URI

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items      *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	OneOf      []*Schema          `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
}

// NewObjectSchema returns {type: object, properties: {}}.
func NewObjectSchema() *Schema {
	return &Schema{Type: TypeObject, Properties: make(map[string]*Schema)}
}

// NewArraySchema returns {type: array, items: items}.
func NewArraySchema(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// RefTo returns a schema that references the named component schema.
func RefTo(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}

// schemaJSON mirrors Schema with a pointer-to-map Properties field so an
// empty, non-nil map survives omitempty.
type schemaJSON struct {
	Ref         string              `json:"$ref,omitempty"`
	Dialect     string              `json:"$schema,omitempty"`
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Default     any                 `json:"default,omitempty"`
	Example     any                 `json:"example,omitempty"`
	Type        string              `json:"type,omitempty"`
	Format      string              `json:"format,omitempty"`
	Properties  *map[string]*Schema `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
	Items       *Schema             `json:"items,omitempty"`
	OneOf       []*Schema           `json:"oneOf,omitempty"`
}

// MarshalJSON keeps empty, non-nil property maps in the output.
func (s *Schema) MarshalJSON() ([]byte, error) {
	out := schemaJSON{
		Ref:         s.Ref,
		Dialect:     s.Dialect,
		Title:       s.Title,
		Description: s.Description,
		Default:     s.Default,
		Example:     s.Example,
		Type:        s.Type,
		Format:      s.Format,
		Required:    s.Required,
		Items:       s.Items,
		OneOf:       s.OneOf,
	}
	if s.Properties != nil {
		out.Properties = &s.Properties
	}
	return json.Marshal(out)
}
