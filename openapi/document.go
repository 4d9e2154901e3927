package openapi

// Version is the OpenAPI version written to generated documents.
const Version = "3.0.3"

// Document represents an OpenAPI Specification 3.0 document.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
}

// NewDocument returns an empty document for the given info block.
func NewDocument(info *Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(Paths),
		Components: &Components{
			Schemas: make(map[string]*Schema),
		},
	}
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Server represents a Server object
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Components holds reusable objects. Only schemas are generated.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// DocumentStats contains statistical information about a generated document
type DocumentStats struct {
	PathCount      int
	OperationCount int
	SchemaCount    int
}

// Stats counts paths, operations and component schemas.
func (d *Document) Stats() DocumentStats {
	stats := DocumentStats{PathCount: len(d.Paths)}
	for _, item := range d.Paths {
		stats.OperationCount += len(item.Operations())
	}
	if d.Components != nil {
		stats.SchemaCount = len(d.Components.Schemas)
	}
	return stats
}
