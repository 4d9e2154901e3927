package apidoc

import (
	"fmt"
	"strings"
)

// Endpoint is one apidoc record: a single verb on a single URL.
type Endpoint struct {
	Type        string        `json:"type"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Name        string        `json:"name"`
	Group       string        `json:"group"`
	GroupTitle  string        `json:"groupTitle,omitempty"`
	Description string        `json:"description,omitempty"`
	Version     string        `json:"version,omitempty"`
	Deprecated  any           `json:"deprecated,omitempty"`
	Header      *FieldSection `json:"header,omitempty"`
	Parameter   *FieldSection `json:"parameter,omitempty"`
	Query       []Field       `json:"query,omitempty"`
	Body        []Field       `json:"body,omitempty"`
	Success     *FieldSection `json:"success,omitempty"`
	Error       *FieldSection `json:"error,omitempty"`
}

// FieldSection groups documented fields by apidoc group name
// (e.g. "Parameter", "Header", "Success 200") together with literal examples.
type FieldSection struct {
	Fields   map[string][]Field `json:"fields,omitempty"`
	Examples []Example          `json:"examples,omitempty"`
}

// Field is one documented row as apidoc writes it.
type Field struct {
	Group        string `json:"group,omitempty"`
	Type         string `json:"type"`
	Optional     bool   `json:"optional"`
	Field        string `json:"field"`
	Description  string `json:"description,omitempty"`
	DefaultValue any    `json:"defaultValue,omitempty"`
}

// Example is a literal example attached to a section.
type Example struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// Project is the subset of api_project.json used for the info block.
type Project struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Group names apidoc uses for the sections read by the converter.
const (
	GroupHeader    = "Header"
	GroupParameter = "Parameter"
)

// FileType is the raw type tag that marks a binary upload body field.
const FileType = "File"

// Method returns the lower-cased HTTP verb.
func (e *Endpoint) Method() string {
	return strings.ToLower(e.Type)
}

// IsDeprecated reports whether the record carries a deprecation marker.
func (e *Endpoint) IsDeprecated() bool {
	switch v := e.Deprecated.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// HeaderFields returns the fields of the "Header" group.
func (e *Endpoint) HeaderFields() []Field {
	return e.Header.group(GroupHeader)
}

// PathFields returns the fields of the "Parameter" group.
func (e *Endpoint) PathFields() []Field {
	return e.Parameter.group(GroupParameter)
}

// RequestExamples returns the literal request examples.
func (e *Endpoint) RequestExamples() []Example {
	return e.Parameter.examples()
}

// SuccessExamples returns the literal success response examples.
func (e *Endpoint) SuccessExamples() []Example {
	return e.Success.examples()
}

// ErrorExamples returns the literal error response examples.
func (e *Endpoint) ErrorExamples() []Example {
	return e.Error.examples()
}

// SuccessFields returns the fields documented under "Success <code>".
func (e *Endpoint) SuccessFields(code int) ([]Field, bool) {
	if e.Success == nil {
		return nil, false
	}
	fields, ok := e.Success.Fields[SuccessGroup(code)]
	return fields, ok
}

// HasFileBody reports whether any body field is a binary upload.
func (e *Endpoint) HasFileBody() bool {
	for _, f := range e.Body {
		if f.Type == FileType {
			return true
		}
	}
	return false
}

// SuccessGroup returns the apidoc group name for success fields of a status code.
func SuccessGroup(code int) string {
	return fmt.Sprintf("Success %d", code)
}

func (s *FieldSection) group(name string) []Field {
	if s == nil {
		return nil
	}
	return s.Fields[name]
}

func (s *FieldSection) examples() []Example {
	if s == nil {
		return nil
	}
	return s.Examples
}
