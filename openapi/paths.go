package openapi

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
)

// HTTP methods an OAS 3.0 path item can hold, lower-cased as they appear in documents.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// IsMethod reports whether method (in any case) can be stored on a path item.
func IsMethod(method string) bool {
	switch strings.ToLower(method) {
	case MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch, MethodTrace:
		return true
	}
	return false
}

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// SetOperation stores op under the given method, replacing any operation
// already there. It reports false when method is not an OAS 3.0 method.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch strings.ToLower(method) {
	case MethodGet:
		p.Get = op
	case MethodPut:
		p.Put = op
	case MethodPost:
		p.Post = op
	case MethodDelete:
		p.Delete = op
	case MethodOptions:
		p.Options = op
	case MethodHead:
		p.Head = op
	case MethodPatch:
		p.Patch = op
	case MethodTrace:
		p.Trace = op
	default:
		return false
	}
	return true
}

// Operations returns the defined operations keyed by lower-case method.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for method, op := range map[string]*Operation{
		MethodGet:     p.Get,
		MethodPut:     p.Put,
		MethodPost:    p.Post,
		MethodDelete:  p.Delete,
		MethodOptions: p.Options,
		MethodHead:    p.Head,
		MethodPatch:   p.Patch,
		MethodTrace:   p.Trace,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Responses   `yaml:"responses" json:"responses"`
	Deprecated  bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Parameter locations
const (
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInQuery  = "query"
)

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required" json:"required"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Media types produced by the converter
const (
	MediaTypeJSON        = "application/json"
	MediaTypeOctetStream = "application/octet-stream"
)

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content" json:"content"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Example represents an example object
type Example struct {
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Value   any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Response describes a single response from an API operation.
// Description is required by OAS 3.0 and is always written, even when empty.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// ResponseDefault is the key of the catch-all response.
const ResponseDefault = "default"

// Responses is a container for the expected responses of an operation.
// Codes are kept in registration order; selecting "the first 2xx response"
// depends on that order.
type Responses struct {
	codes  []string
	byCode map[string]*Response
}

// NewResponses returns an empty response container.
func NewResponses() *Responses {
	return &Responses{byCode: make(map[string]*Response)}
}

// Set registers resp under code. Re-registering a code replaces the response
// but keeps its original position.
func (r *Responses) Set(code string, resp *Response) {
	if r.byCode == nil {
		r.byCode = make(map[string]*Response)
	}
	if _, exists := r.byCode[code]; !exists {
		r.codes = append(r.codes, code)
	}
	r.byCode[code] = resp
}

// Get returns the response registered under code, or nil.
func (r *Responses) Get(code string) *Response {
	if r == nil {
		return nil
	}
	return r.byCode[code]
}

// Codes returns the registered codes in registration order.
func (r *Responses) Codes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.codes...)
}

// Len returns the number of registered responses.
func (r *Responses) Len() int {
	if r == nil {
		return 0
	}
	return len(r.codes)
}

// MarshalJSON writes responses as an object whose keys follow registration order.
func (r *Responses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, code := range r.codes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(code)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.byCode[code])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
