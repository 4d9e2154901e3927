// Package schemainfer derives a JSON Schema skeleton from a decoded JSON value.
//
// The skeleton mirrors the shape of the example: objects become object
// schemas with one property per member, arrays get an items schema describing
// their elements, and scalars carry their JSON type. No required lists are
// produced; documented fields add those later.
package schemainfer

import (
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/erraggy/apidoc2oas/openapi"
)

// Draft04 is the dialect URI set on inferred root schemas.
const Draft04 = "http://json-schema.org/draft-04/schema#"

// Infer returns a schema describing v, titled title.
// v is expected to come from a decoder with UseNumber enabled; float64 values
// are accepted as well.
func Infer(title string, v any) *openapi.Schema {
	s := infer(v)
	s.Dialect = Draft04
	s.Title = title
	return s
}

func infer(v any) *openapi.Schema {
	switch val := v.(type) {
	case nil:
		return &openapi.Schema{Type: openapi.TypeNull}
	case bool:
		return &openapi.Schema{Type: openapi.TypeBoolean}
	case string:
		s := &openapi.Schema{Type: openapi.TypeString}
		if isDateTime(val) {
			s.Format = "date-time"
		}
		return s
	case json.Number:
		if isInteger(string(val)) {
			return &openapi.Schema{Type: openapi.TypeInteger}
		}
		return &openapi.Schema{Type: openapi.TypeNumber}
	case float64:
		if val == float64(int64(val)) {
			return &openapi.Schema{Type: openapi.TypeInteger}
		}
		return &openapi.Schema{Type: openapi.TypeNumber}
	case map[string]any:
		s := openapi.NewObjectSchema()
		for k, member := range val {
			s.Properties[k] = infer(member)
		}
		return s
	case []any:
		return openapi.NewArraySchema(inferItems(val))
	default:
		return &openapi.Schema{}
	}
}

// inferItems merges the element schemas of an array. Object elements are
// combined into one object schema; scalar elements of one type collapse to
// that type; anything else becomes a oneOf in first-seen order.
func inferItems(elems []any) *openapi.Schema {
	if len(elems) == 0 {
		return &openapi.Schema{}
	}

	var variants []*openapi.Schema
	for _, e := range elems {
		variants = mergeVariant(variants, infer(e))
	}
	if len(variants) == 1 {
		return variants[0]
	}
	return &openapi.Schema{OneOf: variants}
}

func mergeVariant(variants []*openapi.Schema, s *openapi.Schema) []*openapi.Schema {
	for _, existing := range variants {
		if existing.Type != s.Type {
			continue
		}
		switch s.Type {
		case openapi.TypeObject:
			mergeObject(existing, s)
		case openapi.TypeArray:
			existing.Items = mergeItems(existing.Items, s.Items)
		default:
			if existing.Format != s.Format {
				existing.Format = ""
			}
		}
		return variants
	}
	return append(variants, s)
}

func mergeObject(dst, src *openapi.Schema) {
	keys := make([]string, 0, len(src.Properties))
	for k := range src.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		prop := src.Properties[k]
		existing, ok := dst.Properties[k]
		switch {
		case !ok:
			dst.Properties[k] = prop
		case existing.Type == openapi.TypeNull && prop.Type != openapi.TypeNull:
			dst.Properties[k] = prop
		case existing.Type == openapi.TypeObject && prop.Type == openapi.TypeObject:
			mergeObject(existing, prop)
		}
	}
}

func mergeItems(a, b *openapi.Schema) *openapi.Schema {
	switch {
	case a == nil || (a.Type == "" && a.OneOf == nil):
		return b
	case b == nil || (b.Type == "" && b.OneOf == nil):
		return a
	}
	variants := mergeVariant([]*openapi.Schema{a}, b)
	if len(variants) == 1 {
		return variants[0]
	}
	return &openapi.Schema{OneOf: variants}
}

func isInteger(n string) bool {
	return !strings.ContainsAny(n, ".eE")
}

func isDateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	return false
}
