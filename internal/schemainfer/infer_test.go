package schemainfer

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apidoc2oas/openapi"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestInferRoot(t *testing.T) {
	s := Infer("User", decode(t, `{"id": 1}`))
	assert.Equal(t, Draft04, s.Dialect)
	assert.Equal(t, "User", s.Title)
	assert.Equal(t, openapi.TypeObject, s.Type)
	assert.Nil(t, s.Required)
}

func TestInferScalars(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantType   string
		wantFormat string
	}{
		{"string", `"hello"`, openapi.TypeString, ""},
		{"date-time", `"2024-05-01T10:00:00Z"`, openapi.TypeString, "date-time"},
		{"date-time with fraction", `"2024-05-01T10:00:00.123+02:00"`, openapi.TypeString, "date-time"},
		{"plain date", `"2024-05-01"`, openapi.TypeString, ""},
		{"integer", `42`, openapi.TypeInteger, ""},
		{"negative integer", `-3`, openapi.TypeInteger, ""},
		{"number", `4.2`, openapi.TypeNumber, ""},
		{"exponent", `1e3`, openapi.TypeNumber, ""},
		{"boolean", `true`, openapi.TypeBoolean, ""},
		{"null", `null`, openapi.TypeNull, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := infer(decode(t, tt.json))
			assert.Equal(t, tt.wantType, s.Type)
			assert.Equal(t, tt.wantFormat, s.Format)
		})
	}
}

func TestInferFloat64(t *testing.T) {
	assert.Equal(t, openapi.TypeInteger, infer(float64(3)).Type)
	assert.Equal(t, openapi.TypeNumber, infer(3.5).Type)
}

func TestInferNestedObject(t *testing.T) {
	s := infer(decode(t, `{"user": {"name": "a", "tags": ["x", "y"]}, "deleted": null}`))

	require.Contains(t, s.Properties, "user")
	user := s.Properties["user"]
	assert.Equal(t, openapi.TypeObject, user.Type)
	assert.Equal(t, openapi.TypeString, user.Properties["name"].Type)

	tags := user.Properties["tags"]
	assert.Equal(t, openapi.TypeArray, tags.Type)
	require.NotNil(t, tags.Items)
	assert.Equal(t, openapi.TypeString, tags.Items.Type)

	assert.Equal(t, openapi.TypeNull, s.Properties["deleted"].Type)
}

func TestInferArrays(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := infer(decode(t, `[]`))
		assert.Equal(t, openapi.TypeArray, s.Type)
		assert.Equal(t, &openapi.Schema{}, s.Items)
	})

	t.Run("objects are merged", func(t *testing.T) {
		s := infer(decode(t, `[{"id": 1, "parent": null}, {"name": "b", "parent": {"id": 2}}]`))
		require.NotNil(t, s.Items)
		assert.Equal(t, openapi.TypeObject, s.Items.Type)
		assert.Len(t, s.Items.Properties, 3)
		assert.Equal(t, openapi.TypeInteger, s.Items.Properties["id"].Type)
		assert.Equal(t, openapi.TypeString, s.Items.Properties["name"].Type)
		assert.Equal(t, openapi.TypeObject, s.Items.Properties["parent"].Type)
	})

	t.Run("same scalar type", func(t *testing.T) {
		s := infer(decode(t, `[1, 2, 3]`))
		assert.Equal(t, &openapi.Schema{Type: openapi.TypeInteger}, s.Items)
	})

	t.Run("mixed types", func(t *testing.T) {
		s := infer(decode(t, `[1, "a", 2]`))
		require.NotNil(t, s.Items)
		assert.Empty(t, s.Items.Type)
		require.Len(t, s.Items.OneOf, 2)
		assert.Equal(t, openapi.TypeInteger, s.Items.OneOf[0].Type)
		assert.Equal(t, openapi.TypeString, s.Items.OneOf[1].Type)
	})

	t.Run("mixed string formats drop the format", func(t *testing.T) {
		s := infer(decode(t, `["2024-05-01T10:00:00Z", "soon"]`))
		assert.Equal(t, &openapi.Schema{Type: openapi.TypeString}, s.Items)
	})

	t.Run("nested arrays merge their items", func(t *testing.T) {
		s := infer(decode(t, `[[], [1]]`))
		require.NotNil(t, s.Items)
		assert.Equal(t, openapi.TypeArray, s.Items.Type)
		assert.Equal(t, &openapi.Schema{Type: openapi.TypeInteger}, s.Items.Items)
	})
}

func TestInferMarshalsLikeASkeleton(t *testing.T) {
	s := Infer("Thing", decode(t, `{"items": [{"id": 1}]}`))
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"title": "Thing",
		"type": "object",
		"properties": {
			"items": {"type": "array", "items": {"type": "object", "properties": {"id": {"type": "integer"}}}}
		}
	}`, string(data))
}
