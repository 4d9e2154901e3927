package apidoc

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEndpoint = `{
  "type": "POST",
  "url": "/users/:id",
  "title": "Update <em>user</em>",
  "name": "UpdateUser",
  "group": "User",
  "deprecated": {"content": "use PatchUser"},
  "header": {"fields": {"Header": [{"group": "Header", "type": "String", "optional": false, "field": "Authorization", "description": "token"}]}},
  "parameter": {
    "fields": {"Parameter": [{"group": "Parameter", "type": "Number", "optional": false, "field": "id"}]},
    "examples": [{"title": "Request", "content": "{\"name\":\"a\"}", "type": "json"}]
  },
  "body": [{"group": "Body", "type": "File", "optional": false, "field": "avatar"}],
  "success": {
    "fields": {"Success 200": [{"group": "Success 200", "type": "String", "optional": false, "field": "name"}]},
    "examples": [{"title": "OK", "content": "HTTP/1.1 200 OK\n{}", "type": "json"}]
  }
}`

func TestEndpointAccessors(t *testing.T) {
	var ep Endpoint
	require.NoError(t, json.Unmarshal([]byte(sampleEndpoint), &ep))

	assert.Equal(t, "post", ep.Method())
	assert.True(t, ep.IsDeprecated())
	require.Len(t, ep.HeaderFields(), 1)
	assert.Equal(t, "Authorization", ep.HeaderFields()[0].Field)
	require.Len(t, ep.PathFields(), 1)
	assert.Equal(t, "Number", ep.PathFields()[0].Type)
	require.Len(t, ep.RequestExamples(), 1)
	assert.Equal(t, "Request", ep.RequestExamples()[0].Title)
	assert.Len(t, ep.SuccessExamples(), 1)
	assert.Empty(t, ep.ErrorExamples())
	assert.True(t, ep.HasFileBody())

	fields, ok := ep.SuccessFields(200)
	assert.True(t, ok)
	assert.Len(t, fields, 1)

	_, ok = ep.SuccessFields(201)
	assert.False(t, ok)
}

func TestEndpointMissingSections(t *testing.T) {
	ep := Endpoint{Type: "get"}

	assert.False(t, ep.IsDeprecated())
	assert.Nil(t, ep.HeaderFields())
	assert.Nil(t, ep.PathFields())
	assert.Nil(t, ep.RequestExamples())
	assert.Nil(t, ep.SuccessExamples())
	assert.False(t, ep.HasFileBody())

	_, ok := ep.SuccessFields(200)
	assert.False(t, ok)
}

func TestIsDeprecated(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"absent", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"object", map[string]any{"content": "gone"}, true},
		{"string", "yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := Endpoint{Deprecated: tt.value}
			assert.Equal(t, tt.want, ep.IsDeprecated())
		})
	}
}

func TestSuccessGroup(t *testing.T) {
	assert.Equal(t, "Success 200", SuccessGroup(200))
	assert.Equal(t, "Success 404", SuccessGroup(404))
}
