package payload

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
		wantRaw  string
		want     any
	}{
		{
			name:     "status line and object",
			content:  "HTTP/1.1 201 Created\n{\"id\": 7}",
			wantCode: 201,
			wantRaw:  "{\"id\": 7}",
			want:     map[string]any{"id": json.Number("7")},
		},
		{
			name:     "bare object",
			content:  `{"ok": true}`,
			wantCode: 200,
			wantRaw:  `{"ok": true}`,
			want:     map[string]any{"ok": true},
		},
		{
			name:     "array body",
			content:  "HTTP/1.1 200 OK\n[1, 2]",
			wantCode: 200,
			wantRaw:  "[1, 2]",
			want:     []any{json.Number("1"), json.Number("2")},
		},
		{
			name:     "string body",
			content:  "HTTP/1.1 202 Accepted\n\"queued\"",
			wantCode: 202,
			wantRaw:  "\"queued\"",
			want:     "queued",
		},
		{
			name:     "lower case protocol",
			content:  "http/2 404 Not Found\n{}",
			wantCode: 404,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "single token prefix is not a status line",
			content:  "HTTP/1.1\n{}",
			wantCode: 200,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "non http prefix",
			content:  "Response 500\n{}",
			wantCode: 200,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "code with trailing text",
			content:  "HTTP/1.1 204No-Content {}",
			wantCode: 204,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "negative code",
			content:  "HTTP/1.1 -5 Odd\n{}",
			wantCode: -5,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "lone minus",
			content:  "HTTP/1.1 - {}",
			wantCode: 200,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
		{
			name:     "non numeric code",
			content:  "HTTP/1.1 OK {}",
			wantCode: 200,
			wantRaw:  "{}",
			want:     map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Extract(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, p.Code)
			assert.Equal(t, tt.wantRaw, p.Raw)
			assert.Equal(t, tt.want, p.Value)
		})
	}
}

func TestExtractInvalidJSON(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
	}{
		{"truncated object", "HTTP/1.1 400 Bad Request\n{\"error\": ", 400},
		{"no json at all", "HTTP/1.1 204 No Content", 200},
		{"empty", "", 200},
		{"trailing garbage", `{"a": 1} trailing`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Extract(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid JSON example")
			assert.Equal(t, tt.wantCode, p.Code)
			assert.Equal(t, map[string]any{}, p.Value)
		})
	}
}

func TestCompact(t *testing.T) {
	p, err := Extract("HTTP/1.1 200 OK\n{\n  \"id\": 1\n}")
	require.NoError(t, err)

	out, err := p.Compact()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, out)
}
