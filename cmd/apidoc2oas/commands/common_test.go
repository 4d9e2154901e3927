package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/apidoc2oas/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("json"))
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.ErrorContains(t, ValidateOutputFormat("text"), "invalid format 'text'")
}

func TestMarshalDocument(t *testing.T) {
	doc := openapi.NewDocument(&openapi.Info{Title: "Demo", Version: "1.0.0"})

	data, err := MarshalDocument(doc, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"openapi\": \"3.0.3\""))
	assert.True(t, strings.HasSuffix(string(data), "}\n"))

	data, err = MarshalDocument(doc, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Demo")
}

func TestMarshalValue(t *testing.T) {
	data, err := MarshalValue(map[string]any{"type": "object"}, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "type: object\n", string(data))

	data, err = MarshalValue(map[string]any{"type": "object"}, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object"}`, string(data))
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "api_data.json")

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "openapi.json"), []string{input, "", StdinFilePath}))
	assert.ErrorContains(t, ValidateOutputPath(input, []string{input}), "would overwrite input file")
}

func TestFormatSourcePath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSourcePath(StdinFilePath))
	assert.Equal(t, "api_data.json", FormatSourcePath("api_data.json"))
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false, false).Info("hidden")
	NewLogger(&buf, false, false).Warn("shown", "endpoint", "GetUser")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "endpoint=GetUser")

	buf.Reset()
	NewLogger(&buf, true, false).Debug("merge detail")
	assert.Contains(t, buf.String(), "merge detail")

	buf.Reset()
	NewLogger(&buf, false, true).Warn("quiet")
	assert.Empty(t, buf.String())
}
