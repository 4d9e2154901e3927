package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testData    = "../../../converter/testdata/api_data.json"
	testProject = "../../../converter/testdata/api_project.json"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Input)
		assert.Empty(t, flags.Output)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.False(t, flags.Validate)
		assert.False(t, flags.Strict)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-i", "api_data.json", "-p", "api_project.json", "-o", "out.yaml", "-f", "yaml", "--validate", "--strict", "-q", "--verbose", "--no-info"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "api_data.json", flags.Input)
		assert.Equal(t, "api_project.json", flags.Project)
		assert.Equal(t, "out.yaml", flags.Output)
		assert.Equal(t, FormatYAML, flags.Format)
		assert.True(t, flags.Validate)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.Verbose)
		assert.True(t, flags.NoInfo)
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupConvertFlags()
		require.NoError(t, fs2.Parse([]string{"--input", "in.json", "--output", "out.json", "--format", "json"}))
		assert.Equal(t, "in.json", flags2.Input)
		assert.Equal(t, "out.json", flags2.Output)
	})
}

func TestRunConvert_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"-i", testData, "-p", testProject}, nil, &stdout, &stderr)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Equal(t, "Users API", doc["info"].(map[string]any)["title"])

	assert.Contains(t, stderr.String(), "Endpoints: 3")
	assert.Contains(t, stderr.String(), "Paths: 2")
	assert.Contains(t, stderr.String(), "✓ Conversion successful")
}

func TestRunConvert_PositionalInputAndFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "openapi.yaml")
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"-f", "yaml", "-o", out, testData}, nil, &stdout, &stderr)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GetUserResponse")
	assert.Contains(t, stderr.String(), "Output written to: "+out)
}

func TestRunConvert_Stdin(t *testing.T) {
	in := strings.NewReader(`[{"type":"get","url":"/ping","title":"Ping","name":"Ping","group":"Health"}]`)
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"-q", "-i", "-"}, in, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"/ping"`)
	assert.Empty(t, stderr.String())
}

func TestRunConvert_Validate(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"--validate", "-i", testData, "-p", testProject}, nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "validated")
}

func TestRunConvert_StrictWritesNothing(t *testing.T) {
	in := strings.NewReader(`[{"type":"get","url":"/x","title":"X","name":"X","group":"G",
		"success":{"examples":[{"title":"OK","content":"HTTP/1.1 200 OK\n{broken","type":"json"}]}}]`)
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"--strict", "-i", "-"}, in, &stdout, &stderr)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "strict mode")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Conversion Issues (1)")
}

func TestRunConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{}, "requires exactly one input"},
		{"too many args", []string{"a.json", "b.json"}, "requires exactly one input"},
		{"bad format", []string{"-i", testData, "-f", "xml"}, "invalid format"},
		{"output overwrites input", []string{"-i", testData, "-o", testData}, "would overwrite input file"},
		{"missing file", []string{"-i", "does-not-exist.json"}, "converting does-not-exist.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runConvert(context.Background(), tt.args, nil, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleConvert_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runConvert(context.Background(), []string{"--help"}, nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Usage: apidoc2oas convert")
}
