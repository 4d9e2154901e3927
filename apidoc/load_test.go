package apidoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apidoc2oas/oaserrors"
)

const minimalData = `[{"type":"get","url":"/ping","title":"Ping","name":"Ping","group":"Health"}]`

func TestLoadFromBytes(t *testing.T) {
	in, err := Load(WithBytes([]byte(minimalData)))
	require.NoError(t, err)

	require.Len(t, in.Endpoints, 1)
	assert.Equal(t, "/ping", in.Endpoints[0].URL)
	assert.Equal(t, "<bytes>", in.SourcePath)
	assert.Equal(t, int64(len(minimalData)), in.SourceSize)
	require.NotNil(t, in.Project)
	assert.Empty(t, in.Project.Name)
}

func TestLoadWrappedArray(t *testing.T) {
	in, err := Load(WithBytes([]byte(`{"api": ` + minimalData + `}`)))
	require.NoError(t, err)
	assert.Len(t, in.Endpoints, 1)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "api_data.json")
	projectPath := filepath.Join(dir, "api_project.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(minimalData), 0o600))
	require.NoError(t, os.WriteFile(projectPath, []byte(`{"name":"demo","title":"Demo API","version":"1.2.0","url":"https://api.example.com"}`), 0o600))

	in, err := Load(WithFilePath(dataPath), WithProjectFilePath(projectPath))
	require.NoError(t, err)

	assert.Equal(t, dataPath, in.SourcePath)
	assert.Equal(t, "Demo API", in.Project.Title)
	assert.Equal(t, "1.2.0", in.Project.Version)
	assert.Equal(t, "https://api.example.com", in.Project.URL)
}

func TestLoadFromReader(t *testing.T) {
	in, err := Load(WithReader(strings.NewReader(minimalData)), WithProject(&Project{Name: "x"}))
	require.NoError(t, err)
	assert.Equal(t, "<reader>", in.SourcePath)
	assert.Equal(t, "x", in.Project.Name)
}

func TestLoadProjectBytes(t *testing.T) {
	in, err := Load(WithBytes([]byte(minimalData)), WithProjectBytes([]byte(`{"name":"p"}`)))
	require.NoError(t, err)
	assert.Equal(t, "p", in.Project.Name)

	_, err = Load(WithBytes([]byte(minimalData)), WithProjectBytes([]byte(`{`)))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestLoadInputSourceValidation(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.Contains(t, err.Error(), "no input source specified")

	_, err = Load(WithBytes([]byte(minimalData)), WithFilePath("x.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	assert.Contains(t, err.Error(), "got 2")
}

func TestLoadInvalidOptions(t *testing.T) {
	_, err := Load(WithReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)

	_, err = Load(WithBytes([]byte(minimalData)), WithMaxInputSize(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(WithBytes([]byte(`[{"type": "get",}]`)))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)

	var pe *oaserrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "<bytes>", pe.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(WithFilePath(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSizeLimit(t *testing.T) {
	_, err := Load(WithBytes([]byte(minimalData)), WithMaxInputSize(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

	in, err := Load(WithBytes([]byte(minimalData)), WithMaxInputSize(int64(len(minimalData))))
	require.NoError(t, err)
	assert.Len(t, in.Endpoints, 1)
}
