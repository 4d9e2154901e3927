package cliutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items", "Paths", 3)
	assert.Equal(t, "Paths: 3 items", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritef_ErrorDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "ignored")
	})
}

func TestWriteOutput(t *testing.T) {
	t.Run("stdout when path is empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput("", []byte("openapi"), &buf))
		assert.Equal(t, "openapi", buf.String())
	})

	t.Run("stdout write failure", func(t *testing.T) {
		err := WriteOutput("", []byte("x"), errorWriter{})
		assert.ErrorContains(t, err, "writing to stdout")
	})

	t.Run("file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "openapi.json")
		require.NoError(t, WriteOutput(out, []byte("{}"), nil))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("symlink refused", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(target, nil, 0o600))
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
		err := WriteOutput(link, []byte("{}"), nil)
		assert.ErrorContains(t, err, "symlink")
	})
}
