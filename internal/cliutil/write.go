// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteOutput writes data to path, or to stdout when path is empty.
// Symlinked output paths are refused so a link cannot redirect the write.
func WriteOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("cliutil: writing to stdout: %w", err)
		}
		return nil
	}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		return fmt.Errorf("cliutil: refusing to write to symlink: %s", path)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("cliutil: checking output path: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cliutil: writing output file: %w", err)
	}
	return nil
}
