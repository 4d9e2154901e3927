// Package commands provides CLI command handlers for apidoc2oas.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/apidoc2oas"
	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/openapi"
	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-hclog"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalDocument marshals a document to bytes in the specified format.
// Output keeps the document's field order in both formats.
func MarshalDocument(doc *openapi.Document, format string) ([]byte, error) {
	if format == FormatYAML {
		return doc.MarshalOrderedYAML()
	}
	data, err := doc.MarshalOrderedJSONIndent("", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// MarshalValue marshals any JSON-serializable value in the specified format.
func MarshalValue(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	if format == FormatYAML {
		return openapi.JSONToYAML(data)
	}
	return append(data, '\n'), nil
}

// ValidateOutputPath checks that the output path does not overwrite an input.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == "" || inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return nil
}

// FormatSourcePath returns a display-friendly path for an input.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// FormatBytes renders a byte count in human-readable units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// NewLogger returns the hclog logger used by CLI commands. Diagnostics
// go to w so stdout stays reserved for documents.
func NewLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "apidoc2oas",
		Level:  level,
		Output: w,
	})
}

// OutputHeader writes the common tool header to w.
func OutputHeader(w io.Writer, title string) {
	cliutil.Writef(w, "%s\n", title)
	for range title {
		cliutil.Writef(w, "=")
	}
	cliutil.Writef(w, "\n\n")
	cliutil.Writef(w, "apidoc2oas version: %s\n", apidoc2oas.Version())
}

// readSource reads path, or stdin when path is StdinFilePath.
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinFilePath {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path) //nolint:gosec // G304 - reading user-specified input is the purpose
}
