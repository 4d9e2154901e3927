// Package issues provides the issue type used for non-fatal conversion diagnostics.
package issues

import (
	"fmt"

	"github.com/erraggy/apidoc2oas/internal/severity"
)

// Issue represents a single problem found while converting apidoc data.
type Issue struct {
	// Path locates the problem in the generated document (e.g., "paths./user/{id}.get.responses")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Endpoint is the apidoc endpoint name the issue was raised for (optional)
	Endpoint string
	// Method is the HTTP verb of that endpoint (optional)
	Method string
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Path
	if i.Endpoint != "" {
		location = fmt.Sprintf("%s [%s %s]", i.Path, i.Method, i.Endpoint)
	}

	result := fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count tallies issues per severity.
func Count(list []Issue) (errors, warnings, infos int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityError:
			errors++
		case severity.SeverityWarning:
			warnings++
		case severity.SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}
