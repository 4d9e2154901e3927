package issues

import (
	"testing"

	"github.com/erraggy/apidoc2oas/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "components.schemas",
				Message:  "invalid component name",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "components.schemas", "invalid component name"},
			notContains: []string{"Context:", "["},
		},
		{
			name: "warning with endpoint",
			issue: Issue{
				Path:     "paths./user/{id}.get.responses",
				Message:  "example is not valid JSON",
				Severity: severity.SeverityWarning,
				Endpoint: "GetUser",
				Method:   "get",
			},
			contains: []string{"⚠", "[get GetUser]", "example is not valid JSON"},
		},
		{
			name: "info with context",
			issue: Issue{
				Path:     "paths",
				Message:  "merged verbs",
				Severity: severity.SeverityInfo,
				Context:  "two urls share a template",
			},
			contains: []string{"ℹ", "\n    Context: two urls share a template"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "x", Message: "y", Severity: severity.Severity(42)},
			contains: []string{"? x: y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityError},
	}
	errs, warns, infos := Count(list)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 2, warns)
	assert.Equal(t, 1, infos)

	errs, warns, infos = Count(nil)
	assert.Zero(t, errs+warns+infos)
}
