// Package severity provides severity level constants for the diagnostics
// reported by the converter while it turns apidoc data into OpenAPI.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of a conversion issue.
type Severity int

const (
	// SeverityError indicates a problem that makes the generated document unusable.
	SeverityError Severity = iota

	// SeverityWarning indicates input that was tolerated on a best-effort basis,
	// such as an example payload that is not valid JSON.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
