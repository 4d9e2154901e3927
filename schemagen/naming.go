package schemagen

import (
	"strconv"

	"github.com/erraggy/apidoc2oas/internal/naming"
)

// SchemaPrefix derives the component name prefix for an endpoint name.
func SchemaPrefix(endpointName string) string {
	return naming.ComponentName(endpointName)
}

// RequestSchemaName returns "<prefix>Request".
func RequestSchemaName(prefix string) string {
	return prefix + "Request"
}

// ResponseSchemaName returns "<prefix>Response" for 200 and
// "<prefix><code>Response" for every other code.
func ResponseSchemaName(prefix string, code int) string {
	if code == 200 {
		return prefix + "Response"
	}
	return prefix + strconv.Itoa(code) + "Response"
}
