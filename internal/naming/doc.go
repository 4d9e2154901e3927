// Package naming turns free-form endpoint names into identifiers that are
// valid OpenAPI component keys.
//
// Component keys must match ^[a-zA-Z0-9.\-_]+$. apidoc endpoint names are
// usually already identifiers ("GetUser"), but titles such as "Get user by id"
// occasionally end up in the name slot; those are converted to PascalCase.
package naming
