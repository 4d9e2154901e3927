// Package apidoc reads the JSON files produced by apidoc (api_data.json and
// api_project.json) and models the documented fields that the schema
// compiler consumes.
//
// # Loading
//
//	input, err := apidoc.Load(
//	    apidoc.WithFilePath("doc/api_data.json"),
//	    apidoc.WithProjectFilePath("doc/api_project.json"),
//	)
//
// Exactly one data source (WithFilePath, WithReader or WithBytes) must be
// given. The project file is optional.
//
// # Documented fields
//
// apidoc writes field types as free-form strings ("String", "Object",
// "Object[]", "Number[]"). [ParseTypeTag] maps them onto the closed
// [FieldKind] enum so that every consumer switches over a fixed set of
// shapes.
//
// # Logging
//
// Diagnostics go through the [Logger] interface. [NewSlogAdapter] wraps a
// log/slog logger and [NewHclogAdapter] wraps a go-hclog logger; the default
// is [NopLogger].
package apidoc
