// Package converter turns apidoc output into an OpenAPI 3.0.3 document.
//
// apidoc writes every documented endpoint to api_data.json as a flat record:
// verb, URL, parameter and header rows, literal request and response
// examples, and the fields of each success status. The converter groups the
// records by URL, builds one operation per verb, infers component schemas
// from the literal examples and grafts the documented fields onto them.
//
// # Quick Start
//
// Convert files using functional options:
//
//	result, err := converter.ConvertWithOptions(ctx,
//		converter.WithFilePath("doc/api_data.json"),
//		converter.WithProjectFilePath("doc/api_project.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := result.Document.MarshalOrderedJSONIndent("", "  ")
//
// Or reuse a Converter for already loaded input:
//
//	c := converter.New()
//	c.Validate = true
//	result, err := c.Convert(ctx, input)
//
// # Schemas
//
// For an endpoint named GetUser the converter registers
//
//	GetUserRequest       request body (POST, PUT and PATCH only)
//	GetUserResponse      example answered with 200
//	GetUser404Response   example answered with any other code
//
// Examples are decoded from transcripts such as "HTTP/1.1 404 Not Found\n{...}".
// The documented fields of the first 2xx response are merged into that
// response's schema; see package schemagen for the merge rules.
//
// # Conversion Issues
//
// Problems that do not stop the conversion are reported as issues:
// examples that are not valid JSON (Warning), operations declared twice for
// the same path and verb (Warning), documented success fields without a
// matching example (Info) and, with validation enabled, every failure
// reported by kin-openapi (Warning). StrictMode turns warnings into a
// ConversionError.
//
// # Related Packages
//
//   - [github.com/erraggy/apidoc2oas/apidoc] - Input model and loader
//   - [github.com/erraggy/apidoc2oas/schemagen] - Field list to schema compiler
//   - [github.com/erraggy/apidoc2oas/openapi] - Output document model
package converter
