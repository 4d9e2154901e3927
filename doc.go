// Package apidoc2oas converts apidoc exports into OpenAPI 3.0 documents.
//
// apidoc writes two files when it documents an API: api_data.json, one record
// per endpoint, and api_project.json, the project metadata. apidoc2oas reads
// both and produces a single OpenAPI 3.0.3 document whose request and response
// bodies are described by component schemas.
//
// # Overview
//
// The library is split into a few packages:
//
//   - apidoc: the input model, loading and logging adapters
//   - converter: builds the OpenAPI document, one operation per endpoint
//   - schemagen: merges documented fields into inferred schema skeletons
//   - openapi: the generated document model and ordered marshaling
//   - oaserrors: typed errors shared by all packages
//
// # Quick Start
//
// Convert an export from disk:
//
//	import "github.com/erraggy/apidoc2oas/converter"
//
//	result, err := converter.ConvertWithOptions(ctx,
//		converter.WithFilePath("doc/api_data.json"),
//		converter.WithProjectFilePath("doc/api_project.json"),
//		converter.WithValidation(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//	data, _ := result.Document.MarshalOrderedJSONIndent("", "  ")
//
// # How schemas are built
//
// Each example attached to an endpoint is decoded and turned into a JSON
// schema skeleton. Request examples are registered as <Name>Request, response
// examples as <Name>Response for status 200 and <Name><Code>Response
// otherwise. The documented fields of the request body and of the first 2xx
// response are then merged into those skeletons: descriptions, types and
// required lists come from the documentation, nesting comes from the field
// paths ("data.items[].id").
//
// Problems that do not stop a conversion, such as an example that is not
// valid JSON, are reported as issues with an info, warning or error severity.
//
// # Command-Line Tool
//
// The apidoc2oas command wraps the library:
//
//	go install github.com/erraggy/apidoc2oas/cmd/apidoc2oas@latest
//	apidoc2oas convert -i doc/api_data.json -p doc/api_project.json -o openapi.yaml -f yaml
//	apidoc2oas infer -t User response.txt
//	apidoc2oas mcp
package apidoc2oas
