// Package openapi holds the OpenAPI 3.0 document model produced by the
// converter.
//
// The model covers the subset of the OpenAPI Specification that apidoc data
// can express: info, servers, paths with operations, header/path/query
// parameters, JSON and binary request bodies, responses and component
// schemas. Response codes keep the order in which they were registered, so
// both encodings list them in documentation order:
//
//	doc := openapi.NewDocument(&openapi.Info{Title: "Users", Version: "1.0.0"})
//	data, err := doc.MarshalOrderedYAML()
//
// # References
//
//   - OAS 3.0.3: https://spec.openapis.org/oas/v3.0.3.html
package openapi
