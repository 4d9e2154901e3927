// Package schemagen compiles flat lists of documented fields into nested
// JSON Schema objects.
//
// apidoc documents payloads as flat rows whose paths encode nesting:
//
//	data          Object
//	data.id       Number
//	data.tags[]   String[]
//	items[id]     String
//
// [Merge] walks such a list in order and grafts every row onto a root schema,
// usually a skeleton inferred from a literal example. Containers referenced
// before they are declared are created on demand, object and array nodes that
// already exist in the skeleton are kept, scalar rows always replace what the
// skeleton had, and required rows are collected per container.
//
// When the skeleton root is an array of objects and the first row documents
// an object array, that row is taken to name the root array itself. Its
// children are mounted on the array items and the row is not listed as
// required anywhere.
//
// # Schema naming
//
// Component schemas produced for an endpoint are named after it:
//
//	GetUserRequest        request body
//	GetUserResponse       200 response
//	GetUser404Response    any other status code
//
// [Registry] collects the named schemas of one conversion run.
package schemagen
