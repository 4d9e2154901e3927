package converter

import "regexp"

// urlParamRegex matches express-style path parameters such as ":id".
var urlParamRegex = regexp.MustCompile(`:(\w+)`)

// TemplatePath rewrites express-style parameters to OpenAPI templates:
// "/users/:id" becomes "/users/{id}".
func TemplatePath(url string) string {
	return urlParamRegex.ReplaceAllString(url, "{$1}")
}
