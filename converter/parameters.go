package converter

import (
	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/stringutil"
	"github.com/erraggy/apidoc2oas/openapi"
)

// buildParameters returns header, path and query parameters in that order.
// All parameters are typed as strings; apidoc type tags are not mapped.
func buildParameters(ep *apidoc.Endpoint) []*openapi.Parameter {
	var params []*openapi.Parameter
	for _, f := range ep.HeaderFields() {
		params = append(params, newParameter(f, openapi.ParamInHeader, !f.Optional))
	}
	for _, f := range ep.PathFields() {
		// Path parameters must be required.
		params = append(params, newParameter(f, openapi.ParamInPath, true))
	}
	for _, f := range ep.Query {
		params = append(params, newParameter(f, openapi.ParamInQuery, !f.Optional))
	}
	return params
}

func newParameter(f apidoc.Field, in string, required bool) *openapi.Parameter {
	return &openapi.Parameter{
		Name:        f.Field,
		In:          in,
		Description: stringutil.StripTags(f.Description),
		Required:    required,
		Schema: &openapi.Schema{
			Type:    openapi.TypeString,
			Default: f.DefaultValue,
		},
	}
}
