package converter

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/httputil"
	"github.com/erraggy/apidoc2oas/internal/payload"
	"github.com/erraggy/apidoc2oas/internal/schemainfer"
	"github.com/erraggy/apidoc2oas/internal/stringutil"
	"github.com/erraggy/apidoc2oas/openapi"
	"github.com/erraggy/apidoc2oas/schemagen"
)

func (r *run) buildOperation(ep *apidoc.Endpoint, path string, logger apidoc.Logger) *openapi.Operation {
	method := ep.Method()
	op := &openapi.Operation{
		Summary:     stringutil.StripTags(ep.Name),
		Description: operationDescription(ep),
		Parameters:  buildParameters(ep),
		Deprecated:  ep.IsDeprecated(),
	}
	if ep.Group != "" {
		op.Tags = []string{ep.Group}
	}

	opPath := fmt.Sprintf("paths.%s.%s", path, method)
	var prefix string
	if registersSchemas(ep) {
		prefix = r.schemaPrefix(ep, opPath)
	}
	op.Responses = r.buildResponses(ep, prefix, opPath, logger)

	if hasRequestBody(method) {
		op.RequestBody = r.buildRequestBody(ep, prefix, opPath, logger)
	}
	return op
}

func hasRequestBody(method string) bool {
	switch method {
	case openapi.MethodPost, openapi.MethodPut, openapi.MethodPatch:
		return true
	}
	return false
}

// registersSchemas reports whether converting ep adds component schemas.
func registersSchemas(ep *apidoc.Endpoint) bool {
	if len(ep.SuccessExamples())+len(ep.ErrorExamples()) > 0 {
		return true
	}
	return hasRequestBody(ep.Method()) && !ep.HasFileBody()
}

func operationDescription(ep *apidoc.Endpoint) string {
	desc := stringutil.StripTags(ep.Title)
	if ep.Description != "" {
		desc += " " + ep.Description
	}
	return desc
}

// buildRequestBody registers <prefix>Request and returns the body that
// references it. File uploads produce a binary body instead.
func (r *run) buildRequestBody(ep *apidoc.Endpoint, prefix, opPath string, logger apidoc.Logger) *openapi.RequestBody {
	if ep.HasFileBody() {
		return &openapi.RequestBody{
			Content: map[string]*openapi.MediaType{
				openapi.MediaTypeOctetStream: {
					Schema: &openapi.Schema{Type: openapi.TypeString, Format: "binary"},
				},
			},
		}
	}

	name := schemagen.RequestSchemaName(prefix)
	media := &openapi.MediaType{Schema: openapi.RefTo(name)}
	body := &openapi.RequestBody{
		Content: map[string]*openapi.MediaType{openapi.MediaTypeJSON: media},
	}

	examples := ep.RequestExamples()
	if len(examples) == 0 {
		r.registry.Set(name, &openapi.Schema{
			Title:      name,
			Type:       openapi.TypeObject,
			Properties: make(map[string]*openapi.Schema),
		})
	} else {
		media.Examples = make(map[string]*openapi.Example, len(examples))
	}

	for i, ex := range examples {
		p := r.decodeExample(ep, ex, opPath+".requestBody", logger)
		r.registerSkeleton(name, ex.Title, p.Value, logger)

		body.Description = ex.Title
		media.Examples[strconv.Itoa(i)] = &openapi.Example{
			Summary: ex.Title,
			Value:   ex.Content,
		}
	}

	if len(ep.Body) > 0 {
		root, _ := r.registry.Get(name)
		schemagen.Merge(apidoc.DocumentedFields(ep.Body), root,
			schemagen.WithLogger(logger.With("schema", name)))
	}
	return body
}

// buildResponses registers one schema per example, success examples first,
// and merges the documented fields of the first 2xx response.
func (r *run) buildResponses(ep *apidoc.Endpoint, prefix, opPath string, logger apidoc.Logger) *openapi.Responses {
	responses := openapi.NewResponses()

	examples := slices.Concat(ep.SuccessExamples(), ep.ErrorExamples())
	for _, ex := range examples {
		p := r.decodeExample(ep, ex, opPath+".responses", logger)
		r.checkStatusCode(ep, ex, p.Code, opPath+".responses")
		name := schemagen.ResponseSchemaName(prefix, p.Code)
		r.registerSkeleton(name, ex.Title, p.Value, logger)

		media := &openapi.MediaType{Schema: openapi.RefTo(name)}
		if compact, err := p.Compact(); err == nil {
			media.Example = compact
		}
		responses.Set(strconv.Itoa(p.Code), &openapi.Response{
			Description: ex.Title,
			Content:     map[string]*openapi.MediaType{openapi.MediaTypeJSON: media},
		})
	}

	code, ok := firstSuccessCode(responses)
	if !ok {
		responses.Set(openapi.ResponseDefault, &openapi.Response{
			Content: map[string]*openapi.MediaType{
				openapi.MediaTypeJSON: {Schema: openapi.NewObjectSchema()},
			},
		})
		r.reportUnmergedSuccessFields(ep, opPath)
		return responses
	}

	if fields, found := ep.SuccessFields(code); found {
		name := schemagen.ResponseSchemaName(prefix, code)
		root, _ := r.registry.Get(name)
		schemagen.Merge(apidoc.DocumentedFields(fields), root,
			schemagen.WithLogger(logger.With("schema", name, "code", code)))
	}
	return responses
}

// firstSuccessCode returns the first registered code in the 2xx range.
func firstSuccessCode(responses *openapi.Responses) (int, bool) {
	for _, key := range responses.Codes() {
		code, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if httputil.IsSuccess(code) {
			return code, true
		}
	}
	return 0, false
}

func (r *run) checkStatusCode(ep *apidoc.Endpoint, ex apidoc.Example, code int, path string) {
	switch {
	case !httputil.ValidateStatusCode(code):
		r.addIssue(ep, path,
			fmt.Sprintf("example %q has status code %d outside %d-%d", ex.Title, code, httputil.MinStatusCode, httputil.MaxStatusCode),
			SeverityWarning)
	case !httputil.IsStandardStatusCode(code):
		r.addIssue(ep, path,
			fmt.Sprintf("example %q uses non-standard status code %d", ex.Title, code),
			SeverityInfo)
	}
}

func (r *run) reportUnmergedSuccessFields(ep *apidoc.Endpoint, opPath string) {
	if ep.Success == nil {
		return
	}
	for _, group := range slices.Sorted(maps.Keys(ep.Success.Fields)) {
		if len(ep.Success.Fields[group]) == 0 {
			continue
		}
		r.addIssueWithContext(ep, opPath+".responses",
			fmt.Sprintf("documented fields of %q were not merged", group),
			"fields are only merged into the first 2xx response that has an example",
			SeverityInfo)
	}
}

// decodeExample extracts an example payload, reporting invalid JSON as a warning.
func (r *run) decodeExample(ep *apidoc.Endpoint, ex apidoc.Example, path string, logger apidoc.Logger) payload.Payload {
	p, err := payload.Extract(ex.Content)
	if err != nil {
		logger.Warn("example is not valid JSON", "example", ex.Title, "code", p.Code, "error", err)
		r.addIssueWithContext(ep, path,
			fmt.Sprintf("example %q is not valid JSON; an empty object is used instead", ex.Title),
			err.Error(), SeverityWarning)
	}
	return p
}

// registerSkeleton infers a schema from an example value and registers it
// under name, replacing any schema registered earlier.
func (r *run) registerSkeleton(name, title string, value any, logger apidoc.Logger) {
	s := schemainfer.Infer(title, value)
	s.Dialect = ""
	s.Title = name
	if r.registry.Set(name, s) {
		logger.Debug("schema replaced by a later example", "schema", name)
	}
}
