package converter

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/apidoc2oas/internal/issues"
	"github.com/erraggy/apidoc2oas/openapi"
)

// validateDocument loads the generated document with kin-openapi and returns
// one warning issue per validation failure. Example values are not checked:
// apidoc examples routinely disagree with the documented field types.
func validateDocument(ctx context.Context, doc *openapi.Document) ([]ConversionIssue, error) {
	data, err := doc.MarshalOrderedJSON()
	if err != nil {
		return nil, fmt.Errorf("converter: encoding document for validation: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	model, err := loader.LoadFromData(data)
	if err != nil {
		return []ConversionIssue{{
			Path:     "document",
			Message:  "generated document could not be loaded for validation",
			Severity: SeverityWarning,
			Context:  err.Error(),
		}}, nil
	}

	err = model.Validate(ctx, openapi3.DisableExamplesValidation())
	if err == nil {
		return nil, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("converter: validation aborted: %w", ctxErr)
	}

	var failures []error
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		failures = multi
	} else {
		failures = []error{err}
	}

	out := make([]ConversionIssue, 0, len(failures))
	for _, f := range failures {
		out = append(out, issues.Issue{
			Path:     "document",
			Message:  "validation failed: " + f.Error(),
			Severity: SeverityWarning,
		})
	}
	return out, nil
}
