package mcpserver

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/apidoc2oas/converter"
	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type convertInput struct {
	Data     sourceInput `json:"data"               jsonschema:"The apidoc api_data.json export"`
	Project  sourceInput `json:"project,omitempty"  jsonschema:"Optional apidoc api_project.json"`
	Format   string      `json:"format,omitempty"   jsonschema:"Output format: json or yaml"`
	Validate *bool       `json:"validate,omitempty" jsonschema:"Validate the generated document with kin-openapi"`
	Strict   *bool       `json:"strict,omitempty"   jsonschema:"Fail when the conversion reports errors or warnings"`
	Output   string      `json:"output,omitempty"   jsonschema:"File path to write the document. If omitted the document is returned inline."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint,omitempty"`
}

type convertOutput struct {
	Success        bool           `json:"success"`
	EndpointCount  int            `json:"endpoint_count"`
	PathCount      int            `json:"path_count"`
	OperationCount int            `json:"operation_count"`
	SchemaCount    int            `json:"schema_count"`
	Validated      bool           `json:"validated,omitempty"`
	ErrorCount     int            `json:"error_count"`
	WarningCount   int            `json:"warning_count"`
	InfoCount      int            `json:"info_count"`
	Issues         []convertIssue `json:"issues,omitempty"`
	WrittenTo      string         `json:"written_to,omitempty"`
	Document       string         `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = cfg.ConvertFormat
	}
	if format != formatJSON && format != formatYAML {
		return errResult(fmt.Errorf("unsupported format %q (expected json or yaml)", input.Format)), convertOutput{}, nil
	}

	in, err := resolveInput(input.Data, input.Project)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	c := converter.New()
	c.Validate = boolOr(input.Validate, cfg.ConvertValidate)
	c.StrictMode = boolOr(input.Strict, cfg.ConvertStrict)

	result, err := c.Convert(ctx, in)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Success:        result.Success,
		EndpointCount:  result.EndpointCount,
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
		Validated:      result.Validated,
		ErrorCount:     result.ErrorCount,
		WarningCount:   result.WarningCount,
		InfoCount:      result.InfoCount,
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Endpoint: issue.Endpoint,
		})
	}

	data, err := marshalDocument(result.Document, format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := cliutil.WriteOutput(input.Output, data, io.Discard); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func marshalDocument(doc *openapi.Document, format string) ([]byte, error) {
	if format == formatYAML {
		return doc.MarshalOrderedYAML()
	}
	return doc.MarshalOrderedJSONIndent("", "  ")
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
