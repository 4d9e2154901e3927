package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listEndpointsInput struct {
	Data    sourceInput `json:"data"               jsonschema:"The apidoc api_data.json export"`
	Method  string      `json:"method,omitempty"   jsonschema:"Filter by HTTP method (case-insensitive)"`
	Group   string      `json:"group,omitempty"    jsonschema:"Filter by apidoc group name (exact match)"`
	URL     string      `json:"url,omitempty"      jsonschema:"Filter by URL substring"`
	GroupBy string      `json:"group_by,omitempty" jsonschema:"Group results and return counts. Values: group\\, method"`
	Offset  int         `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
	Limit   int         `json:"limit,omitempty"    jsonschema:"Maximum number of results to return"`
}

type endpointSummary struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Group      string `json:"group,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

type listEndpointsOutput struct {
	Total     int               `json:"total"`
	Returned  int               `json:"returned"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
	Groups    []groupCount      `json:"groups,omitempty"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	if input.GroupBy != "" && input.GroupBy != "group" && input.GroupBy != "method" {
		return errResult(fmt.Errorf("invalid group_by %q (expected group or method)", input.GroupBy)), listEndpointsOutput{}, nil
	}

	in, err := resolveInput(input.Data, sourceInput{})
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	var matched []endpointSummary
	for i := range in.Endpoints {
		ep := &in.Endpoints[i]
		if input.Method != "" && !strings.EqualFold(ep.Method(), input.Method) {
			continue
		}
		if input.Group != "" && ep.Group != input.Group {
			continue
		}
		if input.URL != "" && !strings.Contains(ep.URL, input.URL) {
			continue
		}
		matched = append(matched, summarize(ep))
	}

	if input.GroupBy != "" {
		groups := groupAndSort(matched, func(s endpointSummary) string {
			if input.GroupBy == "method" {
				return s.Method
			}
			return s.Group
		})
		return nil, listEndpointsOutput{Total: len(matched), Returned: len(groups), Groups: groups}, nil
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listEndpointsOutput{
		Total:     len(matched),
		Returned:  len(page),
		Endpoints: page,
	}, nil
}

func summarize(ep *apidoc.Endpoint) endpointSummary {
	return endpointSummary{
		Method:     ep.Method(),
		Path:       converter.TemplatePath(ep.URL),
		Name:       ep.Name,
		Title:      ep.Title,
		Group:      ep.Group,
		Deprecated: ep.IsDeprecated(),
	}
}
