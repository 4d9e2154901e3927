package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/apidoc2oas/internal/payload"
	"github.com/erraggy/apidoc2oas/internal/schemainfer"
	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inferInput struct {
	Content string `json:"content"         jsonschema:"Example payload: bare JSON or an HTTP transcript"`
	Title   string `json:"title,omitempty" jsonschema:"Title written into the inferred schema"`
}

type inferOutput struct {
	StatusCode int    `json:"status_code"`
	Schema     string `json:"schema"`
}

func handleInferSchema(_ context.Context, _ *mcp.CallToolRequest, input inferInput) (*mcp.CallToolResult, inferOutput, error) {
	if input.Content == "" {
		return errResult(errors.New("content is required")), inferOutput{}, nil
	}
	if int64(len(input.Content)) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("content size %d bytes exceeds maximum %d bytes", len(input.Content), cfg.MaxInlineSize)), inferOutput{}, nil
	}

	p, err := payload.Extract(input.Content)
	if err != nil {
		return errResult(err), inferOutput{}, nil
	}

	data, err := json.MarshalIndent(schemainfer.Infer(input.Title, p.Value), "", "  ")
	if err != nil {
		return errResult(err), inferOutput{}, nil
	}
	return nil, inferOutput{StatusCode: p.Code, Schema: string(data)}, nil
}
