// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apidoc2oas capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"sort"

	"github.com/erraggy/apidoc2oas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `apidoc2oas MCP server. Converts apidoc api_data.json exports into OpenAPI 3.0 documents, infers JSON schemas from example payloads, and lists documented endpoints.

Configuration: All defaults are configurable via APIDOC2OAS_* environment variables set in your MCP client config.

Key settings:
- APIDOC2OAS_CACHE_ENABLED (default: true): disable input caching entirely
- APIDOC2OAS_CACHE_FILE_TTL (default: 15m): cache TTL for file inputs
- APIDOC2OAS_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline inputs
- APIDOC2OAS_CONVERT_VALIDATE (default: false): validate converted documents by default
- APIDOC2OAS_CONVERT_STRICT (default: false): fail conversions with warnings by default
- APIDOC2OAS_CONVERT_FORMAT (default: json): output format, json or yaml
- APIDOC2OAS_LIST_LIMIT (default: 100): default result limit for list_endpoints
- APIDOC2OAS_MAX_INLINE_SIZE (default: 10MiB): maximum inline content size

Caching: Decoded api_data.json inputs are cached per session. File entries use path+mtime as key (auto-invalidated on change), inline content uses a SHA-256 hash. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		dataCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidoc2oas", Version: apidoc2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an apidoc api_data.json export into an OpenAPI 3.0 document. Provide data as a file path or inline content, and optionally api_project.json for the info block and server URL. Returns conversion issues with document paths and the generated document (json or yaml). Use output to write to a file instead of returning inline. Validation and strict mode defaults are configurable via APIDOC2OAS_CONVERT_VALIDATE and APIDOC2OAS_CONVERT_STRICT.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "infer_schema",
		Description: "Infer a draft-04 JSON schema skeleton from an example payload. The payload may be bare JSON or an HTTP transcript whose first line is a status line (e.g. \"HTTP/1.1 201 Created\"). Returns the detected status code and the inferred schema.",
	}, handleInferSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List the endpoints documented in an apidoc api_data.json export. Filter by method, group or URL substring. Returns method, OpenAPI path, name and group per endpoint. Use group_by (group or method) to get distribution counts instead of individual items. Default limit is configurable via APIDOC2OAS_LIST_LIMIT.",
	}, handleListEndpoints)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for k, v := range counts {
		groups = append(groups, groupCount{Key: k, Count: v})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
