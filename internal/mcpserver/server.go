// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes recase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/recase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `recase MCP server — converts identifiers between naming conventions and normalizes the keys of YAML/JSON documents.

Supported conventions: camel, pascal, snake, screaming-snake, kebab, dot, title. Use the conventions tool to see an example of each.

Configuration: defaults are configurable via RECASE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- RECASE_DEFAULT_CONVENTION — target used when a tool call omits one
- RECASE_MAX_BATCH (default: 100) — maximum texts per convert call
- RECASE_MAX_INPUT_BYTES (default: 1048576) — maximum document size for rename_keys`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: recase.Version()},
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
		Description: "Convert one identifier (text) or a batch of identifiers (texts) to a target naming convention. Input may be in any convention: snake_case, kebab-case, SCREAMING_CASE, camelCase, or space-separated words. Returns a per-item result so one bad identifier does not fail the batch. Batch size is capped by RECASE_MAX_BATCH.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_keys",
		Description: "Rewrite every mapping key of a YAML or JSON document to a target naming convention. Key order, values, and comments are preserved. Keys that cannot be converted or that would collide with a sibling are kept unchanged and reported as issues. Use output to write to a file instead of returning the document inline.",
	}, handleRenameKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "conventions",
		Description: "List the supported naming conventions with an example conversion for each. Call this to discover valid values for the target argument of the other tools.",
	}, handleConventions)
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
