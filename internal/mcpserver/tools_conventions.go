package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase"
)

type conventionsInput struct{}

type conventionInfo struct {
	Name    string `json:"name"`
	Example string `json:"example"`
}

type conventionsOutput struct {
	Conventions []conventionInfo `json:"conventions"`
}

// conventionSample is the input every conventions listing converts,
// chosen to show the joiner and both casing rules of each convention.
const conventionSample = "first name"

func handleConventions(_ context.Context, _ *mcp.CallToolRequest, _ conventionsInput) (*mcp.CallToolResult, conventionsOutput, error) {
	names := recase.ValidConventions()
	output := conventionsOutput{Conventions: makeSlice[conventionInfo](len(names))}

	for _, name := range names {
		convention, err := recase.ParseConvention(name)
		if err != nil {
			return errResult(err), conventionsOutput{}, nil
		}
		example, err := recase.Convert(conventionSample, convention)
		if err != nil {
			return errResult(err), conventionsOutput{}, nil
		}
		output.Conventions = append(output.Conventions, conventionInfo{
			Name:    name,
			Example: example,
		})
	}

	return nil, output, nil
}
