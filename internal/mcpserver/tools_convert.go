package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase"
)

type convertInput struct {
	Text   string   `json:"text,omitempty"   jsonschema:"A single identifier or phrase to convert"`
	Texts  []string `json:"texts,omitempty"  jsonschema:"A batch of identifiers to convert"`
	Target string   `json:"target,omitempty" jsonschema:"Target convention (camel\\, pascal\\, snake\\, screaming-snake\\, kebab\\, dot\\, or title). Defaults to RECASE_DEFAULT_CONVENTION."`
}

type convertItem struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type convertOutput struct {
	Target     string        `json:"target"`
	Count      int           `json:"count"`
	ErrorCount int           `json:"error_count"`
	Results    []convertItem `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	target := input.Target
	if target == "" {
		target = cfg.DefaultConvention
	}
	if target == "" {
		return errResult(fmt.Errorf("target convention is required")), convertOutput{}, nil
	}
	convention, err := recase.ParseConvention(target)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	texts := input.Texts
	if input.Text != "" {
		texts = append([]string{input.Text}, texts...)
	}
	if len(texts) == 0 {
		return errResult(fmt.Errorf("at least one of text or texts is required")), convertOutput{}, nil
	}
	if len(texts) > cfg.MaxBatch {
		return errResult(fmt.Errorf("batch of %d texts exceeds limit of %d", len(texts), cfg.MaxBatch)), convertOutput{}, nil
	}

	output := convertOutput{
		Target:  convention.String(),
		Count:   len(texts),
		Results: makeSlice[convertItem](len(texts)),
	}
	for _, text := range texts {
		item := convertItem{Input: text}
		converted, err := recase.Convert(text, convention)
		if err != nil {
			item.Error = err.Error()
			output.ErrorCount++
		} else {
			item.Output = converted
		}
		output.Results = append(output.Results, item)
	}

	return nil, output, nil
}
