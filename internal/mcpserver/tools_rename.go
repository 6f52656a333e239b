package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/renamer"
)

// docInput represents the two ways a document can be provided to rename_keys.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (YAML or JSON)"`
}

type renameKeysInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document whose keys should be renamed"`
	Target string   `json:"target,omitempty" jsonschema:"Target convention for every mapping key. Defaults to RECASE_DEFAULT_CONVENTION."`
	Output string   `json:"output,omitempty" jsonschema:"File path to write the renamed document. If omitted the document is returned inline."`
}

type renameIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Key      string `json:"key"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

type renameKeysOutput struct {
	Target       string        `json:"target"`
	KeyCount     int           `json:"key_count"`
	RenamedCount int           `json:"renamed_count"`
	IssueCount   int           `json:"issue_count"`
	Issues       []renameIssue `json:"issues,omitempty"`
	WrittenTo    string        `json:"written_to,omitempty"`
	Document     string        `json:"document,omitempty"`
}

func handleRenameKeys(_ context.Context, _ *mcp.CallToolRequest, input renameKeysInput) (*mcp.CallToolResult, renameKeysOutput, error) {
	target := input.Target
	if target == "" {
		target = cfg.DefaultConvention
	}
	if target == "" {
		return errResult(fmt.Errorf("target convention is required")), renameKeysOutput{}, nil
	}
	convention, err := recase.ParseConvention(target)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	opts, err := buildRenamerOptions(input, convention)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	result, err := renamer.RenameWithOptions(opts...)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	output := renameKeysOutput{
		Target:       result.Convention.String(),
		KeyCount:     result.KeyCount,
		RenamedCount: result.RenamedCount,
		IssueCount:   len(result.Issues),
	}
	output.Issues = makeSlice[renameIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, renameIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Key:      issue.Key,
			Line:     issue.Line,
			Message:  issue.Message,
		})
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, result.Document, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), renameKeysOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(result.Document)
	}

	return nil, output, nil
}

// buildRenamerOptions translates the MCP input into renamer options,
// handling the two input modes (file, content) and the size limit.
func buildRenamerOptions(input renameKeysInput, convention recase.Convention) ([]renamer.Option, error) {
	if input.Doc.File != "" && input.Doc.Content != "" {
		return nil, fmt.Errorf("provide exactly one of doc.file or doc.content")
	}

	opts := []renamer.Option{renamer.WithConvention(convention)}
	switch {
	case input.Doc.File != "":
		info, err := os.Stat(input.Doc.File)
		if err != nil {
			return nil, err
		}
		if info.Size() > int64(cfg.MaxInputBytes) {
			return nil, fmt.Errorf("document of %d bytes exceeds limit of %d", info.Size(), cfg.MaxInputBytes)
		}
		opts = append(opts, renamer.WithFilePath(input.Doc.File))
	case input.Doc.Content != "":
		if len(input.Doc.Content) > cfg.MaxInputBytes {
			return nil, fmt.Errorf("document of %d bytes exceeds limit of %d", len(input.Doc.Content), cfg.MaxInputBytes)
		}
		opts = append(opts, renamer.WithContent([]byte(input.Doc.Content)))
	default:
		return nil, fmt.Errorf("one of doc.file or doc.content is required")
	}
	return opts, nil
}
