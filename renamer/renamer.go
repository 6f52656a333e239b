package renamer

import (
	"errors"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/internal/issues"
	"github.com/erraggy/recase/internal/severity"
)

// Severity indicates the severity level of a rename issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about processing choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates a key that was left unchanged
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates a key that could not be processed
	SeverityError = severity.SeverityError
)

// Issue represents a single key that could not be renamed
type Issue = issues.Issue

// Result contains the results of renaming the keys of a document
type Result struct {
	// Document is the rewritten document, rendered as YAML
	Document []byte
	// Convention is the target convention every key was converted to
	Convention recase.Convention
	// KeyCount is the total number of mapping keys visited
	KeyCount int
	// RenamedCount is the number of keys whose spelling actually changed
	RenamedCount int
	// Issues lists keys that were left unchanged and why
	Issues []Issue
}

// HasIssues returns true if any key was left unchanged.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Rename converts every mapping key of content to the target convention.
// It's equivalent to RenameWithOptions(WithContent(content), WithConvention(c)).
func Rename(content []byte, c recase.Convention) (*Result, error) {
	return RenameWithOptions(WithContent(content), WithConvention(c))
}

// RenameWithOptions renames every mapping key of a YAML or JSON document using
// functional options.
//
// The document structure, key order, values, and comments are preserved; only
// key scalars are rewritten. Keys that cannot be converted, and keys whose
// converted form would collide with a sibling, are kept as-is and reported in
// Result.Issues.
//
// Example:
//
//	result, err := renamer.RenameWithOptions(
//	    renamer.WithFilePath("values.yaml"),
//	    renamer.WithConvention(recase.SnakeCase),
//	)
func RenameWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("renamer: invalid options: %w", err)
	}

	data, err := cfg.load()
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if doc.Kind == 0 {
		return nil, &caseerrors.InvalidInputError{Message: "document is empty"}
	}

	result := &Result{Convention: cfg.convention}
	w := &walker{convention: cfg.convention, maxDepth: cfg.maxDepth, result: result}
	if err := w.walk(&doc, "", 0); err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	result.Document = out
	return result, nil
}

// walker carries the rename state through the node tree.
type walker struct {
	convention recase.Convention
	maxDepth   int
	result     *Result
}

func (w *walker) walk(node *yaml.Node, path string, depth int) error {
	if depth > w.maxDepth {
		return fmt.Errorf("maximum nesting depth %d exceeded at %s", w.maxDepth, pathOrRoot(path))
	}

	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := w.walk(child, path, depth); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		if err := w.renameKeys(node, path); err != nil {
			return err
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if err := w.walk(value, childPath(path, key.Value), depth+1); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := w.walk(child, path+"["+strconv.Itoa(i)+"]", depth+1); err != nil {
				return err
			}
		}
	}
	// Scalar and alias nodes are left untouched; alias targets are visited
	// at their anchor.
	return nil
}

// renameKeys rewrites the key scalars of a single mapping node. A rename is
// only applied when the converted spelling is not already held by a sibling,
// either as an original key or as an earlier rename; colliding keys are kept
// unchanged and reported.
func (w *walker) renameKeys(node *yaml.Node, path string) error {
	originals := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode {
			originals[node.Content[i].Value] = true
		}
	}

	taken := make(map[string]bool, len(originals))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		w.result.KeyCount++

		converted, err := recase.Convert(key.Value, w.convention)
		if err != nil {
			if !errors.Is(err, caseerrors.ErrNoTokens) && !errors.Is(err, caseerrors.ErrInvalidInput) {
				return err
			}
			w.result.Issues = append(w.result.Issues, Issue{
				Path:     path,
				Key:      key.Value,
				Message:  err.Error(),
				Severity: SeverityError,
				Line:     key.Line,
			})
			taken[key.Value] = true
			continue
		}

		if converted != key.Value && (taken[converted] || originals[converted]) {
			w.result.Issues = append(w.result.Issues, Issue{
				Path:     path,
				Key:      key.Value,
				Message:  fmt.Sprintf("converted key %q collides with a sibling key", converted),
				Severity: SeverityWarning,
				Line:     key.Line,
			})
			taken[key.Value] = true
			continue
		}

		taken[converted] = true
		if converted != key.Value {
			key.Value = converted
			w.result.RenamedCount++
		}
	}
	return nil
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func pathOrRoot(path string) string {
	if path == "" {
		return "document root"
	}
	return path
}
