// Package issues provides a unified issue type for problems found while
// renaming document keys.
package issues

import (
	"fmt"

	"github.com/erraggy/recase/internal/severity"
)

// Issue represents a single problem found during key renaming.
type Issue struct {
	// Path is the dotted path to the mapping that holds the key
	// (e.g., "spec.template.metadata"); empty at the document root
	Path string
	// Key is the original key that could not be renamed
	Key string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Line is the 1-based line number of the key in the source document (0 if unknown)
	Line int
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	location := i.Key
	if i.Path != "" {
		location = i.Path + "." + i.Key
	}
	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d): %s", symbol, location, i.Line, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, location, i.Message)
}
