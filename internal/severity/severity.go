// Package severity provides severity level constants for issues reported by
// the renamer package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found while renaming
// document keys.
type Severity int

const (
	// SeverityError indicates a problem that prevented processing a key.
	SeverityError Severity = iota

	// SeverityWarning indicates a key that was left unchanged, for example
	// because its converted form collided with a sibling key.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
