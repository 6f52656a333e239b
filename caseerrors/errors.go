package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates the input was rejected before tokenization.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTokens indicates tokenization produced zero tokens.
	ErrNoTokens = errors.New("no tokens found")
)

// InvalidInputError reports an input that failed validation before any
// tokenization was attempted: it was empty, or blank after trimming
// leading and trailing whitespace.
type InvalidInputError struct {
	// Input is the raw value as supplied by the caller
	Input string
	// Message describes the validation failure
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidInputError) Error() string {
	msg := "invalid input"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" (input: %q)", e.Input)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NoTokensError reports an input that passed validation but contained no
// ASCII alphanumeric characters, so splitting it produced zero tokens
// (for example "---" or "...").
type NoTokensError struct {
	// Input is the value that produced no tokens
	Input string
}

// Error returns a human-readable error message.
func (e *NoTokensError) Error() string {
	return fmt.Sprintf("no tokens found in input %q", e.Input)
}

// Is reports whether target matches this error type.
func (e *NoTokensError) Is(target error) bool {
	return target == ErrNoTokens
}
