// Package caseerrors provides structured error types for the recase library.
//
// Import path: github.com/erraggy/recase/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the failure categories of a case
// conversion and decide how to present them.
//
// # Error Types
//
// The package provides two core error types:
//
//   - [InvalidInputError]: the input was blank after trimming whitespace
//   - [NoTokensError]: the input contained no alphanumeric characters
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: matches any [InvalidInputError]
//   - [ErrNoTokens]: matches any [NoTokensError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	out, err := recase.ToKebabCase(s)
//	if errors.Is(err, caseerrors.ErrNoTokens) {
//	    // Input was nothing but separators
//	}
//
// Extract error details with errors.As():
//
//	var inputErr *caseerrors.InvalidInputError
//	if errors.As(err, &inputErr) {
//	    fmt.Printf("rejected input: %q\n", inputErr.Input)
//	}
//
// Both kinds are raised synchronously to the immediate caller. The conversion
// functions never swallow an error and never fall back to returning an empty
// or partial string.
package caseerrors
