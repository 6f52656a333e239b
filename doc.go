// Package recase converts free-form text and identifiers between naming conventions.
//
// recase transforms input written in any common convention (snake_case,
// kebab-case, SCREAMING_CASE, camelCase, space-separated words) into a chosen
// target convention. It is intended for developer tools that normalize keys,
// filenames, or identifiers.
//
// # Overview
//
// The module consists of three packages:
//
//   - recase: the conversion functions and the Convention type
//   - renamer: normalize every mapping key of a YAML or JSON document
//   - caseerrors: structured error types for programmatic handling
//
// Every conversion shares one pipeline: validate the input, expand camelCase
// word boundaries, split into ASCII alphanumeric tokens, and rejoin the tokens
// under the target convention's casing and joiner rules. Conversions are pure
// functions with no shared state and are safe for concurrent use.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/recase
//
// # Quick Start
//
// Convert an identifier:
//
//	out, err := recase.ToCamelCase("SCREEN_NAME")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // screenName
//
// Convert to a convention chosen at runtime:
//
//	conv, err := recase.ParseConvention("kebab")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := recase.Convert("multiple__separators--here", conv)
//
// Normalize the keys of a YAML document:
//
//	import "github.com/erraggy/recase/renamer"
//
//	result, err := renamer.Rename(content, recase.SnakeCase)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Document)
//
// # Error Handling
//
// Conversion fails rather than returning a fallback value: blank input yields
// a *caseerrors.InvalidInputError and separator-only input yields a
// *caseerrors.NoTokensError. Both support errors.Is via the package's
// sentinel errors.
//
// # Limitations
//
// Word segmentation is ASCII-only: characters outside [A-Za-z0-9] are treated
// as separators. Casing is not locale aware and acronym casing is not
// preserved ("parseURLFast" keeps "URLFast" as one word, and camelCase output
// renders it as "Urlfast").
package recase
