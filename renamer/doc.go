// Package renamer normalizes every mapping key of a YAML or JSON document to
// a single naming convention.
//
// Import path: github.com/erraggy/recase/renamer
//
// The renamer parses a document into a node tree, rewrites each mapping key
// through the recase conversion pipeline, and re-emits the document with key
// order and comments preserved. Values are never modified. A key that cannot
// be converted (it contains no alphanumeric characters) or whose converted
// form would collide with a sibling key is left unchanged and reported as an
// issue in the result instead of failing the whole operation.
//
// # Quick Start
//
// Convert all keys of a YAML document to snake_case:
//
//	result, err := renamer.Rename(content, recase.SnakeCase)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Fprintln(os.Stderr, issue)
//	}
//	os.Stdout.Write(result.Document)
//
// Or with functional options:
//
//	result, err := renamer.RenameWithOptions(
//	    renamer.WithFilePath("values.yaml"),
//	    renamer.WithConvention(recase.CamelCase),
//	)
//
// JSON input is accepted (YAML is a superset); the rewritten document is
// rendered as YAML.
package renamer
