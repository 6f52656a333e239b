package recase

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/internal/tokenizer"
)

// Convention identifies a target naming convention, defined by its per-token
// casing rule and its joiner character.
type Convention int

const (
	// CamelCase joins capitalized tokens with the first token fully lowercased (firstName)
	CamelCase Convention = iota
	// PascalCase joins capitalized tokens (FirstName)
	PascalCase
	// SnakeCase joins lowercased tokens with underscores (first_name)
	SnakeCase
	// ScreamingSnakeCase joins uppercased tokens with underscores (FIRST_NAME)
	ScreamingSnakeCase
	// KebabCase joins lowercased tokens with hyphens (first-name)
	KebabCase
	// DotCase joins lowercased tokens with dots (first.name)
	DotCase
	// TitleCase joins title-cased tokens with spaces (First Name)
	TitleCase
)

// conventionNames maps the external name of each convention, as accepted by
// ParseConvention and used by the CLI and MCP server, to its constant.
var conventionNames = map[string]Convention{
	"camel":           CamelCase,
	"pascal":          PascalCase,
	"snake":           SnakeCase,
	"screaming-snake": ScreamingSnakeCase,
	"kebab":           KebabCase,
	"dot":             DotCase,
	"title":           TitleCase,
}

// String returns the external name of the convention.
func (c Convention) String() string {
	switch c {
	case CamelCase:
		return "camel"
	case PascalCase:
		return "pascal"
	case SnakeCase:
		return "snake"
	case ScreamingSnakeCase:
		return "screaming-snake"
	case KebabCase:
		return "kebab"
	case DotCase:
		return "dot"
	case TitleCase:
		return "title"
	default:
		return "unknown"
	}
}

// ParseConvention returns the Convention named by s.
// Valid names are those returned by ValidConventions.
func ParseConvention(s string) (Convention, error) {
	c, ok := conventionNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown convention '%s'. Valid conventions: %s", s, strings.Join(ValidConventions(), ", "))
	}
	return c, nil
}

// ValidConventions returns the names of all supported conventions, sorted.
func ValidConventions() []string {
	names := make([]string, 0, len(conventionNames))
	for name := range conventionNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsValidConvention reports whether s names a supported convention.
func IsValidConvention(s string) bool {
	_, ok := conventionNames[s]
	return ok
}

// Convert transforms input into the target convention.
//
// Every conversion runs the same pipeline: the input is validated, camelCase
// word boundaries are expanded, the result is split into ASCII alphanumeric
// tokens, and the tokens are recombined under the convention's casing and
// joiner rules. Tokens are normalized to lowercase before recapitalization, so
// the supported input conventions (space, underscore, hyphen, camel, all-caps)
// all converge to identical output.
//
// It returns a *caseerrors.InvalidInputError when input is blank after
// trimming whitespace, and a *caseerrors.NoTokensError when input contains no
// ASCII alphanumeric characters. Conversion never falls back to returning an
// empty or partial string.
func Convert(input string, c Convention) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &caseerrors.InvalidInputError{Input: input, Message: "must be a non-empty string"}
	}

	tokens, err := tokenizer.Split(tokenizer.Expand(trimmed))
	if err != nil {
		return "", err
	}

	switch c {
	case CamelCase:
		var b strings.Builder
		for i, tok := range tokens {
			if i == 0 {
				b.WriteString(strings.ToLower(tok))
				continue
			}
			b.WriteString(capitalize(tok))
		}
		return b.String(), nil
	case PascalCase:
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(capitalize(tok))
		}
		return b.String(), nil
	case SnakeCase:
		return joinTokens(tokens, "_", strings.ToLower), nil
	case ScreamingSnakeCase:
		return joinTokens(tokens, "_", strings.ToUpper), nil
	case KebabCase:
		return joinTokens(tokens, "-", strings.ToLower), nil
	case DotCase:
		return joinTokens(tokens, ".", strings.ToLower), nil
	case TitleCase:
		// strings.Title is deprecated; use golang.org/x/text/cases instead.
		// A Caser is stateful, so a fresh one is created per call to keep
		// conversions safe for concurrent use.
		titleCaser := cases.Title(language.English)
		return joinTokens(tokens, " ", func(tok string) string {
			return titleCaser.String(strings.ToLower(tok))
		}), nil
	default:
		return "", fmt.Errorf("unknown convention: %d", int(c))
	}
}

// ToCamelCase converts input to camelCase.
// Example: "first name" -> "firstName"
// Example: "SCREEN_NAME" -> "screenName"
func ToCamelCase(input string) (string, error) {
	return Convert(input, CamelCase)
}

// ToPascalCase converts input to PascalCase.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(input string) (string, error) {
	return Convert(input, PascalCase)
}

// ToSnakeCase converts input to snake_case.
// Example: "UserProfile" -> "user_profile"
func ToSnakeCase(input string) (string, error) {
	return Convert(input, SnakeCase)
}

// ToScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE.
// Example: "userProfile" -> "USER_PROFILE"
func ToScreamingSnakeCase(input string) (string, error) {
	return Convert(input, ScreamingSnakeCase)
}

// ToKebabCase converts input to kebab-case.
// Example: "  multiple__separators--here " -> "multiple-separators-here"
func ToKebabCase(input string) (string, error) {
	return Convert(input, KebabCase)
}

// ToDotCase converts input to dot.case.
// Example: "helloWorld" -> "hello.world"
func ToDotCase(input string) (string, error) {
	return Convert(input, DotCase)
}

// ToTitleCase converts input to Title Case.
// Example: "hello_world" -> "Hello World"
func ToTitleCase(input string) (string, error) {
	return Convert(input, TitleCase)
}

// capitalize lowercases the entire token and then uppercases its first
// character. Lowercasing first guarantees "SCREEN" -> "Screen", not "SCREEN".
func capitalize(tok string) string {
	lower := strings.ToLower(tok)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func joinTokens(tokens []string, sep string, transform func(string) string) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = transform(tok)
	}
	return strings.Join(out, sep)
}
