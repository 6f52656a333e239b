// Package tokenizer splits identifier-like strings into ASCII alphanumeric tokens.
//
// Tokenization is a two step process shared by every conversion in recase:
// Expand inserts word boundaries into camelCase-style input, then Split cuts
// the result on every run of non-alphanumeric characters. Only the ASCII
// alphabet [A-Za-z0-9] counts as token material; everything else, including
// non-ASCII letters, is treated as a separator.
package tokenizer

import (
	"strings"

	"github.com/erraggy/recase/caseerrors"
)

// Expand inserts a single space at every position where an ASCII lowercase
// letter or digit is immediately followed by an ASCII uppercase letter, making
// camelCase input splittable by Split.
//
// Example: "helloWorld" -> "hello World"
// Example: "item2ID" -> "item2 ID"
//
// Consecutive uppercase letters are left joined, so acronym runs survive as a
// single word: "parseURLFast" -> "parse URLFast".
func Expand(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	prevSplittable := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if prevSplittable && isUpper(c) {
			result.WriteByte(' ')
		}
		result.WriteByte(c)
		prevSplittable = isLower(c) || isDigit(c)
	}

	return result.String()
}

// Split cuts s on every maximal run of one or more characters outside
// [A-Za-z0-9] and returns the non-empty tokens in input order. Leading,
// trailing, and consecutive separators produce no token.
//
// It returns a *caseerrors.NoTokensError when zero tokens remain, which
// happens when s consists entirely of separator characters.
func Split(s string) ([]string, error) {
	var tokens []string
	start := -1

	for i := 0; i < len(s); i++ {
		if isAlphanumeric(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}

	if len(tokens) == 0 {
		return nil, &caseerrors.NoTokensError{Input: s}
	}
	return tokens, nil
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumeric(c byte) bool {
	return isLower(c) || isUpper(c) || isDigit(c)
}
