package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"camle", "camel"},
		{"camek", "camel"},
		{"pasal", "pascal"},
		{"snak", "snake"},
		{"kebap", "kebab"},
		{"dott", "dot"},
		{"titel", "title"},
		{"keyz", "keys"},
		{"mvp", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"screaming", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"camel", "camel", 0},
		{"camel", "camle", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := editDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
