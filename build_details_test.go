package recase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// In normal builds, this is set via ldflags by GoReleaser.
// In development, it defaults to "dev".
func TestVersion(t *testing.T) {
	result := Version()

	// Should not be empty
	assert.NotEmpty(t, result, "Version() should not return empty string")

	// Should be either "dev" (development) or a semantic version (e.g., "v1.2.3")
	// We can't assert exact value since it changes per build, but we can verify format
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

// TestUserAgent verifies that UserAgent() returns a properly formatted User-Agent string.
func TestUserAgent(t *testing.T) {
	result := UserAgent()

	// Should have format "recase/{version}"
	assert.True(t, strings.HasPrefix(result, "recase/"),
		"UserAgent() should start with 'recase/', got: %s", result)
	assert.Equal(t, "recase/"+Version(), result)

	// Should not contain whitespace or other problematic characters for HTTP headers
	assert.NotContains(t, result, " ", "UserAgent() should not contain spaces")
	assert.NotContains(t, result, "\n", "UserAgent() should not contain newlines")
}
