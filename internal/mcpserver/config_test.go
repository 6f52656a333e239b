package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearRECASEEnv clears all RECASE_* env vars to isolate tests from the ambient environment.
func clearRECASEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RECASE_DEFAULT_CONVENTION", "RECASE_MAX_BATCH", "RECASE_MAX_INPUT_BYTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearRECASEEnv(t)

	c := loadConfig()

	assert.Empty(t, c.DefaultConvention)
	assert.Equal(t, 100, c.MaxBatch)
	assert.Equal(t, 1<<20, c.MaxInputBytes)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearRECASEEnv(t)
	t.Setenv("RECASE_DEFAULT_CONVENTION", "kebab")
	t.Setenv("RECASE_MAX_BATCH", "5")
	t.Setenv("RECASE_MAX_INPUT_BYTES", "2048")

	c := loadConfig()

	assert.Equal(t, "kebab", c.DefaultConvention)
	assert.Equal(t, 5, c.MaxBatch)
	assert.Equal(t, 2048, c.MaxInputBytes)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearRECASEEnv(t)
	t.Setenv("RECASE_DEFAULT_CONVENTION", "camelCase")
	t.Setenv("RECASE_MAX_BATCH", "not-a-number")
	t.Setenv("RECASE_MAX_INPUT_BYTES", "-1")

	c := loadConfig()

	assert.Empty(t, c.DefaultConvention, "invalid convention should be ignored")
	assert.Equal(t, 100, c.MaxBatch)
	assert.Equal(t, 1<<20, c.MaxInputBytes)
}
