package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/recase"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultConvention is used when a tool call omits the target argument.
	// Empty means the target argument is required.
	DefaultConvention string

	// MaxBatch caps the number of texts accepted by a single convert call.
	MaxBatch int

	// MaxInputBytes caps the document size accepted by rename_keys.
	MaxInputBytes int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RECASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultConvention: envConvention("RECASE_DEFAULT_CONVENTION"),
		MaxBatch:          envInt("RECASE_MAX_BATCH", 100),
		MaxInputBytes:     envInt("RECASE_MAX_INPUT_BYTES", 1<<20),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envConvention(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !recase.IsValidConvention(v) {
		slog.Warn("invalid convention env var, ignoring", "key", key, "value", v)
		return ""
	}
	return v
}
