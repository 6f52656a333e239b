package renamer

import (
	"fmt"
	"os"

	"github.com/erraggy/recase"
)

// DefaultMaxDepth is the default nesting depth limit for documents.
const DefaultMaxDepth = 100

// Option is a function that configures a rename operation
type Option func(*renameConfig) error

// renameConfig holds configuration for a rename operation
type renameConfig struct {
	// Input sources (exactly one required)
	content  []byte
	filePath string

	// Target convention (required)
	convention    recase.Convention
	conventionSet bool

	// Resource limits
	maxDepth int
}

// WithContent supplies the document to rename as an inline byte slice.
func WithContent(content []byte) Option {
	return func(cfg *renameConfig) error {
		if cfg.filePath != "" {
			return fmt.Errorf("cannot combine WithContent and WithFilePath")
		}
		cfg.content = content
		return nil
	}
}

// WithFilePath supplies the document to rename as a file path.
func WithFilePath(path string) Option {
	return func(cfg *renameConfig) error {
		if cfg.content != nil {
			return fmt.Errorf("cannot combine WithContent and WithFilePath")
		}
		if path == "" {
			return fmt.Errorf("file path must not be empty")
		}
		cfg.filePath = path
		return nil
	}
}

// WithConvention sets the target naming convention for all mapping keys.
func WithConvention(c recase.Convention) Option {
	return func(cfg *renameConfig) error {
		cfg.convention = c
		cfg.conventionSet = true
		return nil
	}
}

// WithMaxDepth overrides the nesting depth limit (default DefaultMaxDepth).
func WithMaxDepth(depth int) Option {
	return func(cfg *renameConfig) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

func applyOptions(opts ...Option) (*renameConfig, error) {
	cfg := &renameConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.content == nil && cfg.filePath == "" {
		return nil, fmt.Errorf("an input source is required: use WithContent or WithFilePath")
	}
	if !cfg.conventionSet {
		return nil, fmt.Errorf("a target convention is required: use WithConvention")
	}
	return cfg, nil
}

// load returns the document bytes from whichever input source was configured.
func (cfg *renameConfig) load() ([]byte, error) {
	if cfg.filePath != "" {
		data, err := os.ReadFile(cfg.filePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", cfg.filePath, err)
		}
		return data, nil
	}
	return cfg.content, nil
}
