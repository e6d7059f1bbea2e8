package viewfind

import (
	"fmt"
	"os"

	"github.com/skosovsky/viewfind/internal/cast"

	"gopkg.in/yaml.v3"
)

// Config is the file-level view configuration.
// Root is a single directory or an ordered list of directories.
type Config struct {
	Root          any    `yaml:"root"`
	DefaultEngine string `yaml:"default_engine"`
}

// ParseConfig parses a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := c.Roots(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return Config{}, fmt.Errorf("viewfind: read config: %w", err)
	}
	return ParseConfig(data)
}

// Roots returns the configured roots, or [DefaultRoot] when Root is unset.
func (c Config) Roots() ([]string, error) {
	roots, ok := cast.ToStrings(c.Root)
	if !ok {
		return nil, fmt.Errorf("%w: root must be a string or a list of strings, got %T", ErrConfig, c.Root)
	}
	if roots == nil {
		return []string{DefaultRoot}, nil
	}
	return roots, nil
}

// Options converts c into view options.
func (c Config) Options() []Option {
	opts := []Option{WithRoot(c.Root)}
	if c.DefaultEngine != "" {
		opts = append(opts, WithDefaultEngine(c.DefaultEngine))
	}
	return opts
}
