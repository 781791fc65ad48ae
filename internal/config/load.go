package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFileName = ".erb-lint.yml"

// FileMissingError reports that a config file does not exist. It is distinct
// from a file that exists but is empty, which loads as an empty Config.
type FileMissingError struct {
	Path string
}

func (e *FileMissingError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// Load reads and parses a config file at the given path. A missing file
// returns a *FileMissingError; an empty file returns an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &FileMissingError{Path: path}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Linters == nil {
		cfg.Linters = map[string]Linter{}
	}

	return &cfg, nil
}

// defaultEnabled is the baseline set of linters switched on when no user
// configuration exists.
var defaultEnabled = []string{
	"parser_errors",
	"final_newline",
	"trailing_whitespace",
	"space_around_erb_tag",
	"extra_newline",
	"right_trim",
}

// Default returns the built-in configuration: the baseline linters enabled
// with default settings and no excludes.
func Default() *Config {
	enabled := true
	linters := make(map[string]Linter, len(defaultEnabled))
	for _, name := range defaultEnabled {
		linters[name] = Linter{Enabled: &enabled}
	}
	return &Config{Linters: linters}
}
