package linter

import (
	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
)

// Linter is a single check that inspects one ERB source file and produces
// offenses.
type Linter interface {
	Name() string
	Run(src *lint.Source) []lint.Offense
}

// Correctable is implemented by linters whose offenses may carry
// corrections. The engine only applies corrections from linters that
// declare the capability and report true from Autocorrects.
type Correctable interface {
	Linter
	Autocorrects() bool
}

// Factory constructs a linter from its resolved configuration. Factories
// validate linter-specific options and return an error naming the linter
// and the offending key when an option is invalid.
type Factory func(cfg config.Resolved) (Linter, error)
