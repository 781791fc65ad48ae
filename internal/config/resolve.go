package config

import (
	"fmt"

	"github.com/wscourge/erb-lint/internal/lint"
)

// Names reports which linter names are registered. The linter registry
// satisfies this.
type Names interface {
	Has(name string) bool
}

// NotFoundError reports a request for the configuration of a linter name
// that is not registered.
type NotFoundError struct {
	Linter string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown linter: %s", e.Linter)
}

// Resolved is the fully resolved configuration for one linter.
type Resolved struct {
	Name    string
	Enabled bool
	// Exclude is the union of the linter's own excludes and the global
	// excludes. Duplicates are not removed.
	Exclude  []string
	Severity *lint.Severity
	Options  map[string]any
}

// ForLinter resolves the configuration for the named linter. It fails with
// a *NotFoundError when the name is not registered. A linter absent from the
// configuration resolves to a disabled config with the global excludes.
func (c *Config) ForLinter(names Names, name string) (Resolved, error) {
	if !names.Has(name) {
		return Resolved{}, &NotFoundError{Linter: name}
	}

	lc := c.Linters[name]
	resolved := Resolved{
		Name:    name,
		Enabled: lc.IsEnabled(),
		Exclude: append(append([]string(nil), lc.Exclude...), c.Exclude...),
		Options: lc.Options,
	}

	if lc.Severity != "" {
		sev, err := lint.ParseSeverity(lc.Severity)
		if err != nil {
			return Resolved{}, fmt.Errorf("linter %s: %w", name, err)
		}
		resolved.Severity = &sev
	}

	return resolved, nil
}
