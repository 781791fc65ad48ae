package parsererrors

import (
	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "parser_errors"

const schema = `close({})`

// Linter reports malformed ERB tags: openers without a matching closer and
// stray closers outside any tag.
type Linter struct {
	severity lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}
	l := &Linter{severity: lint.Error}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	var offenses []lint.Offense

	for _, tag := range src.Tags() {
		if tag.Close != "" {
			continue
		}
		r := lint.Range{Begin: tag.Begin, End: tag.Begin + len(tag.Open)}
		offenses = append(offenses, lint.NewOffense(src, Name, l.severity, r,
			"unclosed ERB tag: missing closing delimiter"))
	}

	for _, offset := range src.StrayClosers() {
		r := lint.Range{Begin: offset, End: offset + 2}
		offenses = append(offenses, lint.NewOffense(src, Name, l.severity, r,
			"stray ERB closing delimiter without a matching opener"))
	}

	return offenses
}
