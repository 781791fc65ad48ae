package spacearounderbtag

import (
	"strings"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "space_around_erb_tag"

const schema = `close({})`

// Linter enforces exactly one space after the opening delimiter and before
// the closing delimiter of an ERB tag.
type Linter struct {
	severity lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}
	l := &Linter{severity: lint.Convention}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	return l, nil
}

// Name implements linter.Linter.
func (l *Linter) Name() string { return Name }

// Autocorrects implements linter.Correctable.
func (l *Linter) Autocorrects() bool { return true }

// Run implements linter.Linter.
func (l *Linter) Run(src *lint.Source) []lint.Offense {
	var offenses []lint.Offense
	for _, tag := range src.Tags() {
		if tag.Close == "" || tag.Comment() {
			continue
		}

		inner := string(src.Raw[tag.Inner.Begin:tag.Inner.End])
		code := strings.TrimSpace(inner)
		if code == "" {
			continue
		}
		// Multi-line tags keep their own layout.
		if strings.ContainsRune(inner, '\n') {
			continue
		}

		want := " " + code + " "
		if inner == want {
			continue
		}

		o := lint.NewOffense(src, Name, l.severity, tag.Inner,
			"Use exactly one space after `"+tag.Open+"` and before `"+tag.Close+"`.")
		offenses = append(offenses, o.WithCorrection(want))
	}
	return offenses
}
