package righttrim

import (
	"fmt"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
	"github.com/wscourge/erb-lint/internal/linter"
)

// Name is the canonical linter name.
const Name = "right_trim"

const schema = `close({
	enforced_style?: "-" | "="
})`

// Linter enforces a single right-trim marker style on closing ERB
// delimiters: tags written with the other style are rewritten.
type Linter struct {
	enforcedStyle string
	severity      lint.Severity
}

// New constructs the linter from its resolved configuration.
func New(cfg config.Resolved) (linter.Linter, error) {
	if err := linter.ValidateOptions(Name, schema, cfg.Options); err != nil {
		return nil, err
	}

	l := &Linter{enforcedStyle: "-", severity: lint.Convention}
	if cfg.Severity != nil {
		l.severity = *cfg.Severity
	}
	if v, ok := cfg.Options["enforced_style"]; ok {
		s, ok := v.(string)
		if !ok || (s != "-" && s != "=") {
			return nil, fmt.Errorf(`linter %s: enforced_style must be "-" or "=", got %v`, Name, v)
		}
		l.enforcedStyle = s
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
		if len(tag.Close) != 3 {
			continue
		}
		style := tag.Close[:1]
		if style == l.enforcedStyle {
			continue
		}

		trimOffset := tag.End - len(tag.Close)
		r := lint.Range{Begin: trimOffset, End: trimOffset + 1}
		o := lint.NewOffense(src, Name, l.severity, r,
			fmt.Sprintf("Prefer `%s%%>` over `%s%%>` for trimming on the right.",
				l.enforcedStyle, style))
		offenses = append(offenses, o.WithCorrection(l.enforcedStyle))
	}
	return offenses
}
