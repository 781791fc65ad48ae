package parsererrors

import (
	"testing"

	"github.com/wscourge/erb-lint/internal/config"
	"github.com/wscourge/erb-lint/internal/lint"
)

func mustNew(t *testing.T, cfg config.Resolved) *Linter {
	t.Helper()
	l, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return l.(*Linter)
}

func run(t *testing.T, cfg config.Resolved, content string) []lint.Offense {
	t.Helper()
	return mustNew(t, cfg).Run(lint.NewSource("test.html.erb", []byte(content)))
}

func TestCleanTemplate(t *testing.T) {
	offenses := run(t, config.Resolved{}, "<p><%= user.name %></p>\n")
	if len(offenses) != 0 {
		t.Errorf("offenses = %+v", offenses)
	}
}

func TestUnclosedTag(t *testing.T) {
	offenses := run(t, config.Resolved{}, "<% if admin?\n")
	if len(offenses) != 1 {
		t.Fatalf("offenses = %+v", offenses)
	}
	o := offenses[0]
	if o.Severity != lint.Error {
		t.Errorf("severity = %v, want error", o.Severity)
	}
	if o.Range.Begin != 0 || o.Range.End != 2 {
		t.Errorf("range = %+v, want the opening delimiter", o.Range)
	}
	if o.Message != "unclosed ERB tag: missing closing delimiter" {
		t.Errorf("message = %q", o.Message)
	}
}

func TestStrayCloser(t *testing.T) {
	offenses := run(t, config.Resolved{}, "foo %> bar\n")
	if len(offenses) != 1 {
		t.Fatalf("offenses = %+v", offenses)
	}
	o := offenses[0]
	if o.Range.Begin != 4 || o.Range.End != 6 {
		t.Errorf("range = %+v", o.Range)
	}
	if o.Message != "stray ERB closing delimiter without a matching opener" {
		t.Errorf("message = %q", o.Message)
	}
}

func TestSeverityOverride(t *testing.T) {
	sev := lint.Warning
	offenses := run(t, config.Resolved{Severity: &sev}, "<% broken\n")
	if len(offenses) != 1 || offenses[0].Severity != lint.Warning {
		t.Errorf("offenses = %+v", offenses)
	}
}

func TestRejectsUnknownOption(t *testing.T) {
	_, err := New(config.Resolved{Options: map[string]any{"strict": true}})
	if err == nil {
		t.Error("unknown option must be rejected")
	}
}
