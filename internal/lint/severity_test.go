package lint

import "testing"

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{Info, Refactor, Convention, Warning, Error, Fatal}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestSeverityCodes(t *testing.T) {
	want := map[Severity]string{
		Info:       "I",
		Refactor:   "R",
		Convention: "C",
		Warning:    "W",
		Error:      "E",
		Fatal:      "F",
	}
	for sev, code := range want {
		if got := sev.Code(); got != code {
			t.Errorf("%s.Code() = %q, want %q", sev, got, code)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", Info, true},
		{"I", Info, true},
		{"refactor", Refactor, true},
		{"R", Refactor, true},
		{"convention", Convention, true},
		{"C", Convention, true},
		{"warning", Warning, true},
		{"W", Warning, true},
		{"error", Error, true},
		{"E", Error, true},
		{"fatal", Fatal, true},
		{"F", Fatal, true},
		{"WARNING", Warning, true},
		{"w", Warning, true},
		{"", Info, false},
		{"critical", Info, false},
		{"X", Info, false},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.ok && err != nil {
			t.Errorf("ParseSeverity(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if !tt.ok {
			if err == nil {
				t.Errorf("ParseSeverity(%q): expected error", tt.in)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if got := Convention.String(); got != "convention" {
		t.Errorf("Convention.String() = %q", got)
	}
	if got := Severity(99).String(); got != "unknown" {
		t.Errorf("Severity(99).String() = %q", got)
	}
}
