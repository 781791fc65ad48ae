package lint

import (
	"fmt"
	"strings"
)

// Severity indicates the severity level of an offense. Levels are ordered:
// a higher value is more severe.
type Severity int

// Severity levels, ascending.
const (
	Info Severity = iota
	Refactor
	Convention
	Warning
	Error
	Fatal
)

// Severities lists all levels in ascending order.
var Severities = []Severity{Info, Refactor, Convention, Warning, Error, Fatal}

var severityNames = map[Severity]string{
	Info:       "info",
	Refactor:   "refactor",
	Convention: "convention",
	Warning:    "warning",
	Error:      "error",
	Fatal:      "fatal",
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// Code returns the single-letter code for the severity (I, R, C, W, E, F).
func (s Severity) Code() string {
	return strings.ToUpper(s.String()[:1])
}

// ParseSeverity converts a severity name or single-letter code to a Severity.
// Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	needle := strings.ToLower(s)
	for _, sev := range Severities {
		if needle == sev.String() || strings.EqualFold(s, sev.Code()) {
			return sev, nil
		}
	}
	return Info, fmt.Errorf("unknown severity %q (valid: %s)", s, severityList())
}

func severityList() string {
	names := make([]string, 0, len(Severities))
	for _, sev := range Severities {
		names = append(names, sev.String())
	}
	return strings.Join(names, ", ")
}
