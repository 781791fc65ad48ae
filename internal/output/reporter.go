package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wscourge/erb-lint/internal/engine"
)

// Reporter renders a run result as text. Render is pure: it has no side
// effects beyond writing to w.
type Reporter interface {
	Render(w io.Writer, res *engine.Result, dec engine.Decision, autocorrect bool) error
}

// UnknownFormatError reports a request for a format name that is not
// registered. Valid carries the accepted names, sorted.
type UnknownFormatError struct {
	Name  string
	Valid []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format: %s (valid formats: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}

// DefaultFormat is the reporter used when none is requested.
const DefaultFormat = "multiline"

var reporters = map[string]func() Reporter{
	"multiline": func() Reporter { return &MultilineReporter{} },
	"compact":   func() Reporter { return &CompactReporter{} },
	"json":      func() Reporter { return &JSONReporter{} },
	"junit":     func() Reporter { return &JUnitReporter{} },
}

// Lookup returns the reporter registered under name, or an
// *UnknownFormatError listing the valid format names.
func Lookup(name string) (Reporter, error) {
	if build, ok := reporters[name]; ok {
		return build(), nil
	}
	return nil, &UnknownFormatError{Name: name, Valid: Formats()}
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(reporters))
	for name := range reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
