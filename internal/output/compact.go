package output

import (
	"fmt"
	"io"

	"github.com/wscourge/erb-lint/internal/engine"
)

// CompactReporter prints one line per offense in the pattern:
// file:line:col: message
type CompactReporter struct{}

// Render implements Reporter.
func (r *CompactReporter) Render(w io.Writer, res *engine.Result, _ engine.Decision, _ bool) error {
	for _, f := range res.Files {
		for _, o := range f.Offenses {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n",
				o.Path, o.Line, o.Column, o.Message); err != nil {
				return err
			}
		}
	}
	return nil
}
