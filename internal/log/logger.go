// Package log provides the verbose diagnostic logger used by the engine.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr).
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger writing to w when enabled is true.
func New(w io.Writer, enabled bool) *Logger {
	return &Logger{Enabled: enabled, W: w}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op on a nil or disabled logger.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
