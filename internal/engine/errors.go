package engine

import (
	"fmt"
	"strings"
)

// UnknownLinterError reports a request for a linter name that is not
// registered. Known carries every registered name for the user.
type UnknownLinterError struct {
	Name  string
	Known []string
}

func (e *UnknownLinterError) Error() string {
	return fmt.Sprintf("unknown linter: %s (known linters: %s)",
		e.Name, strings.Join(e.Known, ", "))
}

// NoFilesError reports that no files remained after discovery and exclude
// filtering. It is an informative empty result, not a crash, but still
// yields a failure outcome.
type NoFilesError struct{}

func (e *NoFilesError) Error() string {
	return "no files found"
}

// LinterCrashError reports an unexpected internal error in a linter. It
// aborts the whole invocation.
type LinterCrashError struct {
	Linter string
	Path   string
	Err    error
}

func (e *LinterCrashError) Error() string {
	return fmt.Sprintf("linter %s crashed on %s: %v", e.Linter, e.Path, e.Err)
}

func (e *LinterCrashError) Unwrap() error { return e.Err }
