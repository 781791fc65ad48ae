package output

import (
	"encoding/json"
	"io"

	"github.com/wscourge/erb-lint/internal/engine"
)

// JSONReporter dumps the run result as machine-readable JSON.
type JSONReporter struct{}

type jsonOffense struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
	Length    int    `json:"length"`
	Linter    string `json:"linter"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Ignored   bool   `json:"ignored"`
}

type jsonSummary struct {
	Offenses  int  `json:"offenses"`
	Found     int  `json:"found"`
	Ignored   int  `json:"ignored"`
	Corrected int  `json:"corrected"`
	Success   bool `json:"success"`
}

type jsonReport struct {
	Linters         int           `json:"linters"`
	Autocorrectable int           `json:"autocorrectable"`
	Files           int           `json:"files"`
	Offenses        []jsonOffense `json:"offenses"`
	Summary         jsonSummary   `json:"summary"`
}

// Render implements Reporter. An offense-free run produces an empty
// offenses array, not null.
func (r *JSONReporter) Render(w io.Writer, res *engine.Result, dec engine.Decision, _ bool) error {
	report := jsonReport{
		Linters:         res.LintersRun,
		Autocorrectable: res.Correctable,
		Files:           len(res.Files),
		Offenses:        make([]jsonOffense, 0),
		Summary: jsonSummary{
			Found:     dec.Found,
			Ignored:   dec.Ignored,
			Corrected: res.Corrected,
			Success:   dec.Success,
		},
	}

	for _, f := range res.Files {
		for _, o := range f.Offenses {
			report.Offenses = append(report.Offenses, jsonOffense{
				File:      o.Path,
				Line:      o.Line,
				Column:    o.Column,
				EndLine:   o.EndLine,
				EndColumn: o.EndColumn,
				Length:    o.Range.Length(),
				Linter:    o.Linter,
				Severity:  o.Severity.String(),
				Message:   o.Message,
				Ignored:   o.Severity < dec.FailLevel,
			})
		}
	}
	report.Summary.Offenses = len(report.Offenses)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
