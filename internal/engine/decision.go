package engine

import "github.com/wscourge/erb-lint/internal/lint"

// Decision is the outcome of a run against a fail level.
type Decision struct {
	// FailLevel is the severity threshold the decision was made against.
	FailLevel lint.Severity
	// Found counts offenses at or above the fail level.
	Found int
	// Ignored counts offenses below the fail level. Ignored offenses are
	// still reported but never cause failure.
	Ignored int
	// Success is true iff no offense reached the fail level.
	Success bool
}

// Decide partitions offenses against failLevel and computes the outcome.
// Found + Ignored always equals the number of offenses.
func Decide(offenses []lint.Offense, failLevel lint.Severity) Decision {
	d := Decision{FailLevel: failLevel}
	for _, o := range offenses {
		if o.Severity >= failLevel {
			d.Found++
		} else {
			d.Ignored++
		}
	}
	d.Success = d.Found == 0
	return d
}
