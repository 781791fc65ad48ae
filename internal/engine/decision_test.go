package engine

import (
	"testing"

	"github.com/wscourge/erb-lint/internal/lint"
)

func offensesAt(severities ...lint.Severity) []lint.Offense {
	out := make([]lint.Offense, len(severities))
	for i, s := range severities {
		out[i] = lint.Offense{Severity: s}
	}
	return out
}

func TestDecidePartitionsByFailLevel(t *testing.T) {
	offenses := offensesAt(lint.Info, lint.Convention, lint.Warning, lint.Error)

	dec := Decide(offenses, lint.Warning)

	if dec.Found != 2 {
		t.Errorf("Found = %d, want 2", dec.Found)
	}
	if dec.Ignored != 2 {
		t.Errorf("Ignored = %d, want 2", dec.Ignored)
	}
	if dec.Success {
		t.Error("offenses at the fail level must fail the run")
	}
}

func TestDecideAllBelowFailLevelSucceeds(t *testing.T) {
	dec := Decide(offensesAt(lint.Info, lint.Refactor), lint.Error)

	if !dec.Success {
		t.Error("a run with only ignored offenses must succeed")
	}
	if dec.Found != 0 || dec.Ignored != 2 {
		t.Errorf("Found = %d, Ignored = %d", dec.Found, dec.Ignored)
	}
}

func TestDecideNoOffenses(t *testing.T) {
	dec := Decide(nil, lint.Info)
	if !dec.Success || dec.Found != 0 || dec.Ignored != 0 {
		t.Errorf("empty run must succeed cleanly, got %+v", dec)
	}
}

func TestDecideExactlyAtLevelCountsAsFound(t *testing.T) {
	dec := Decide(offensesAt(lint.Warning), lint.Warning)
	if dec.Found != 1 || dec.Success {
		t.Errorf("severity equal to the fail level must fail, got %+v", dec)
	}
}

// Found and Ignored always partition the offense list, for every fail level.
func TestDecidePartitionProperty(t *testing.T) {
	offenses := offensesAt(
		lint.Info, lint.Info, lint.Refactor, lint.Convention,
		lint.Warning, lint.Error, lint.Fatal,
	)
	for _, level := range lint.Severities {
		dec := Decide(offenses, level)
		if dec.Found+dec.Ignored != len(offenses) {
			t.Errorf("level %s: Found+Ignored = %d, want %d",
				level, dec.Found+dec.Ignored, len(offenses))
		}
		if dec.Success != (dec.Found == 0) {
			t.Errorf("level %s: Success = %v with Found = %d", level, dec.Success, dec.Found)
		}
	}
}
