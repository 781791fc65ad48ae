package engine

import (
	"sort"

	"github.com/wscourge/erb-lint/internal/lint"
)

// applyCorrections applies proposed corrections to the original text and
// returns the corrected text plus the number of corrections applied.
//
// Proposals must arrive in precedence order (linter registration order,
// then emission order within a linter). When two proposals overlap, the
// earlier one wins and the later one is dropped; its offense is still
// reported. Accepted corrections are applied by descending begin offset so
// earlier corrections' offsets stay valid.
func applyCorrections(original []byte, proposals []lint.Correction) ([]byte, int) {
	if len(proposals) == 0 {
		return original, 0
	}

	accepted := make([]lint.Correction, 0, len(proposals))
	for _, p := range proposals {
		if p.Begin < 0 || p.End > len(original) || p.Begin > p.End {
			continue
		}
		if overlapsAny(accepted, p) {
			continue
		}
		accepted = append(accepted, p)
	}

	ordered := make([]lint.Correction, len(accepted))
	copy(ordered, accepted)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Begin > ordered[j].Begin
	})

	out := append([]byte(nil), original...)
	for _, c := range ordered {
		out = append(out[:c.Begin], append([]byte(c.Replacement), out[c.End:]...)...)
	}
	return out, len(accepted)
}

// overlapsAny reports whether c overlaps any already accepted correction.
// Two half-open ranges overlap when each begins before the other ends;
// zero-length insertions at a boundary do not conflict.
func overlapsAny(accepted []lint.Correction, c lint.Correction) bool {
	for _, a := range accepted {
		if c.Begin < a.End && a.Begin < c.End {
			return true
		}
		if c.Begin == a.Begin && c.End == a.End && a.Length() == 0 && c.Length() == 0 {
			return true
		}
	}
	return false
}
