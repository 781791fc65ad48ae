// Package linters assembles the built-in linter registry.
package linters

import (
	"github.com/wscourge/erb-lint/internal/linter"
	"github.com/wscourge/erb-lint/internal/linters/extranewline"
	"github.com/wscourge/erb-lint/internal/linters/finalnewline"
	"github.com/wscourge/erb-lint/internal/linters/hardcodedstring"
	"github.com/wscourge/erb-lint/internal/linters/parsererrors"
	"github.com/wscourge/erb-lint/internal/linters/righttrim"
	"github.com/wscourge/erb-lint/internal/linters/spacearounderbtag"
	"github.com/wscourge/erb-lint/internal/linters/trailingwhitespace"
)

// DefaultRegistry builds the registry of built-in linters. Registration
// order is canonical: it determines offense ordering within a file and
// correction precedence on overlap.
func DefaultRegistry() *linter.Registry {
	reg := linter.NewRegistry()
	reg.Register(parsererrors.Name, parsererrors.New)
	reg.Register(finalnewline.Name, finalnewline.New)
	reg.Register(trailingwhitespace.Name, trailingwhitespace.New)
	reg.Register(spacearounderbtag.Name, spacearounderbtag.New)
	reg.Register(extranewline.Name, extranewline.New)
	reg.Register(righttrim.Name, righttrim.New)
	reg.Register(hardcodedstring.Name, hardcodedstring.New)
	return reg
}
