package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/wscourge/erb-lint/internal/engine"
)

// JUnitReporter renders the run result as standard JUnit test-report XML:
// one test case per file, one failure element per offense. A file with zero
// offenses is a passing test case.
type JUnitReporter struct{}

type junitTestSuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name     string         `xml:"name,attr"`
	File     string         `xml:"file,attr"`
	Failures []junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

// Render implements Reporter.
func (r *JUnitReporter) Render(w io.Writer, res *engine.Result, _ engine.Decision, _ bool) error {
	suite := junitTestSuite{
		Name:  "erblint",
		Tests: len(res.Files),
	}

	for _, f := range res.Files {
		tc := junitTestCase{Name: f.Path, File: f.Path}
		for _, o := range f.Offenses {
			tc.Failures = append(tc.Failures, junitFailure{
				Type:    o.Linter,
				Message: o.Message,
				Body: fmt.Sprintf("%s:%d:%d (length %d)",
					o.Path, o.Line, o.Column, o.Range.Length()),
			})
		}
		if len(tc.Failures) > 0 {
			suite.Failures++
		}
		suite.Cases = append(suite.Cases, tc)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(suite); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
