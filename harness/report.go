package harness

import (
	"fmt"
	"io"
	"strings"
)

// Report holds the results of one suite, in case order.
type Report struct {
	Suite   string
	Results []Result
}

// Failed returns the number of cases that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Pass {
			n++
		}
	}
	return n
}

// Passed returns the number of passing cases.
func (r *Report) Passed() int { return len(r.Results) - r.Failed() }

// OK reports whether every case passed.
func (r *Report) OK() bool { return r.Failed() == 0 }

// WriteText writes one line per case followed by a summary line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, formatResult(res)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "suite %s: %d cases, %d passed, %d failed\n",
		r.Suite, len(r.Results), r.Passed(), r.Failed())
	return err
}

func formatResult(res Result) string {
	args := make([]string, len(res.Args))
	for i, a := range res.Args {
		args[i] = a.String()
	}
	call := fmt.Sprintf("%s(%s)", res.Case.Export, strings.Join(args, ", "))

	if res.Err != nil {
		return fmt.Sprintf("FAIL %s: %s: %v", res.Case.Name, call, res.Err)
	}
	status := "ok  "
	if !res.Pass {
		status = "FAIL"
	}
	line := fmt.Sprintf("%s %s: %s = %s", status, res.Case.Name, call, res.Got)
	if !res.Pass {
		line += ", want " + res.Want.String()
	}
	if res.Case.Tolerance != 0 {
		line += fmt.Sprintf(" (tolerance %g)", res.Case.Tolerance)
	}
	return line
}
