package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/numval/internal/numeric"
)

// Render formats a result as a stable text trace. The run ID is omitted so
// output is identical across runs.
//
// Format, one line per case:
//
//	001 PASS 5 / 2 => 2.5 (float)
//	002 PASS 5 & 1.0 => error INVALID_OPERAND_TYPE
//	003 PASS neg 7 => -7 (int)
func Render(r *Result) []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "suite %s\n", r.Suite)

	for _, ev := range r.Trace {
		status := "PASS"
		if !ev.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&buf, "%03d %s %s => ", ev.Seq, status, expression(ev))
		if ev.Error != "" {
			fmt.Fprintf(&buf, "error %s\n", ev.Error)
		} else {
			fmt.Fprintf(&buf, "%s (%s)\n", ev.Result, ev.Kind)
		}
	}

	fmt.Fprintf(&buf, "passed %d failed %d\n", r.Passed, r.Failed)
	return []byte(buf.String())
}

// expression renders binary operators with their symbol and unary operators
// with their name.
func expression(ev TraceEvent) string {
	op, err := numeric.ParseOperator(ev.Op)
	if err != nil || op.Arity() == 1 {
		return ev.Op + " " + ev.LHS
	}
	return ev.LHS + " " + op.Symbol() + " " + ev.RHS
}

// RunWithGolden executes a suite and compares the rendered trace against
// testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the suite is invalid. Test failure (via goldie) occurs if
// the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, suite *Suite) (*Result, error) {
	t.Helper()

	result, err := Run(suite, Options{IDs: NewFixedGenerator("golden")})
	if err != nil {
		return nil, err
	}

	AssertGolden(t, suite.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the suite.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Render(result))
}
