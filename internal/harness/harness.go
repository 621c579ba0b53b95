package harness

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/roach88/numval/internal/numeric"
)

// Options configures a harness run.
type Options struct {
	// Logger receives progress and failure logs. nil discards output.
	Logger *slog.Logger

	// IDs generates the run ID. nil uses UUIDv7Generator.
	IDs RunIDGenerator
}

// Harness evaluates suites with a logical sequence counter.
// A Harness is not safe for concurrent use; create one per goroutine.
type Harness struct {
	logger *slog.Logger
	ids    RunIDGenerator
	clock  Clock
}

// New creates a harness from opts, filling in defaults.
func New(opts Options) *Harness {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ids := opts.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	return &Harness{logger: logger, ids: ids}
}

// Run validates and executes a suite with a fresh harness.
func Run(suite *Suite, opts Options) (*Result, error) {
	return New(opts).Run(suite)
}

// Run validates and executes a suite.
//
// Execution flow:
// 1. Validate the suite (operators, literals, expectations)
// 2. Evaluate each case through numeric.Eval or numeric.Test
// 3. Record a trace event with a monotonic seq per case
// 4. Compare against the expectation and collect failures
//
// Sequence numbers restart at 1 for every run so traces are reproducible.
func (h *Harness) Run(suite *Suite) (*Result, error) {
	if err := ValidateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	h.clock.Reset()
	result := NewResult(h.ids.Generate(), suite.Name)

	h.logger.Info("suite starting",
		"suite", suite.Name,
		"run_id", result.RunID,
		"cases", len(suite.Cases),
	)

	for i, c := range suite.Cases {
		ev, mismatch := h.evaluate(c)
		result.addEvent(ev)
		if mismatch != "" {
			result.AddError(fmt.Sprintf("case %d (%s): %s", i+1, ev.Case, mismatch))
			h.logger.Warn("case failed",
				"suite", suite.Name,
				"seq", ev.Seq,
				"case", ev.Case,
				"reason", mismatch,
			)
			continue
		}
		h.logger.Debug("case passed",
			"suite", suite.Name,
			"seq", ev.Seq,
			"case", ev.Case,
			"result", ev.Result,
		)
	}

	h.logger.Info("suite finished",
		"suite", suite.Name,
		"run_id", result.RunID,
		"passed", result.Passed,
		"failed", result.Failed,
	)
	return result, nil
}

// evaluate applies one case and returns its trace event plus a mismatch
// description ("" when the expectation holds). The case must be validated.
func (h *Harness) evaluate(c Case) (TraceEvent, string) {
	op, _ := numeric.ParseOperator(c.Op)
	lhs := numeric.MustParseLiteral(c.LHS)
	var rhs numeric.Value
	if op.Arity() == 2 {
		rhs = numeric.MustParseLiteral(c.RHS)
	}

	ev := TraceEvent{
		Seq:  h.clock.Next(),
		Case: c.label(),
		Op:   op.Name(),
		LHS:  c.LHS,
		RHS:  c.RHS,
	}

	var (
		got     numeric.Value
		gotBool bool
		err     error
	)
	if op.IsComparison() {
		gotBool, err = numeric.Test(op, lhs, rhs)
		if err == nil {
			ev.Result = strconv.FormatBool(gotBool)
			ev.Kind = "bool"
		}
	} else {
		got, err = numeric.Eval(op, lhs, rhs)
		if err == nil {
			ev.Result = got.String()
			ev.Kind = got.Kind().String()
		}
	}
	if err != nil {
		ev.Error = errorLabel(err)
	}

	mismatch := check(c.Expect, got, gotBool, err)
	ev.Pass = mismatch == ""
	return ev, mismatch
}

// check compares an outcome against its expectation.
func check(e Expect, got numeric.Value, gotBool bool, err error) string {
	switch {
	case e.Error != "":
		if err == nil {
			return fmt.Sprintf("expected error %s, got %s", e.Error, describe(got, gotBool))
		}
		if code := errorLabel(err); code != e.Error {
			return fmt.Sprintf("expected error %s, got error %s", e.Error, code)
		}
		return ""

	case err != nil:
		return fmt.Sprintf("unexpected error: %v", err)

	case e.Bool != nil:
		if gotBool != *e.Bool {
			return fmt.Sprintf("expected %t, got %t", *e.Bool, gotBool)
		}
		return ""

	default:
		want := numeric.MustParseLiteral(e.Value)
		if e.Kind != "" && got.Kind().String() != e.Kind {
			return fmt.Sprintf("expected kind %s, got %s", e.Kind, describe(got, false))
		}
		if !Identical(want, got) {
			return fmt.Sprintf("expected %s, got %s", describe(want, false), describe(got, false))
		}
		return ""
	}
}

// Identical reports whether a and b are the same variant with the same
// payload. Floats compare bit-for-bit (so -0 and +0 differ) except that any
// two NaNs are identical.
func Identical(a, b numeric.Value) bool {
	switch x := a.(type) {
	case numeric.Integer:
		y, ok := b.(numeric.Integer)
		return ok && x == y
	case numeric.Float:
		y, ok := b.(numeric.Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
		return math.Float32bits(float32(x)) == math.Float32bits(float32(y))
	}
	return false
}

func describe(v numeric.Value, b bool) string {
	if v == nil {
		return strconv.FormatBool(b)
	}
	return fmt.Sprintf("%s (%s)", v, v.Kind())
}

// errorLabel returns the error code, or the message for foreign errors.
func errorLabel(err error) string {
	if code := numeric.CodeOf(err); code != "" {
		return string(code)
	}
	return err.Error()
}
