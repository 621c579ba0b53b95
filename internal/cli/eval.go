package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/numval/internal/numeric"
)

// Evaluation is the outcome of applying one operator.
type Evaluation struct {
	Op      string `json:"op"`
	LHS     string `json:"lhs"`
	RHS     string `json:"rhs,omitempty"`
	Result  string `json:"result,omitempty"` // rendered value or "true"/"false"
	Kind    string `json:"kind,omitempty"`   // "int", "float" or "bool"
	Error   string `json:"error,omitempty"`  // numeric.ErrorCode
	Message string `json:"message,omitempty"`
}

// String renders the result as "2.5 (float)" or "error CODE".
func (e Evaluation) String() string {
	if e.Error != "" {
		return "error " + e.Error
	}
	return fmt.Sprintf("%s (%s)", e.Result, e.Kind)
}

// Expression renders binary operators with their symbol and unary operators
// with their name.
func (e Evaluation) Expression(op numeric.Operator) string {
	if op.Arity() == 1 {
		return op.Name() + " " + e.LHS
	}
	return e.LHS + " " + op.Symbol() + " " + e.RHS
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <lhs> [rhs]",
		Short: "Apply an operator to numeric literals",
		Long: `Apply one operator to one or two numeric literals and print the result.

Operators may be given by symbol (+, <<, **, ~) or name (add, shl, pow, not).
Unary operators are neg, not (~) and bool. Literals without a decimal point
or exponent are 32-bit integers; 0x, 0o and 0b prefixes are accepted.

Use -- before negative literals so they are not read as flags.

Exit codes:
  0 - Evaluated successfully
  1 - The operation failed (e.g. bitwise operator on a float)
  2 - Command error (unknown operator, bad literal, wrong operand count)

Examples:
  numval eval / 5 2
  numval eval shl 1 31
  numval eval -- neg -2147483648
  numval eval --format json '&' 5 1.0`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	op, err := numeric.ParseOperator(args[0])
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOperator, err.Error(), nil)
	}

	operands := args[1:]
	if len(operands) != op.Arity() {
		return formatter.Fail(ExitCommandError, ErrCodeArity,
			fmt.Sprintf("%s takes %d operand(s), got %d", op.Name(), op.Arity(), len(operands)), nil)
	}

	values := make([]numeric.Value, 2)
	for i, text := range operands {
		v, err := numeric.ParseLiteral(text)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidLiteral, err.Error(), nil)
		}
		values[i] = v
	}

	ev := Evaluation{Op: op.Name(), LHS: operands[0]}
	if len(operands) == 2 {
		ev.RHS = operands[1]
	}
	apply(&ev, op, values[0], values[1])

	formatter.VerboseLog("%s %s => %s", ev.Op, ev.Expression(op), ev)

	if ev.Error != "" {
		return formatter.Fail(ExitFailure, ev.Error, ev.Message, ev)
	}
	if opts.Format == "json" {
		return formatter.Success(ev)
	}
	return formatter.Success(ev.String())
}

// apply evaluates op and stores the outcome in ev.
func apply(ev *Evaluation, op numeric.Operator, lhs, rhs numeric.Value) {
	if op.IsComparison() {
		b, err := numeric.Test(op, lhs, rhs)
		if err != nil {
			setError(ev, err)
			return
		}
		ev.Result = strconv.FormatBool(b)
		ev.Kind = "bool"
		return
	}

	v, err := numeric.Eval(op, lhs, rhs)
	if err != nil {
		setError(ev, err)
		return
	}
	ev.Result = v.String()
	ev.Kind = v.Kind().String()
}

func setError(ev *Evaluation, err error) {
	var opErr *numeric.OperationError
	if errors.As(err, &opErr) {
		ev.Error = string(opErr.Code)
		ev.Message = opErr.Message
		return
	}
	ev.Error = ErrCodeGeneric
	ev.Message = err.Error()
}
