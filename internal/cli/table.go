package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numval/internal/numeric"
)

// DefaultOperands covers both variants, the int32 boundaries and the
// special floats.
var DefaultOperands = []string{"0", "1", "-1", "2147483647", "-2147483648", "2.5", "-0.0", "inf", "nan"}

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Operands []string
}

// TableResult is the JSON payload of the table command.
type TableResult struct {
	Op          string       `json:"op"`
	Description string       `json:"description"`
	Rows        []Evaluation `json:"rows"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table <op>",
		Short: "Print an operator's result for every operand pairing",
		Long: `Apply an operator to every operand (unary) or every ordered pair of
operands (binary) and print one line per application. Operation errors are
shown inline with their code.

Examples:
  numval table rem
  numval table '<<' --operands 1,31,32,-1
  numval table not --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Operands, "operands", DefaultOperands, "comma-separated operand literals")

	return cmd
}

func runTable(opts *TableOptions, opText string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	op, err := numeric.ParseOperator(opText)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOperator, err.Error(), nil)
	}
	if len(opts.Operands) == 0 {
		return formatter.Fail(ExitCommandError, ErrCodeArity, "at least one operand is required", nil)
	}

	values := make([]numeric.Value, len(opts.Operands))
	for i, text := range opts.Operands {
		v, err := numeric.ParseLiteral(text)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidLiteral, err.Error(), nil)
		}
		values[i] = v
	}

	result := TableResult{
		Op:          op.Name(),
		Description: op.Description(),
		Rows:        buildTable(op, opts.Operands, values),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s (%s)\n", result.Op, result.Description)
	for _, row := range result.Rows {
		fmt.Fprintf(w, "%s => %s\n", row.Expression(op), row)
	}
	return nil
}

// buildTable evaluates op over the operands in row-major order.
func buildTable(op numeric.Operator, texts []string, values []numeric.Value) []Evaluation {
	var rows []Evaluation

	if op.Arity() == 1 {
		rows = make([]Evaluation, 0, len(values))
		for i, v := range values {
			ev := Evaluation{Op: op.Name(), LHS: texts[i]}
			apply(&ev, op, v, nil)
			rows = append(rows, ev)
		}
		return rows
	}

	rows = make([]Evaluation, 0, len(values)*len(values))
	for i, lhs := range values {
		for j, rhs := range values {
			ev := Evaluation{Op: op.Name(), LHS: texts[i], RHS: texts[j]}
			apply(&ev, op, lhs, rhs)
			rows = append(rows, ev)
		}
	}
	return rows
}
