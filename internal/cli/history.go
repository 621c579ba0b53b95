package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numval/internal/harness"
	"github.com/roach88/numval/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	RunID    string // show one run's trace instead of the list
}

// RunDetail is the JSON payload for a single recorded run.
type RunDetail struct {
	store.Run
	Trace []harness.TraceEvent `json:"trace"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conformance runs",
		Long: `List runs recorded by "numval check --db", newest first.

With --run, print the recorded trace of a single run instead.

Examples:
  numval history --db ./history.db
  numval history --db ./history.db --limit 5 --format json
  numval history --db ./history.db --run 0190c2d4-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the trace of one run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.FailWrap(ExitCommandError, ErrCodeStore, "failed to open history database", err)
	}
	defer st.Close()

	if opts.RunID != "" {
		return showRun(ctx, formatter, st, opts.RunID)
	}

	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		return formatter.FailWrap(ExitCommandError, ErrCodeStore, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return formatter.Success(runs)
	}

	w := formatter.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		status := "PASS"
		if !r.Pass() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%4d %s %s %s (%d passed, %d failed)\n", r.Seq, status, r.ID, r.Suite, r.Passed, r.Failed)
	}
	return nil
}

// showRun prints one recorded run. A missing run is ErrCodeNotFound; any
// other read failure is ErrCodeStore.
func showRun(ctx context.Context, formatter *OutputFormatter, st *store.Store, runID string) error {
	run, err := st.GetRun(ctx, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("run not found: %s", runID), nil)
	}
	if err != nil {
		return formatter.FailWrap(ExitCommandError, ErrCodeStore, "failed to read run", err)
	}

	trace, err := st.Outcomes(ctx, runID)
	if err != nil {
		return formatter.FailWrap(ExitCommandError, ErrCodeStore, "failed to read outcomes", err)
	}
	return outputRunDetail(formatter, RunDetail{Run: run, Trace: trace})
}

func outputRunDetail(formatter *OutputFormatter, detail RunDetail) error {
	if formatter.Format == "json" {
		return formatter.Success(detail)
	}

	result := harness.NewResult(detail.ID, detail.Suite)
	result.Trace = detail.Trace
	result.Passed = detail.Passed
	result.Failed = detail.Failed

	fmt.Fprintf(formatter.Writer, "run %s\n", detail.ID)
	_, err := formatter.Writer.Write(harness.Render(result))
	return err
}
