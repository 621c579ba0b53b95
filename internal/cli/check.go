package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/numval/internal/harness"
	"github.com/roach88/numval/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Database string // record runs when set
	Filter   string // suite filter (glob on file name without extension)
	Update   bool   // regenerate golden files

	// IDs overrides the run ID generator (for testing).
	// If nil, defaults to harness.UUIDv7Generator.
	IDs harness.RunIDGenerator
}

// SuiteSummary is the outcome of one suite file.
type SuiteSummary struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	RunID  string   `json:"run_id,omitempty"`
	Pass   bool     `json:"pass"`
	Code   string   `json:"code,omitempty"` // ErrCodeSuiteLoad when the file did not load
	Passed int      `json:"passed"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult is the overall outcome of a check invocation.
type CheckResult struct {
	Suites []SuiteSummary `json:"suites"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite-or-dir>...",
		Short: "Run conformance suites",
		Long: `Run YAML (.yaml, .yml) or CUE (.cue) conformance suites.

Directories are searched recursively for suite files. When a suite has a
golden file at <dir>/golden/<name>.golden its rendered trace must match it;
--update rewrites golden files instead. With --db every run and its trace
are recorded in a SQLite history database.

Exit codes:
  0 - All suites passed
  1 - One or more suites failed
  2 - Command error (missing paths, database errors)

Examples:
  numval check ./suites
  numval check ./suites --filter "shift*"
  numval check core.yaml shifts.cue --db ./history.db
  numval check ./suites --update`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record runs in this SQLite database")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suites by glob pattern")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")

	return cmd
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	var files []string
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("suite path not found: %s", p), nil)
		}
		found, err := findSuiteFiles(p, opts.Filter)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("failed to find suites: %v", err), nil)
		}
		files = append(files, found...)
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return formatter.FailWrap(ExitCommandError, ErrCodeStore, "failed to open history database", err)
		}
		defer st.Close()
	}

	result := CheckResult{
		Suites: make([]SuiteSummary, 0, len(files)),
		Total:  len(files),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	h := harness.New(harness.Options{Logger: logger, IDs: opts.IDs})
	for _, file := range files {
		summary := checkSuite(ctx, h, st, file, opts, logger)
		result.Suites = append(result.Suites, summary)
		if summary.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		outputCheckText(formatter, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d suite(s) failed", result.Failed, result.Total))
	}
	return nil
}

// findSuiteFiles returns path itself or, for a directory, every suite file
// beneath it, in lexical order.
func findSuiteFiles(path, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(p)
		if ext != ".yaml" && ext != ".yml" && ext != ".cue" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(p), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, p)
		return nil
	})

	return files, err
}

// checkSuite loads, runs, golden-compares and optionally records one suite.
func checkSuite(ctx context.Context, h *harness.Harness, st *store.Store, file string, opts *CheckOptions, logger *slog.Logger) SuiteSummary {
	summary := SuiteSummary{Name: filepath.Base(file), File: file}

	suite, err := harness.LoadSuite(file)
	if err != nil {
		summary.Code = ErrCodeSuiteLoad
		summary.Errors = []string{fmt.Sprintf("failed to load suite: %v", err)}
		return summary
	}
	summary.Name = suite.Name

	result, err := h.Run(suite)
	if err != nil {
		summary.Errors = []string{fmt.Sprintf("execution failed: %v", err)}
		return summary
	}

	summary.RunID = result.RunID
	summary.Pass = result.Pass
	summary.Passed = result.Passed
	summary.Failed = result.Failed
	summary.Errors = result.Errors

	if msg := compareGolden(file, result, opts.Update); msg != "" {
		summary.Pass = false
		summary.Errors = append(summary.Errors, msg)
	}

	if st != nil {
		seq, err := st.RecordRun(ctx, result)
		if err != nil {
			summary.Pass = false
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to record run: %v", err))
			return summary
		}
		logger.Debug("run recorded", "suite", suite.Name, "run_id", result.RunID, "seq", seq)
	}

	return summary
}

// goldenFilePath returns <dir>/golden/<name>.golden for a suite file.
func goldenFilePath(suiteFile string) string {
	dir := filepath.Dir(suiteFile)
	base := filepath.Base(suiteFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// compareGolden checks (or with update, rewrites) the suite's golden trace.
// Returns "" on success or when no golden file exists.
func compareGolden(suiteFile string, result *harness.Result, update bool) string {
	path := goldenFilePath(suiteFile)
	rendered := harness.Render(result)

	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Sprintf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(path, rendered, 0644); err != nil {
			return fmt.Sprintf("failed to update golden file: %v", err)
		}
		return ""
	}

	want, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		return fmt.Sprintf("failed to read golden file: %v", err)
	}
	if !bytes.Equal(want, rendered) {
		return "trace does not match golden file (run with --update to regenerate)"
	}
	return ""
}

func outputCheckText(formatter *OutputFormatter, result CheckResult) {
	w := formatter.Writer

	if result.Total == 0 {
		fmt.Fprintln(w, "No suites found.")
		return
	}

	for _, s := range result.Suites {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s (%d passed)\n", s.Name, s.Passed)
			continue
		}
		if s.Code != "" {
			fmt.Fprintf(w, "✗ %s\n", s.Name)
			for _, e := range s.Errors {
				fmt.Fprintf(w, "  Error [%s]: %s\n", s.Code, e)
			}
			continue
		}
		fmt.Fprintf(w, "✗ %s (%d passed, %d failed)\n", s.Name, s.Passed, s.Failed)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
}
