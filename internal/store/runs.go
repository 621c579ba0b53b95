package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/numval/internal/harness"
)

// Run is a recorded run summary.
type Run struct {
	ID     string `json:"id"`
	Suite  string `json:"suite"`
	Seq    int64  `json:"seq"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
}

// Pass reports whether every case in the run matched.
func (r Run) Pass() bool {
	return r.Failed == 0
}

// RecordRun stores a harness result and its trace in one transaction and
// returns the logical seq assigned to the run. Recording the same run ID
// twice is an error.
func (s *Store) RecordRun(ctx context.Context, result *harness.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("record run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, suite, seq, passed, failed)
		VALUES (?, ?, ?, ?, ?)
	`, result.RunID, result.Suite, seq, result.Passed, result.Failed)
	if err != nil {
		return 0, fmt.Errorf("record run %s: %w", result.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO outcomes
		(run_id, seq, case_label, op, lhs, rhs, result, kind, error_code, pass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("record run: prepare outcomes: %w", err)
	}
	defer stmt.Close()

	for _, ev := range result.Trace {
		_, err := stmt.ExecContext(ctx,
			result.RunID, ev.Seq, ev.Case, ev.Op, ev.LHS, ev.RHS,
			ev.Result, ev.Kind, ev.Error, ev.Pass,
		)
		if err != nil {
			return 0, fmt.Errorf("record outcome %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("record run: commit: %w", err)
	}
	return seq, nil
}

// ListRuns returns up to limit runs, newest first. A limit of zero or less
// returns every run.
//
// Returns an empty slice (not nil) if nothing has been recorded.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, suite, seq, passed, failed
		FROM runs
		ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Suite, &r.Seq, &r.Passed, &r.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run summary by ID. Returns sql.ErrNoRows (wrapped) if
// the run does not exist.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, suite, seq, passed, failed
		FROM runs
		WHERE id = ?
	`, runID).Scan(&r.ID, &r.Suite, &r.Seq, &r.Passed, &r.Failed)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return r, nil
}

// Outcomes returns the trace of a recorded run ordered by seq.
//
// Returns an empty slice (not nil) if the run has no outcomes.
func (s *Store) Outcomes(ctx context.Context, runID string) ([]harness.TraceEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, case_label, op, lhs, rhs, result, kind, error_code, pass
		FROM outcomes
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	events := []harness.TraceEvent{}
	for rows.Next() {
		ev, err := scanOutcome(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return events, nil
}

func scanOutcome(rows *sql.Rows) (harness.TraceEvent, error) {
	var ev harness.TraceEvent
	err := rows.Scan(&ev.Seq, &ev.Case, &ev.Op, &ev.LHS, &ev.RHS,
		&ev.Result, &ev.Kind, &ev.Error, &ev.Pass)
	if err != nil {
		return harness.TraceEvent{}, fmt.Errorf("scan outcome: %w", err)
	}
	return ev, nil
}
