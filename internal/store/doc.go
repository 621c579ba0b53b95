// Package store provides SQLite-backed history for conformance runs.
//
// Each recorded run stores a summary row in runs and one row per evaluated
// case in outcomes. A run and its outcomes are written in one transaction.
//
// Ordering never depends on wall-clock time: runs carry a logical seq
// assigned at insert, outcomes keep the harness's per-run seq.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait up to 5 seconds on lock contention
//   - foreign_keys=ON: Outcomes must reference an existing run
package store
