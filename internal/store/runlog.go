package store

import (
	"context"
	"fmt"
	"time"
)

// Run is one scrape run's outcome as kept in the ledger.
type Run struct {
	StartedAt  time.Time
	FinishedAt time.Time
	JobsFound  int
	OutputPath string
	OK         bool
	Error      string
}

// RunLog records scrape run outcomes so the operator can see what the
// scheduler has been doing between invocations. It never feeds back into
// scraping.
type RunLog struct {
	db *DB
}

func NewRunLog(db *DB) *RunLog {
	return &RunLog{db: db}
}

func (l *RunLog) Record(ctx context.Context, r Run) error {
	ok := 0
	if r.OK {
		ok = 1
	}
	_, err := l.db.Pool.ExecContext(ctx, `
INSERT INTO runs(started_at, finished_at, jobs_found, output_path, ok, error)
VALUES(?,?,?,?,?,?);`,
		r.StartedAt.UTC().Format(time.RFC3339),
		r.FinishedAt.UTC().Format(time.RFC3339),
		r.JobsFound,
		r.OutputPath,
		ok,
		r.Error,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (l *RunLog) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := l.db.Pool.QueryContext(ctx, `
SELECT started_at, finished_at, jobs_found, output_path, ok, error
FROM runs
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var startedStr, finishedStr string
		var ok int
		if err := rows.Scan(&startedStr, &finishedStr, &r.JobsFound, &r.OutputPath, &ok, &r.Error); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedStr)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finishedStr)
		r.OK = ok > 0
		out = append(out, r)
	}
	return out, rows.Err()
}
