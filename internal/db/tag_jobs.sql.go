package db

import (
	"context"
	"database/sql"
)

const tagJobColumns = `id, input_path, output_path, model, status, total_rows, processed_rows,
failed_rows, cached_rows, error_message, started_at, completed_at, created_at`

func scanTagJob(row interface{ Scan(...interface{}) error }) (TagJob, error) {
	var i TagJob
	err := row.Scan(
		&i.ID,
		&i.InputPath,
		&i.OutputPath,
		&i.Model,
		&i.Status,
		&i.TotalRows,
		&i.ProcessedRows,
		&i.FailedRows,
		&i.CachedRows,
		&i.ErrorMessage,
		&i.StartedAt,
		&i.CompletedAt,
		&i.CreatedAt,
	)
	return i, err
}

const createTagJob = `-- name: CreateTagJob :exec
INSERT INTO tag_jobs (id, input_path, output_path, model)
VALUES (?, ?, ?, ?)
`

type CreateTagJobParams struct {
	ID         string
	InputPath  string
	OutputPath string
	Model      string
}

func (q *Queries) CreateTagJob(ctx context.Context, arg CreateTagJobParams) error {
	_, err := q.db.ExecContext(ctx, createTagJob,
		arg.ID,
		arg.InputPath,
		arg.OutputPath,
		arg.Model,
	)
	return err
}

const getTagJob = `-- name: GetTagJob :one
SELECT ` + tagJobColumns + `
FROM tag_jobs
WHERE id = ?
`

func (q *Queries) GetTagJob(ctx context.Context, id string) (TagJob, error) {
	return scanTagJob(q.db.QueryRowContext(ctx, getTagJob, id))
}

const listRecentTagJobs = `-- name: ListRecentTagJobs :many
SELECT ` + tagJobColumns + `
FROM tag_jobs
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`

func (q *Queries) ListRecentTagJobs(ctx context.Context, limit int64) ([]TagJob, error) {
	rows, err := q.db.QueryContext(ctx, listRecentTagJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TagJob
	for rows.Next() {
		i, err := scanTagJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTagJobStarted = `-- name: UpdateTagJobStarted :exec
UPDATE tag_jobs
SET status = 'running', total_rows = ?, started_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateTagJobStartedParams struct {
	ID        string
	TotalRows sql.NullInt64
}

func (q *Queries) UpdateTagJobStarted(ctx context.Context, arg UpdateTagJobStartedParams) error {
	_, err := q.db.ExecContext(ctx, updateTagJobStarted, arg.TotalRows, arg.ID)
	return err
}

const updateTagJobProgress = `-- name: UpdateTagJobProgress :exec
UPDATE tag_jobs
SET processed_rows = ?, failed_rows = ?, cached_rows = ?
WHERE id = ?
`

type UpdateTagJobProgressParams struct {
	ID            string
	ProcessedRows sql.NullInt64
	FailedRows    sql.NullInt64
	CachedRows    sql.NullInt64
}

func (q *Queries) UpdateTagJobProgress(ctx context.Context, arg UpdateTagJobProgressParams) error {
	_, err := q.db.ExecContext(ctx, updateTagJobProgress,
		arg.ProcessedRows,
		arg.FailedRows,
		arg.CachedRows,
		arg.ID,
	)
	return err
}

const updateTagJobCompleted = `-- name: UpdateTagJobCompleted :exec
UPDATE tag_jobs
SET status = 'completed', completed_at = CURRENT_TIMESTAMP
WHERE id = ?
`

func (q *Queries) UpdateTagJobCompleted(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, updateTagJobCompleted, id)
	return err
}

const updateTagJobFailed = `-- name: UpdateTagJobFailed :exec
UPDATE tag_jobs
SET status = 'failed', error_message = ?, completed_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateTagJobFailedParams struct {
	ID           string
	ErrorMessage sql.NullString
}

func (q *Queries) UpdateTagJobFailed(ctx context.Context, arg UpdateTagJobFailedParams) error {
	_, err := q.db.ExecContext(ctx, updateTagJobFailed, arg.ErrorMessage, arg.ID)
	return err
}
