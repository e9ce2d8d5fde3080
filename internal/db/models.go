package db

import (
	"database/sql"
	"time"
)

// Tag job statuses.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

type QuoteTag struct {
	ID            int64
	TextHash      string
	Quote         string
	Analysis      string
	CategoryCount int64
	Model         string
	CreatedAt     sql.NullTime
	UpdatedAt     sql.NullTime
}

type TagJob struct {
	ID            string
	InputPath     string
	OutputPath    string
	Model         string
	Status        string
	TotalRows     sql.NullInt64
	ProcessedRows sql.NullInt64
	FailedRows    sql.NullInt64
	CachedRows    sql.NullInt64
	ErrorMessage  sql.NullString
	StartedAt     sql.NullTime
	CompletedAt   sql.NullTime
	CreatedAt     sql.NullTime
}

// Duration returns how long a finished job ran, or zero.
func (j TagJob) Duration() time.Duration {
	if !j.StartedAt.Valid || !j.CompletedAt.Valid {
		return 0
	}
	return j.CompletedAt.Time.Sub(j.StartedAt.Time)
}
