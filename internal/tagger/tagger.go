// Package tagger annotates dataset quotes with qualitative categories
// using an OpenAI chat model.
package tagger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/abdulachik/quoteprep/internal/dataset"
	"github.com/abdulachik/quoteprep/internal/db"
)

// Columns added by the tagger.
const (
	ColumnAnalysis      = "Analysis"
	ColumnCategoryCount = "Category_Count"
)

// progressEvery is how many rows pass between job progress updates.
const progressEvery = 25

// errPacing is returned when the rate limiter cannot admit another request
// before the context ends. It stops the run instead of failing one row.
var errPacing = errors.New("rate limiter wait")

// Tagger tags every quote of a dataset table.
type Tagger struct {
	client   *Client
	store    *db.Store
	limiter  *rate.Limiter
	binary   bool
	useCache bool
}

// Config holds configuration for the tagger.
type Config struct {
	Client *Client
	// Store is optional. Without it there is no cache and no job history.
	Store             *db.Store
	RequestsPerMinute int  // 0 disables pacing
	Binary            bool // add one 0/1 column per category
	UseCache          bool
}

// Summary reports what a tagging run did.
type Summary struct {
	JobID   string
	Total   int
	Tagged  int // answered by the API
	Cached  int // answered from the store
	Failed  int // API error, Analysis left empty
	Skipped int // empty quote cell
}

// New creates a new Tagger.
func New(cfg Config) *Tagger {
	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &Tagger{
		client:   cfg.Client,
		store:    cfg.Store,
		limiter:  limiter,
		binary:   cfg.Binary,
		useCache: cfg.UseCache && cfg.Store != nil,
	}
}

// TagFile reads the dataset at input, tags it and writes the result to
// output. The input must have a Quote column; other columns pass through.
func (t *Tagger) TagFile(ctx context.Context, input, output string) (Summary, error) {
	table, err := dataset.ReadTable(input)
	if err != nil {
		return Summary{}, fmt.Errorf("read dataset: %w", err)
	}
	if table.ColumnIndex(dataset.ColumnQuote) < 0 {
		return Summary{}, dataset.NewMalformedInputError(input, 1,
			fmt.Sprintf("header has no %q column", dataset.ColumnQuote))
	}

	jobID := t.startJob(ctx, input, output, table.Len())

	summary, err := t.TagTable(ctx, table, jobID)
	summary.JobID = jobID
	if err != nil {
		t.failJob(jobID, err)
		return summary, err
	}

	if err := dataset.WriteTable(output, table); err != nil {
		t.failJob(jobID, err)
		return summary, fmt.Errorf("write dataset: %w", err)
	}

	t.completeJob(ctx, jobID)

	slog.Info("tagging complete",
		"input", input,
		"output", output,
		"total", summary.Total,
		"tagged", summary.Tagged,
		"cached", summary.Cached,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)

	return summary, nil
}

// TagTable adds the Analysis and Category_Count columns (and the category
// columns in binary mode) to table. A failed API call is logged and leaves
// that row's analysis empty; only cancellation, or a context deadline the
// pacing cannot meet, stops the run.
func (t *Tagger) TagTable(ctx context.Context, table *dataset.Table, jobID string) (Summary, error) {
	quotes, err := table.Column(dataset.ColumnQuote)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(quotes)}
	analyses := make([]string, len(quotes))

	for i, quote := range quotes {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if strings.TrimSpace(quote) == "" {
			summary.Skipped++
			continue
		}

		analysis, cached, err := t.analyze(ctx, quote)
		switch {
		case err != nil && ctx.Err() != nil:
			return summary, ctx.Err()
		case errors.Is(err, errPacing):
			return summary, err
		case err != nil:
			slog.Error("failed to analyze quote", "row", i+1, "error", err)
			summary.Failed++
		case cached:
			summary.Cached++
		default:
			summary.Tagged++
		}
		analyses[i] = analysis

		if (i+1)%progressEvery == 0 {
			t.recordProgress(ctx, jobID, i+1, summary)
		}
	}
	t.recordProgress(ctx, jobID, len(quotes), summary)

	table.SetColumn(ColumnAnalysis, func(row int) string {
		return analyses[row]
	})
	table.SetColumn(ColumnCategoryCount, func(row int) string {
		return strconv.Itoa(CountCategories(analyses[row]))
	})
	if t.binary {
		for _, c := range AllCategories {
			table.SetColumn(string(c), func(row int) string {
				if HasCategory(analyses[row], c) {
					return "1"
				}
				return "0"
			})
		}
	}

	return summary, nil
}

// analyze returns the analysis for quote, from the cache when possible.
func (t *Tagger) analyze(ctx context.Context, quote string) (string, bool, error) {
	hash := db.HashText(quote)

	if t.useCache {
		tag, err := t.store.GetQuoteTagByHash(ctx, hash)
		if err == nil {
			slog.Debug("cache hit", "hash", hash[:8])
			return tag.Analysis, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("failed to read tag cache", "error", err)
		}
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", false, fmt.Errorf("%w: %w", errPacing, err)
		}
	}

	analysis, err := t.client.AnalyzeQuote(ctx, quote)
	if err != nil {
		return "", false, err
	}

	if t.store != nil {
		err := t.store.UpsertQuoteTag(ctx, db.UpsertQuoteTagParams{
			TextHash:      hash,
			Quote:         quote,
			Analysis:      analysis,
			CategoryCount: int64(CountCategories(analysis)),
			Model:         t.client.Model(),
		})
		if err != nil {
			slog.Warn("failed to save tag", "hash", hash[:8], "error", err)
		}
	}

	return analysis, false, nil
}

func (t *Tagger) startJob(ctx context.Context, input, output string, rows int) string {
	if t.store == nil {
		return ""
	}

	id := uuid.NewString()
	err := t.store.CreateTagJob(ctx, db.CreateTagJobParams{
		ID:         id,
		InputPath:  input,
		OutputPath: output,
		Model:      t.client.Model(),
	})
	if err != nil {
		slog.Warn("failed to create tag job", "error", err)
		return ""
	}

	err = t.store.UpdateTagJobStarted(ctx, db.UpdateTagJobStartedParams{
		ID:        id,
		TotalRows: sql.NullInt64{Int64: int64(rows), Valid: true},
	})
	if err != nil {
		slog.Warn("failed to start tag job", "job", id, "error", err)
	}
	return id
}

func (t *Tagger) recordProgress(ctx context.Context, jobID string, processed int, s Summary) {
	if t.store == nil || jobID == "" {
		return
	}
	err := t.store.UpdateTagJobProgress(ctx, db.UpdateTagJobProgressParams{
		ID:            jobID,
		ProcessedRows: sql.NullInt64{Int64: int64(processed), Valid: true},
		FailedRows:    sql.NullInt64{Int64: int64(s.Failed), Valid: true},
		CachedRows:    sql.NullInt64{Int64: int64(s.Cached), Valid: true},
	})
	if err != nil {
		slog.Warn("failed to update tag job", "job", jobID, "error", err)
	}
}

func (t *Tagger) completeJob(ctx context.Context, jobID string) {
	if t.store == nil || jobID == "" {
		return
	}
	if err := t.store.UpdateTagJobCompleted(ctx, jobID); err != nil {
		slog.Warn("failed to complete tag job", "job", jobID, "error", err)
	}
}

// failJob records err on the job. The caller's context may already be
// cancelled, so the update gets its own.
func (t *Tagger) failJob(jobID string, err error) {
	if t.store == nil || jobID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updateErr := t.store.UpdateTagJobFailed(ctx, db.UpdateTagJobFailedParams{
		ID:           jobID,
		ErrorMessage: sql.NullString{String: err.Error(), Valid: true},
	})
	if updateErr != nil {
		slog.Warn("failed to mark tag job failed", "job", jobID, "error", updateErr)
	}
}
