package db

import (
	"context"
)

const getQuoteTagByHash = `-- name: GetQuoteTagByHash :one
SELECT id, text_hash, quote, analysis, category_count, model, created_at, updated_at
FROM quote_tags
WHERE text_hash = ?
`

func (q *Queries) GetQuoteTagByHash(ctx context.Context, textHash string) (QuoteTag, error) {
	row := q.db.QueryRowContext(ctx, getQuoteTagByHash, textHash)
	var i QuoteTag
	err := row.Scan(
		&i.ID,
		&i.TextHash,
		&i.Quote,
		&i.Analysis,
		&i.CategoryCount,
		&i.Model,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertQuoteTag = `-- name: UpsertQuoteTag :exec
INSERT INTO quote_tags (text_hash, quote, analysis, category_count, model)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(text_hash) DO UPDATE SET
    analysis = excluded.analysis,
    category_count = excluded.category_count,
    model = excluded.model,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertQuoteTagParams struct {
	TextHash      string
	Quote         string
	Analysis      string
	CategoryCount int64
	Model         string
}

func (q *Queries) UpsertQuoteTag(ctx context.Context, arg UpsertQuoteTagParams) error {
	_, err := q.db.ExecContext(ctx, upsertQuoteTag,
		arg.TextHash,
		arg.Quote,
		arg.Analysis,
		arg.CategoryCount,
		arg.Model,
	)
	return err
}

const countQuoteTags = `-- name: CountQuoteTags :one
SELECT COUNT(*) FROM quote_tags
`

func (q *Queries) CountQuoteTags(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countQuoteTags)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countQuoteTagsByCategoryCount = `-- name: CountQuoteTagsByCategoryCount :many
SELECT category_count, COUNT(*) AS count
FROM quote_tags
GROUP BY category_count
ORDER BY category_count
`

type CountQuoteTagsByCategoryCountRow struct {
	CategoryCount int64
	Count         int64
}

func (q *Queries) CountQuoteTagsByCategoryCount(ctx context.Context) ([]CountQuoteTagsByCategoryCountRow, error) {
	rows, err := q.db.QueryContext(ctx, countQuoteTagsByCategoryCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountQuoteTagsByCategoryCountRow
	for rows.Next() {
		var i CountQuoteTagsByCategoryCountRow
		if err := rows.Scan(&i.CategoryCount, &i.Count); err != nil {
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
