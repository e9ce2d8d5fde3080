// Package merge concatenates labeled dataset CSVs into one training set.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/abdulachik/quoteprep/internal/dataset"
)

// ErrNoSources is returned when none of the sources could be loaded.
var ErrNoSources = errors.New("no sources to merge")

// Skipped is a source that was left out of the merge.
type Skipped struct {
	Source Source
	Reason string
	Err    error
}

// Result is the merged table plus the sources that could not be used.
type Result struct {
	Table   *dataset.Table
	Loaded  int
	Skipped []Skipped
}

// Merge reads every source, sets its Memorable column to the source's
// constant label and concatenates the rows. Columns are the union of all
// headers in first-seen order; cells a source lacks are empty. Sources
// that are missing, empty or unparsable are logged and skipped.
func Merge(ctx context.Context, sources []Source) (Result, error) {
	res := Result{Table: dataset.NewTable()}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		table, err := dataset.ReadTable(src.Path)
		if err != nil {
			reason := skipReason(err)
			slog.Error("skipping source", "path", src.Path, "reason", reason, "error", err)
			res.Skipped = append(res.Skipped, Skipped{Source: src, Reason: reason, Err: err})
			continue
		}

		label := strconv.Itoa(src.Memorable)
		table.SetColumn(dataset.ColumnMemorable, func(int) string { return label })

		res.Table.Append(table)
		res.Loaded++

		slog.Debug("merged source", "path", src.Path, "rows", table.Len(), "memorable", label)
	}

	if res.Loaded == 0 {
		return res, fmt.Errorf("%w: %d source(s) skipped", ErrNoSources, len(res.Skipped))
	}
	return res, nil
}

// Run merges the manifest's sources and writes the result to its output.
func Run(ctx context.Context, m Manifest) (Result, error) {
	res, err := Merge(ctx, m.Sources)
	if err != nil {
		return res, err
	}

	if err := dataset.WriteTable(m.Output, res.Table); err != nil {
		return res, fmt.Errorf("save merged dataset: %w", err)
	}

	slog.Info("merged dataset saved",
		"output", m.Output,
		"rows", res.Table.Len(),
		"columns", len(res.Table.Columns),
		"sources", res.Loaded,
		"skipped", len(res.Skipped),
	)
	return res, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, dataset.ErrFileNotFound):
		return "not found"
	case errors.Is(err, dataset.ErrEmptyData):
		return "empty"
	case errors.Is(err, dataset.ErrMalformedInput):
		return "could not be parsed"
	default:
		return "unexpected error"
	}
}
