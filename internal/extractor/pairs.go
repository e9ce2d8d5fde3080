// Package extractor turns the raw memorable/non-memorable pairs file into
// labeled dataset records.
package extractor

import (
	"log/slog"

	"github.com/abdulachik/quoteprep/internal/dataset"
)

// ExtractFile reads the pairs file at path and returns its records.
//
// A missing file, a read failure and a malformed block structure are
// returned as errors (see dataset.ErrFileNotFound, dataset.ErrRead,
// dataset.ErrMalformedInput). An empty file is not an error: it yields
// zero records.
func ExtractFile(path string) ([]dataset.Record, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("read pairs file", "path", path, "lines", len(lines))

	return Extract(path, lines)
}

// Extract emits two records per block, memorable first, in input order.
// A non-memorable line holding only its ordinal yields an empty quote and
// a warning. path is only used in messages.
func Extract(path string, lines []Line) ([]dataset.Record, error) {
	blocks, err := SplitBlocks(path, lines)
	if err != nil {
		return nil, err
	}

	records := make([]dataset.Record, 0, 2*len(blocks))
	for _, b := range blocks {
		nonMemorable := StripLeadingToken(b.NonMemorable.Text)
		if nonMemorable == "" {
			slog.Warn("non-memorable line has no text after its ordinal",
				"path", path, "line", b.NonMemorable.Number)
		}

		records = append(records,
			dataset.Record{Text: b.Memorable.Text, Label: dataset.Yes},
			dataset.Record{Text: nonMemorable, Label: dataset.No},
		)
	}

	return records, nil
}

// Run extracts records from input and writes them to output. An input with
// no pairs still produces a header-only output file.
func Run(input, output string) (int, error) {
	records, err := ExtractFile(input)
	if err != nil {
		return 0, err
	}

	if err := dataset.WriteRecords(output, records); err != nil {
		return 0, err
	}

	slog.Info("wrote dataset", "input", input, "output", output, "records", len(records))
	return len(records), nil
}
