package dataset

import "fmt"

// RecordsTable converts records into a Quote,Memorable table.
func RecordsTable(records []Record) *Table {
	t := NewTable(ColumnQuote, ColumnMemorable)
	t.Rows = make([][]string, 0, len(records))
	for _, r := range records {
		t.Rows = append(t.Rows, []string{r.Text, string(r.Label)})
	}
	return t
}

// WriteRecords writes the header row and one row per record, in order.
func WriteRecords(path string, records []Record) error {
	return WriteTable(path, RecordsTable(records))
}

// ReadRecords reads a dataset written by WriteRecords. Columns are found by
// name, so extra columns (Analysis, Category_Count, ...) are ignored.
func ReadRecords(path string) ([]Record, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	quoteIdx := t.ColumnIndex(ColumnQuote)
	labelIdx := t.ColumnIndex(ColumnMemorable)
	if quoteIdx < 0 || labelIdx < 0 {
		return nil, NewMalformedInputError(path, 1,
			fmt.Sprintf("header must contain %q and %q", ColumnQuote, ColumnMemorable))
	}

	records := make([]Record, 0, t.Len())
	for i, row := range t.Rows {
		label, err := ParseLabel(row[labelIdx])
		if err != nil {
			return nil, NewMalformedInputError(path, 0, fmt.Sprintf("row %d: %v", i+1, err))
		}
		records = append(records, Record{Text: row[quoteIdx], Label: label})
	}

	return records, nil
}
