package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"io/fs"
	"path/filepath"
	"strings"
)

// Table is a CSV file held in memory: a header and rows of cells.
// Rows shorter than the header read as empty cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given header.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at row/column name, or "" if either is missing.
func (t *Table) Cell(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][idx]
}

// Column returns a copy of all values in the named column.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out, nil
}

// SetColumn overwrites the named column, appending it if absent.
// value is called once per row.
func (t *Table) SetColumn(name string, value func(row int) string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		idx = len(t.Columns) - 1
	}
	for i := range t.Rows {
		t.Rows[i] = pad(t.Rows[i], len(t.Columns))
		t.Rows[i][idx] = value(i)
	}
}

// Append adds the rows of src, matching cells by column name. Columns of
// src that t lacks are added in src's header order; cells a side lacks are
// empty.
func (t *Table) Append(src *Table) {
	for _, col := range src.Columns {
		if t.ColumnIndex(col) < 0 {
			t.Columns = append(t.Columns, col)
		}
	}
	for i := range t.Rows {
		t.Rows[i] = pad(t.Rows[i], len(t.Columns))
	}

	positions := make([]int, len(src.Columns))
	for i, col := range src.Columns {
		positions[i] = t.ColumnIndex(col)
	}

	for _, cells := range src.Rows {
		row := make([]string, len(t.Columns))
		for i, cell := range cells {
			if i < len(positions) {
				row[positions[i]] = cell
			}
		}
		t.Rows = append(t.Rows, row)
	}
}

func pad(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}
	return row
}

// ReadTable loads a CSV file with a header row.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewOpenError(path, err)
	}
	defer f.Close()

	return readTable(path, f)
}

func readTable(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header row", ErrEmptyData, path)
	}
	if err != nil {
		return nil, classifyCSVError(path, err)
	}

	// Spreadsheet exports often start with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := NewTable(header...)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, classifyCSVError(path, err)
		}
		if len(row) > len(t.Columns) {
			line, _ := reader.FieldPos(0)
			return nil, NewMalformedInputError(path, line,
				fmt.Sprintf("row has %d fields, header has %d", len(row), len(t.Columns)))
		}
		t.Rows = append(t.Rows, pad(row, len(t.Columns)))
	}

	return t, nil
}

func classifyCSVError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return NewMalformedInputError(path, parseErr.Line, parseErr.Err.Error())
	}
	return NewReadError(path, err)
}

// WriteTable writes t to path atomically: the data lands in a temp file
// next to path and is renamed over it only after a clean close. On failure
// the previous content of path is left untouched.
func WriteTable(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewWriteError(path, fmt.Errorf("create directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return NewWriteError(path, fmt.Errorf("create temp file: %w", err))
	}
	tmpName := tmp.Name()

	if err := writeTable(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return NewWriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewWriteError(path, fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Chmod(tmpName, fileMode(path)); err != nil {
		os.Remove(tmpName)
		return NewWriteError(path, fmt.Errorf("chmod temp file: %w", err))
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return NewWriteError(path, fmt.Errorf("replace file: %w", err))
	}

	return nil
}

func writeTable(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writer.Write(pad(row, len(t.Columns))); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// fileMode is the permission of the file at path, or 0644 when it does
// not exist yet.
func fileMode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}
