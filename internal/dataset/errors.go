package dataset

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrRead indicates the input file exists but could not be read.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates the output file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrMalformedInput indicates the input does not have the expected structure.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEmptyData indicates a CSV file with no header row.
	ErrEmptyData = errors.New("no data")
)

// FileError describes an I/O failure on a specific path.
type FileError struct {
	Kind error // one of the sentinels above
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is().
func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewOpenError classifies an error returned while opening path for reading.
func NewOpenError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &FileError{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	return &FileError{Kind: ErrRead, Path: path, Err: err}
}

// NewReadError wraps a failure that happened while reading path.
func NewReadError(path string, err error) error {
	return &FileError{Kind: ErrRead, Path: path, Err: err}
}

// NewWriteError wraps a failure that happened while writing path.
func NewWriteError(path string, err error) error {
	return &FileError{Kind: ErrWrite, Path: path, Err: err}
}

// MalformedInputError points at the line where the input stopped making sense.
type MalformedInputError struct {
	Path   string
	Line   int // 1-based physical line, 0 when unknown
	Reason string
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input %s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed input %s: %s", e.Path, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// NewMalformedInputError creates a malformed input error with context.
func NewMalformedInputError(path string, line int, reason string) error {
	return &MalformedInputError{Path: path, Line: line, Reason: reason}
}
