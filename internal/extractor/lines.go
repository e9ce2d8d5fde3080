package extractor

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/abdulachik/quoteprep/internal/dataset"
)

// maxLineBytes bounds a single line of the pairs file.
const maxLineBytes = 1 << 20

// Line is a non-blank, trimmed line of the source file.
type Line struct {
	Number int // 1-based physical line number
	Text   string
}

// ReadLines reads path and returns its non-blank lines, trimmed.
// Ill-formed UTF-8 is replaced with U+FFFD rather than rejected.
func ReadLines(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, dataset.NewOpenError(path, err)
	}
	defer file.Close()

	lines, err := scanLines(file)
	if err != nil {
		return nil, dataset.NewReadError(path, err)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]Line, error) {
	decoded := transform.NewReader(r, runes.ReplaceIllFormed())

	var lines []Line
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	scanner.Split(splitLines)

	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Text()
		if number == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, Line{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// splitLines is bufio.ScanLines that also ends a line at a lone '\r', so
// files with old Mac line endings split the same as LF and CRLF files.
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
