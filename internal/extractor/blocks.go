package extractor

import (
	"fmt"
	"strings"

	"github.com/abdulachik/quoteprep/internal/dataset"
)

// BlockSize is the number of non-blank lines describing one quote pair.
const BlockSize = 4

// Block is one memorable/non-memorable pair as it appears in the source.
type Block struct {
	MemorableHeader    Line
	Memorable          Line
	NonMemorableHeader Line
	NonMemorable       Line
}

// SplitBlocks groups lines into blocks of four. The line count is checked
// up front so a partial trailing block is an error, never silently dropped.
func SplitBlocks(path string, lines []Line) ([]Block, error) {
	if rem := len(lines) % BlockSize; rem != 0 {
		first := lines[len(lines)-rem]
		return nil, dataset.NewMalformedInputError(path, first.Number,
			fmt.Sprintf("%d non-blank lines is not a multiple of %d; trailing block has %d line(s)",
				len(lines), BlockSize, rem))
	}

	blocks := make([]Block, 0, len(lines)/BlockSize)
	for i := 0; i < len(lines); i += BlockSize {
		blocks = append(blocks, Block{
			MemorableHeader:    lines[i],
			Memorable:          lines[i+1],
			NonMemorableHeader: lines[i+2],
			NonMemorable:       lines[i+3],
		})
	}
	return blocks, nil
}

// StripLeadingToken drops the first whitespace-delimited token of s and
// joins the remaining tokens with single spaces. The pairs file prefixes
// every non-memorable quote with an ordinal.
func StripLeadingToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}
