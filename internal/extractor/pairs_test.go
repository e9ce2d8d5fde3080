package extractor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulachik/quoteprep/internal/dataset"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtract(t *testing.T) {
	t.Run("single block", func(t *testing.T) {
		records, err := Extract("pairs.txt", numbered("H1", "Memorable quote.", "H2", "3 Filler text here"))
		require.NoError(t, err)
		assert.Equal(t, []dataset.Record{
			{Text: "Memorable quote.", Label: dataset.Yes},
			{Text: "Filler text here", Label: dataset.No},
		}, records)
	})

	t.Run("record count is twice the block count", func(t *testing.T) {
		var texts []string
		for i := 0; i < 25; i++ {
			texts = append(texts, "header", "memorable", "header", "9 plain")
		}

		records, err := Extract("pairs.txt", numbered(texts...))
		require.NoError(t, err)
		assert.Len(t, records, 50)
	})

	t.Run("preserves order without dedup", func(t *testing.T) {
		lines := numbered(
			"1", "Same", "1", "1 Other",
			"2", "Same", "2", "2 Other",
			"3", "Last", "3", "3 Final words",
		)

		records, err := Extract("pairs.txt", lines)
		require.NoError(t, err)

		var texts []string
		for _, r := range records {
			texts = append(texts, r.Text+"/"+string(r.Label))
		}
		assert.Equal(t, []string{
			"Same/Yes", "Other/No",
			"Same/Yes", "Other/No",
			"Last/Yes", "Final words/No",
		}, texts)
	})

	t.Run("ordinal only line yields empty quote", func(t *testing.T) {
		records, err := Extract("pairs.txt", numbered("H1", "M1", "H2", "17", "H3", "M2", "H4", "2 N2"))
		require.NoError(t, err)
		assert.Equal(t, []dataset.Record{
			{Text: "M1", Label: dataset.Yes},
			{Text: "", Label: dataset.No},
			{Text: "M2", Label: dataset.Yes},
			{Text: "N2", Label: dataset.No},
		}, records)
	})
}

func TestExtractFile(t *testing.T) {
	t.Run("skips blank lines between blocks", func(t *testing.T) {
		path := writeFile(t, "\n1 header\n  Memorable quote.  \n\n\t\n1 header\n3 Filler text here\n\n")

		records, err := ExtractFile(path)
		require.NoError(t, err)
		assert.Equal(t, []dataset.Record{
			{Text: "Memorable quote.", Label: dataset.Yes},
			{Text: "Filler text here", Label: dataset.No},
		}, records)
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		path := writeFile(t, "H1\r\nMemorable quote.\r\nH2\r\n12 To be or not to be\r\n")

		records, err := ExtractFile(path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Memorable quote.", records[0].Text)
		assert.Equal(t, "To be or not to be", records[1].Text)
	})

	t.Run("handles lone CR line endings", func(t *testing.T) {
		path := writeFile(t, "H1\rM1\rH2\r1 N1\r")

		records, err := ExtractFile(path)
		require.NoError(t, err)
		assert.Equal(t, []dataset.Record{
			{Text: "M1", Label: dataset.Yes},
			{Text: "N1", Label: dataset.No},
		}, records)
	})

	t.Run("counts lines across mixed line endings", func(t *testing.T) {
		path := writeFile(t, "H1\r\n\rM1\nH2\r\r\n1 N1")

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []Line{
			{Number: 1, Text: "H1"},
			{Number: 3, Text: "M1"},
			{Number: 4, Text: "H2"},
			{Number: 6, Text: "1 N1"},
		}, lines)
	})

	t.Run("replaces invalid utf-8", func(t *testing.T) {
		path := writeFile(t, "H1\nCaf\xe9 quote\nH2\n1 Plain \xff text\n")

		records, err := ExtractFile(path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Caf\ufffd quote", records[0].Text)
		assert.Equal(t, "Plain \ufffd text", records[1].Text)
	})

	t.Run("drops byte order mark", func(t *testing.T) {
		path := writeFile(t, "\ufeffH1\nM1\nH2\n1 N1\n")

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, "H1", lines[0].Text)
	})

	t.Run("keeps physical line numbers", func(t *testing.T) {
		path := writeFile(t, "\n\nH1\n\nM1\n")

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []Line{{Number: 3, Text: "H1"}, {Number: 5, Text: "M1"}}, lines)
	})

	t.Run("empty file yields no records", func(t *testing.T) {
		records, err := ExtractFile(writeFile(t, ""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("blank-only file yields no records", func(t *testing.T) {
		records, err := ExtractFile(writeFile(t, "\n   \n\t\n"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ExtractFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, dataset.ErrFileNotFound))
	})

	t.Run("directory is a read failure", func(t *testing.T) {
		_, err := ExtractFile(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, dataset.ErrRead))
		assert.False(t, errors.Is(err, dataset.ErrFileNotFound))
	})

	t.Run("partial trailing block", func(t *testing.T) {
		path := writeFile(t, "H1\nM1\nH2\n1 N1\nH3\nM2\n")

		_, err := ExtractFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dataset.ErrMalformedInput))
		assert.Contains(t, err.Error(), ":5:")
	})

	t.Run("very long line", func(t *testing.T) {
		long := strings.Repeat("word ", 30000)
		path := writeFile(t, "H1\n"+long+"\nH2\n1 short\n")

		records, err := ExtractFile(path)
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(long), records[0].Text)
	})
}

func TestRun(t *testing.T) {
	t.Run("writes csv", func(t *testing.T) {
		input := writeFile(t, "H1\nHe said, \"go\".\nH2\n4 Nothing, really\n")
		output := filepath.Join(t.TempDir(), "out.csv")

		n, err := Run(input, output)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		records, err := dataset.ReadRecords(output)
		require.NoError(t, err)
		assert.Equal(t, []dataset.Record{
			{Text: `He said, "go".`, Label: dataset.Yes},
			{Text: "Nothing, really", Label: dataset.No},
		}, records)
	})

	t.Run("empty input writes header only", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.csv")

		n, err := Run(writeFile(t, ""), output)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "Quote,Memorable\n", string(data))
	})

	t.Run("missing input writes nothing", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.csv")

		_, err := Run(filepath.Join(t.TempDir(), "missing.txt"), output)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dataset.ErrFileNotFound))

		_, statErr := os.Stat(output)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("malformed input keeps previous output", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, os.WriteFile(output, []byte("previous"), 0644))

		_, err := Run(writeFile(t, "H1\nM1\nH2\n"), output)
		require.Error(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})
}
