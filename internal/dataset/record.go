// Package dataset holds the quote dataset model and its CSV representation.
package dataset

import (
	"fmt"
	"strings"
)

// Column names of the classification dataset.
const (
	ColumnQuote     = "Quote"
	ColumnMemorable = "Memorable"
)

// Label marks a quote as memorable or not.
type Label string

const (
	Yes Label = "Yes"
	No  Label = "No"
)

// ParseLabel accepts Yes/No in any case, plus the 1/0 and true/false
// spellings found in merged datasets.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "1", "true":
		return Yes, nil
	case "no", "0", "false":
		return No, nil
	}
	return "", fmt.Errorf("invalid label %q", s)
}

// Binary returns "1" for Yes and "0" for No.
func (l Label) Binary() string {
	if l == Yes {
		return "1"
	}
	return "0"
}

// Record is one labeled quote.
type Record struct {
	Text  string
	Label Label
}
