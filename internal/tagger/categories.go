package tagger

import (
	"strings"
)

// Category is a qualitative label the model may assign to a quote.
type Category string

const (
	Concreteness Category = "Concreteness"
	Arousal      Category = "Arousal"
	Valence      Category = "Valence"
	Humor        Category = "Humor"
	Semantics    Category = "Semantics"
	Imagery      Category = "Imagery"
	Simplicity   Category = "Simplicity"
)

// AllCategories lists the categories in prompt order.
var AllCategories = []Category{
	Concreteness,
	Arousal,
	Valence,
	Humor,
	Semantics,
	Imagery,
	Simplicity,
}

// ParseCategories splits a model answer into labels. Known categories are
// returned in canonical case; anything else is kept as the model wrote it.
func ParseCategories(analysis string) []string {
	parts := strings.FieldsFunc(analysis, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var out []string
	for _, p := range parts {
		label := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(p), "."))
		if label == "" {
			continue
		}
		if c, ok := lookupCategory(label); ok {
			label = string(c)
		}
		out = append(out, label)
	}
	return out
}

// CountCategories returns the number of labels in analysis. An empty or
// missing analysis counts zero.
func CountCategories(analysis string) int {
	return len(ParseCategories(analysis))
}

// HasCategory reports whether analysis lists c.
func HasCategory(analysis string, c Category) bool {
	for _, label := range ParseCategories(analysis) {
		if label == string(c) {
			return true
		}
	}
	return false
}

func lookupCategory(label string) (Category, bool) {
	for _, c := range AllCategories {
		if strings.EqualFold(label, string(c)) {
			return c, true
		}
	}
	return "", false
}
