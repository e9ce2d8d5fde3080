package main

import (
	"fmt"

	"github.com/abdulachik/quoteprep/internal/extractor"
	"github.com/spf13/cobra"
)

var (
	pairsInput  string
	pairsOutput string
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Convert the raw pairs file to a Quote,Memorable CSV",
	Long: `Parse the memorable/non-memorable pairs text file into a CSV dataset.

The input repeats blocks of four non-blank lines: a header, the memorable
quote, a header, and the non-memorable quote prefixed with an ordinal.
Each block yields a "Yes" row and a "No" row.

Examples:
  quoteprep pairs
  quoteprep pairs --input pairs.txt --output data/quotes.csv`,
	RunE: runPairs,
}

func init() {
	pairsCmd.Flags().StringVar(&pairsInput, "input", "./moviequotes.memorable_nonmemorable_pairs.txt", "Raw pairs text file")
	pairsCmd.Flags().StringVar(&pairsOutput, "output", "./quotes_classification_data.csv", "CSV file to write")
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	n, err := extractor.Run(pairsInput, pairsOutput)
	if err != nil {
		return fmt.Errorf("extract pairs: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", n, pairsOutput)
	return nil
}
