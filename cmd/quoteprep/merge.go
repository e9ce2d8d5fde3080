package main

import (
	"fmt"

	"github.com/abdulachik/quoteprep/internal/merge"
	"github.com/spf13/cobra"
)

var (
	mergeManifest string
	mergeDir      string
	mergeOutput   string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge labeled CSVs into one training dataset",
	Long: `Concatenate several CSV files, setting a constant Memorable label
(1 or 0) per file. Columns are the union of all input headers.

Without --manifest the generated datasets layout is used: four
memorable_*.csv files labelled 1 and non_memorable_texts.csv labelled 0.

Manifest format (paths relative to the manifest):
  output: merged_dataset.csv
  sources:
    - path: memorable_imagery.csv
      memorable: 1
    - path: non_memorable_texts.csv
      memorable: 0

Examples:
  quoteprep merge
  quoteprep merge --dir data/generated
  quoteprep merge --manifest merge.yaml`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeManifest, "manifest", "", "YAML manifest listing sources and labels")
	mergeCmd.Flags().StringVar(&mergeDir, "dir", "../generated_datasets", "Directory of the default layout")
	mergeCmd.Flags().StringVar(&mergeOutput, "output", "", "Override the output path")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	m := merge.DefaultManifest(mergeDir)
	if mergeManifest != "" {
		var err error
		m, err = merge.LoadManifest(mergeManifest)
		if err != nil {
			return err
		}
	}
	if mergeOutput != "" {
		m.Output = mergeOutput
	}

	res, err := merge.Run(ctx, m)
	if err != nil {
		return fmt.Errorf("merge datasets: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Merged %d rows from %d source(s) into %s\n", res.Table.Len(), res.Loaded, m.Output)
	for _, s := range res.Skipped {
		fmt.Fprintf(out, "  skipped %s: %s\n", s.Source.Path, s.Reason)
	}
	return nil
}
