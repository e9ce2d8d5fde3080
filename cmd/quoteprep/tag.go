package main

import (
	"fmt"
	"log/slog"

	"github.com/abdulachik/quoteprep/internal/app"
	"github.com/abdulachik/quoteprep/internal/config"
	"github.com/spf13/cobra"
)

var (
	tagInput   string
	tagOutput  string
	tagBinary  bool
	tagNoCache bool
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag quotes with qualitative categories",
	Long: `Ask an OpenAI chat model which categories (Concreteness, Arousal,
Valence, Humor, Semantics, Imagery, Simplicity) fit each quote.

Adds an Analysis column with the model's answer and a Category_Count column.
With --binary, one 0/1 column per category is added as well. Answers are
cached in the database so re-runs only call the API for new quotes.

Examples:
  quoteprep tag
  quoteprep tag --input data/quotes.csv --output data/tagged.csv --binary`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().StringVar(&tagInput, "input", "../dataset/quotes_classification_data.csv", "Dataset CSV with a Quote column")
	tagCmd.Flags().StringVar(&tagOutput, "output", "quotes_analysis_results_v3.csv", "CSV file to write")
	tagCmd.Flags().BoolVar(&tagBinary, "binary", false, "Add one 0/1 column per category")
	tagCmd.Flags().BoolVar(&tagNoCache, "no-cache", false, "Always call the API, ignoring cached answers")
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForTagging(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, app.Options{
		Binary:   tagBinary,
		UseCache: !tagNoCache,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("starting tagging",
		"input", tagInput,
		"output", tagOutput,
		"model", cfg.OpenAIModel,
		"binary", tagBinary,
	)

	summary, err := a.Tagger.TagFile(ctx, tagInput, tagOutput)
	if err != nil {
		return fmt.Errorf("tag quotes: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tagged %d quotes into %s\n", summary.Total, tagOutput)
	fmt.Fprintf(out, "  API: %d  cached: %d  failed: %d  skipped: %d\n",
		summary.Tagged, summary.Cached, summary.Failed, summary.Skipped)
	return nil
}
