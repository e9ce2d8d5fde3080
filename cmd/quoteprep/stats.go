package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/quoteprep/internal/app"
	"github.com/abdulachik/quoteprep/internal/config"
	"github.com/abdulachik/quoteprep/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	statsDataset string
	statsJobs    int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tag cache and dataset statistics",
	Long: `Display statistics about cached quote tags and recent tagging runs.
With --dataset, also count the Yes/No rows of a Quote,Memorable CSV.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsDataset, "dataset", "", "Quote,Memorable CSV to summarise")
	statsCmd.Flags().IntVar(&statsJobs, "jobs", 5, "Number of recent tagging runs to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	totalTags, err := store.CountQuoteTags(ctx)
	if err != nil {
		return fmt.Errorf("count quote tags: %w", err)
	}

	byCount, err := store.CountQuoteTagsByCategoryCount(ctx)
	if err != nil {
		return fmt.Errorf("count quote tags by category count: %w", err)
	}

	jobs, err := store.ListRecentTagJobs(ctx, int64(statsJobs))
	if err != nil {
		slog.Warn("failed to list tag jobs", "error", err)
	}

	fmt.Fprintln(out, "=== quoteprep Statistics ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Database: %s\n", cfg.DatabasePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Tag cache:")
	fmt.Fprintf(out, "  Quotes: %d\n", totalTags)
	if len(byCount) > 0 {
		fmt.Fprintln(out, "  By category count:")
		for _, row := range byCount {
			fmt.Fprintf(out, "    %d: %d\n", row.CategoryCount, row.Count)
		}
	}
	fmt.Fprintln(out)

	if len(jobs) > 0 {
		fmt.Fprintln(out, "Recent tagging runs:")
		for _, j := range jobs {
			fmt.Fprintf(out, "  %s  %-9s  %d/%d rows  failed %d  cached %d  %s\n",
				shortID(j.ID), j.Status, j.ProcessedRows.Int64, j.TotalRows.Int64,
				j.FailedRows.Int64, j.CachedRows.Int64, j.InputPath)
			if j.ErrorMessage.Valid {
				fmt.Fprintf(out, "            error: %s\n", j.ErrorMessage.String)
			}
		}
		fmt.Fprintln(out)
	}

	if statsDataset != "" {
		records, err := dataset.ReadRecords(statsDataset)
		if err != nil {
			return fmt.Errorf("read dataset: %w", err)
		}

		yes := 0
		for _, r := range records {
			if r.Label == dataset.Yes {
				yes++
			}
		}
		fmt.Fprintln(out, "Dataset:")
		fmt.Fprintf(out, "  Path: %s\n", statsDataset)
		fmt.Fprintf(out, "  Records: %d\n", len(records))
		fmt.Fprintf(out, "  Memorable: %d\n", yes)
		fmt.Fprintf(out, "  Non-memorable: %d\n", len(records)-yes)
		fmt.Fprintln(out)
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
