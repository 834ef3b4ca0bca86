package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/darkforge/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored profiles, generation runs, analyses or exports",
	RunE:  runHistory,
}

var (
	historyKind  string
	historyLimit int
)

// History kinds
const (
	historyProfiles   = "profiles"
	historyGeneration = "generation"
	historyAnalysis   = "analysis"
	historyExports    = "exports"
)

var historyKinds = []string{historyProfiles, historyGeneration, historyAnalysis, historyExports}

func init() {
	historyCmd.Flags().StringVar(&historyKind, "kind", historyGeneration, "Record kind: "+strings.Join(historyKinds, ", "))
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum records to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errNoDatabase
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch historyKind {
	case historyProfiles:
		recs, err := store.ListProfiles(ctx, historyLimit)
		if err != nil {
			return err
		}
		printProfiles(out, recs)
	case historyGeneration:
		runs, err := store.ListGenerationRuns(ctx, nil, historyLimit)
		if err != nil {
			return err
		}
		printGenerationRuns(out, runs)
	case historyAnalysis:
		rows, err := store.ListAnalyses(ctx, nil, historyLimit)
		if err != nil {
			return err
		}
		printAnalyses(out, rows)
	case historyExports:
		recs, err := store.ListExports(ctx, historyLimit)
		if err != nil {
			return err
		}
		printExports(out, recs)
	default:
		return fmt.Errorf("unknown --kind %q (want one of %s)", historyKind, strings.Join(historyKinds, ", "))
	}
	return nil
}

const historyTimeFormat = "2006-01-02 15:04:05"

func printProfiles(w io.Writer, recs []db.ProfileRecord) {
	for _, r := range recs {
		_, _ = fmt.Fprintf(w, "%s  %s  %-30s %d fields\n",
			r.CreatedAt.Format(historyTimeFormat), r.ID, r.Label, len(r.Profile.Present()))
	}
}

func printGenerationRuns(w io.Writer, runs []db.GenerationRun) {
	for _, r := range runs {
		flags := ""
		if r.LowYield {
			flags += " low-yield"
		}
		if r.Truncated {
			flags += " truncated"
		}
		path := ""
		if r.OutputPath != nil {
			path = *r.OutputPath
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %5d candidates%s  %s\n",
			r.CreatedAt.Format(historyTimeFormat), r.ID, r.CandidateCount, flags, path)
	}
}

func printAnalyses(w io.Writer, rows []db.AnalysisRow) {
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s  %-11s %6.2f bits  %-24s %s\n",
			r.CreatedAt.Format(historyTimeFormat), r.Strength, r.Entropy, r.Password, strings.Join(r.Patterns, ","))
	}
}

func printExports(w io.Writer, recs []db.ExportRecord) {
	for _, r := range recs {
		hash := "-"
		if r.HashType != nil {
			hash = *r.HashType
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %-8s %-7s %6d lines  %s\n",
			r.CreatedAt.Format(historyTimeFormat), r.ID, r.Format, hash, r.LineCount, r.OutputPath)
	}
}
