package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/darkforge/internal/analyzer"
	"github.com/jonathan/darkforge/internal/export"
	"github.com/jonathan/darkforge/internal/report"
	"github.com/jonathan/darkforge/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze password strength",
	Long: "Scores a single password (from --password or a hidden prompt) or every line of a " +
		"wordlist by entropy and weak-pattern detection.",
	RunE: runAnalyze,
}

var (
	analyzeFile         string
	analyzePassword     string
	analyzeOutputDir    string
	analyzeNoVisualize  bool
	analyzePatternsOnly bool
	analyzeWorkers      int
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Wordlist to analyze, one password per line")
	analyzeCmd.Flags().StringVarP(&analyzePassword, "password", "p", "", "Single password to analyze (prompted without echo when omitted)")
	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "out-dir", "", "Directory for the JSON report (default <output_dir>)")
	analyzeCmd.Flags().BoolVar(&analyzeNoVisualize, "no-visualize", false, "Skip the strength distribution chart")
	analyzeCmd.Flags().BoolVar(&analyzePatternsOnly, "patterns-only", false, "Only run weak-pattern detection")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Parallel workers for wordlists (default from config, 0 means GOMAXPROCS)")

	analyzeCmd.MarkFlagsMutuallyExclusive("file", "password")

	rootCmd.AddCommand(analyzeCmd)
}

func newAnalyzer() (*analyzer.Analyzer, error) {
	cfg, err := appConfig.AnalyzerSettings()
	if err != nil {
		return nil, err
	}
	cfg.PatternsOnly = analyzePatternsOnly
	if analyzeWorkers > 0 {
		cfg.Workers = analyzeWorkers
	}
	return analyzer.New(cfg, analyzer.WithLogger(logger))
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to configure analyzer: %w", err)
	}

	if analyzeFile != "" {
		return analyzeWordlist(cmd, a)
	}

	password := analyzePassword
	if !cmd.Flags().Changed("password") {
		password, err = readSecret(os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	rec := a.Analyze(password)
	printer := report.NewPrinter(cmd.OutOrStdout())
	if analyzePatternsOnly {
		printer.PrintPatterns(rec)
	} else {
		printer.PrintRecord(rec)
	}
	return nil
}

func analyzeWordlist(cmd *cobra.Command, a *analyzer.Analyzer) error {
	passwords, err := export.ReadWordlistFile(analyzeFile)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return errors.New("wordlist is empty")
	}

	records := a.AnalyzeAll(passwords)
	summary := report.Summarize(records)

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.PrintSummary(summary)
	if !analyzeNoVisualize && !analyzePatternsOnly {
		printer.PrintChart(summary)
	}

	dir := analyzeOutputDir
	if dir == "" {
		dir = appConfig.OutputDir
	}
	reportPath := filepath.Join(dir, fmt.Sprintf("analysis_%s.json", time.Now().Format("20060102_150405")))
	if err := report.WriteJSON(reportPath, records, summary); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", reportPath)

	recordAnalysis(cmd, records)
	return nil
}

func recordAnalysis(cmd *cobra.Command, records []types.AnalysisRecord) {
	store, err := openStore(cmd.Context())
	if err != nil {
		warnStore("connect", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	batchID, err := store.SaveAnalysis(cmd.Context(), records)
	if err != nil {
		warnStore("save analysis", err)
		return
	}
	logger.Info("Recorded analysis batch",
		zap.String("batch_id", batchID.String()),
		zap.Int("count", len(records)),
	)
}
