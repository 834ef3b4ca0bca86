package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/darkforge/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a saved analysis report",
	Long:  "Reads a JSON report written by 'analyze --file' and prints its summary and strength distribution again.",
	RunE:  runReport,
}

var (
	reportInput       string
	reportNoVisualize bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "in", "i", "", "Path to an analysis_*.json report")
	reportCmd.Flags().BoolVar(&reportNoVisualize, "no-visualize", false, "Skip the strength distribution chart")
	_ = reportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	doc, err := report.ReadJSON(reportInput)
	if err != nil {
		return err
	}
	if doc.Summary.Total != len(doc.Records) {
		return fmt.Errorf("report %s is inconsistent: summary counts %d passwords, file holds %d",
			reportInput, doc.Summary.Total, len(doc.Records))
	}

	printer := report.NewPrinter(cmd.OutOrStdout())
	printer.PrintSummary(doc.Summary)
	if !reportNoVisualize {
		printer.PrintChart(doc.Summary)
	}
	return nil
}
