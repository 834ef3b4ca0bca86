package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/darkforge/internal/types"
)

// Document is the on-disk form of an analysis report.
type Document struct {
	Summary Summary                `json:"summary"`
	Records []types.AnalysisRecord `json:"records"`
}

// WriteJSON writes records and their summary as indented JSON, creating parent directories.
func WriteJSON(path string, records []types.AnalysisRecord, summary Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if records == nil {
		records = []types.AnalysisRecord{}
	}
	content, err := json.MarshalIndent(Document{Summary: summary, Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &doc, nil
}
