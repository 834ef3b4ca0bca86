package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/darkforge/internal/types"
)

// ProfileRecord is a stored profile.
type ProfileRecord struct {
	ID        uuid.UUID      `json:"id"`
	Label     string         `json:"label"`
	Profile   *types.Profile `json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
}

// GenerationRun summarizes one generator invocation.
type GenerationRun struct {
	ID               uuid.UUID  `json:"id"`
	ProfileID        *uuid.UUID `json:"profile_id,omitempty"`
	CandidateCount   int        `json:"candidate_count"`
	TargetMin        int        `json:"target_min"`
	TargetMax        int        `json:"target_max"`
	LowYield         bool       `json:"low_yield"`
	Truncated        bool       `json:"truncated"`
	TemplatesApplied int        `json:"templates_applied"`
	TemplatesSkipped int        `json:"templates_skipped"`
	OutputPath       *string    `json:"output_path,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// GenerationRunInput represents input for recording a generation run
type GenerationRunInput struct {
	ProfileID  *uuid.UUID
	Result     *types.GenerationResult
	OutputPath string
}

// AnalysisRow is one stored password analysis.
type AnalysisRow struct {
	ID              uuid.UUID      `json:"id"`
	BatchID         uuid.UUID      `json:"batch_id"`
	Position        int            `json:"position"`
	Password        string         `json:"password"`
	Length          int            `json:"length"`
	Entropy         float64        `json:"entropy"`
	AdjustedEntropy float64        `json:"adjusted_entropy"`
	Strength        types.Strength `json:"strength"`
	Score           int            `json:"score"`
	Patterns        []string       `json:"patterns"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ExportRecord describes a written export file.
type ExportRecord struct {
	ID              uuid.UUID  `json:"id"`
	GenerationRunID *uuid.UUID `json:"generation_run_id,omitempty"`
	Format          string     `json:"format"`
	HashType        *string    `json:"hash_type,omitempty"`
	LineCount       int        `json:"line_count"`
	OutputPath      string     `json:"output_path"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ExportInput represents input for recording an export
type ExportInput struct {
	GenerationRunID *uuid.UUID
	Format          string
	HashType        string
	LineCount       int
	OutputPath      string
}
