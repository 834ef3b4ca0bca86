package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMissingResult is returned when a generation run is recorded without a result.
var ErrMissingResult = errors.New("generation result is required")

// CreateGenerationRun records the outcome of a generator invocation
func (db *DB) CreateGenerationRun(ctx context.Context, input *GenerationRunInput) (*GenerationRun, error) {
	if input == nil || input.Result == nil {
		return nil, ErrMissingResult
	}
	res := input.Result

	run := GenerationRun{
		ID:               uuid.New(),
		ProfileID:        input.ProfileID,
		CandidateCount:   len(res.Candidates),
		TargetMin:        res.TargetMin,
		TargetMax:        res.TargetMax,
		LowYield:         res.LowYield,
		Truncated:        res.Truncated,
		TemplatesApplied: res.TemplatesApplied,
		TemplatesSkipped: res.TemplatesSkipped,
		OutputPath:       nullIfEmpty(input.OutputPath),
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (id, profile_id, candidate_count, target_min, target_max,
		                              low_yield, truncated, templates_applied, templates_skipped, output_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		run.ID, run.ProfileID, run.CandidateCount, run.TargetMin, run.TargetMax,
		run.LowYield, run.Truncated, run.TemplatesApplied, run.TemplatesSkipped, run.OutputPath,
	).Scan(&run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation run: %w", err)
	}
	return &run, nil
}

// ListGenerationRuns returns recent runs, newest first, optionally for one profile
func (db *DB) ListGenerationRuns(ctx context.Context, profileID *uuid.UUID, limit int) ([]GenerationRun, error) {
	query := `SELECT id, profile_id, candidate_count, target_min, target_max, low_yield, truncated,
	                 templates_applied, templates_skipped, output_path, created_at
	          FROM generation_runs`
	args := []any{}
	argPos := 1

	if profileID != nil {
		query += fmt.Sprintf(" WHERE profile_id = $%d", argPos)
		args = append(args, *profileID)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argPos)
	args = append(args, listLimit(limit))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	defer rows.Close()

	var runs []GenerationRun
	for rows.Next() {
		var r GenerationRun
		if err := rows.Scan(&r.ID, &r.ProfileID, &r.CandidateCount, &r.TargetMin, &r.TargetMax,
			&r.LowYield, &r.Truncated, &r.TemplatesApplied, &r.TemplatesSkipped,
			&r.OutputPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
