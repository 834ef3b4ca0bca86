package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveExport records a written export file
func (db *DB) SaveExport(ctx context.Context, input *ExportInput) (*ExportRecord, error) {
	rec := ExportRecord{
		ID:              uuid.New(),
		GenerationRunID: input.GenerationRunID,
		Format:          input.Format,
		HashType:        nullIfEmpty(input.HashType),
		LineCount:       input.LineCount,
		OutputPath:      input.OutputPath,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exports (id, generation_run_id, format, hash_type, line_count, output_path)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		rec.ID, rec.GenerationRunID, rec.Format, rec.HashType, rec.LineCount, rec.OutputPath,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save export: %w", err)
	}
	return &rec, nil
}

// ListExports returns recent exports, newest first
func (db *DB) ListExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, generation_run_id, format, hash_type, line_count, output_path, created_at
		 FROM exports
		 ORDER BY created_at DESC
		 LIMIT $1`,
		listLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var r ExportRecord
		if err := rows.Scan(&r.ID, &r.GenerationRunID, &r.Format, &r.HashType,
			&r.LineCount, &r.OutputPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
