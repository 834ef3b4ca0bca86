package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/darkforge/internal/types"
)

// ErrNULByte is returned when a password contains a NUL byte, which
// PostgreSQL text columns cannot store.
var ErrNULByte = errors.New("password contains a NUL byte")

var analysisColumns = []string{
	"id", "batch_id", "position", "password", "length", "entropy",
	"adjusted_entropy", "strength", "score", "patterns",
}

// analysisRows converts records to COPY rows, rejecting passwords that
// cannot be stored.
func analysisRows(batchID uuid.UUID, records []types.AnalysisRecord) ([][]any, error) {
	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		if strings.IndexByte(rec.Password, 0) >= 0 {
			return nil, fmt.Errorf("analysis %d: %w", i, ErrNULByte)
		}
		patterns := rec.Patterns
		if patterns == nil {
			patterns = []string{}
		}
		rows = append(rows, []any{
			uuid.New(), batchID, i, rec.Password, rec.Length, rec.Entropy,
			rec.AdjustedEntropy, rec.Strength.String(), rec.Score, patterns,
		})
	}
	return rows, nil
}

// SaveAnalysis stores a batch of analysis records in one transaction and
// returns the batch ID. Record order is kept in the position column.
func (db *DB) SaveAnalysis(ctx context.Context, records []types.AnalysisRecord) (uuid.UUID, error) {
	batchID := uuid.New()
	rows, err := analysisRows(batchID, records)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"analyses"}, analysisColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to copy analyses: %w", err)
	}
	if int(n) != len(rows) {
		return uuid.Nil, fmt.Errorf("failed to copy analyses: stored %d of %d", n, len(rows))
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return batchID, nil
}

// ListAnalyses returns stored analyses. With a batch ID the batch is returned in
// input order; otherwise the most recent rows come first.
func (db *DB) ListAnalyses(ctx context.Context, batchID *uuid.UUID, limit int) ([]AnalysisRow, error) {
	query := `SELECT id, batch_id, position, password, length, entropy, adjusted_entropy,
	                 strength, score, patterns, created_at
	          FROM analyses`
	args := []any{}
	if batchID != nil {
		query += " WHERE batch_id = $1 ORDER BY position LIMIT $2"
		args = append(args, *batchID)
	} else {
		query += " ORDER BY created_at DESC, position LIMIT $1"
	}
	args = append(args, listLimit(limit))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var r AnalysisRow
		var strength string
		if err := rows.Scan(&r.ID, &r.BatchID, &r.Position, &r.Password, &r.Length, &r.Entropy,
			&r.AdjustedEntropy, &strength, &r.Score, &r.Patterns, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		parsed, ok := types.ParseStrength(strength)
		if !ok {
			return nil, fmt.Errorf("unknown strength %q in analysis %s", strength, r.ID)
		}
		r.Strength = parsed
		out = append(out, r)
	}
	return out, rows.Err()
}
