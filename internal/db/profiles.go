package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/darkforge/internal/types"
)

// -----------------------------------------------------------------------------
// Profile Methods
// -----------------------------------------------------------------------------

// SaveProfile stores a profile under a new ID. An empty label defaults to
// "<first_name> <last_name>".
func (db *DB) SaveProfile(ctx context.Context, label string, p *types.Profile) (*ProfileRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if label == "" {
		label = p.FirstName + " " + p.LastName
	}

	rec := ProfileRecord{ID: uuid.New(), Label: label, Profile: p}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (id, label, first_name, last_name, data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		rec.ID, rec.Label, p.FirstName, p.LastName, data,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return &rec, nil
}

// GetProfile retrieves a profile by ID. Returns nil, nil when absent.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileRecord, error) {
	var rec ProfileRecord
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, label, data, created_at FROM profiles WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Label, &data, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(data, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	return &rec, nil
}

// ListProfiles returns the most recent profiles first.
func (db *DB) ListProfiles(ctx context.Context, limit int) ([]ProfileRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, label, data, created_at FROM profiles
		 ORDER BY created_at DESC
		 LIMIT $1`,
		listLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileRecord
	for rows.Next() {
		var rec ProfileRecord
		var data []byte
		if err := rows.Scan(&rec.ID, &rec.Label, &data, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		if err := json.Unmarshal(data, &rec.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
