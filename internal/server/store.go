package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/darkforge/internal/db"
	"github.com/jonathan/darkforge/internal/types"
)

// Store is the persistence the API uses. *db.DB satisfies it.
type Store interface {
	SaveProfile(ctx context.Context, label string, p *types.Profile) (*db.ProfileRecord, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*db.ProfileRecord, error)
	CreateGenerationRun(ctx context.Context, input *db.GenerationRunInput) (*db.GenerationRun, error)
	ListGenerationRuns(ctx context.Context, profileID *uuid.UUID, limit int) ([]db.GenerationRun, error)
	SaveAnalysis(ctx context.Context, records []types.AnalysisRecord) (uuid.UUID, error)
	ListAnalyses(ctx context.Context, batchID *uuid.UUID, limit int) ([]db.AnalysisRow, error)
}

var _ Store = (*db.DB)(nil)
