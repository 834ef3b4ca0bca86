package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/darkforge/internal/types"
)

func TestSchema_DefinesTables(t *testing.T) {
	schema := Schema()
	for _, table := range []string{"profiles", "generation_runs", "analyses", "exports"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, listLimit(0))
	assert.Equal(t, DefaultListLimit, listLimit(-3))
	assert.Equal(t, 7, listLimit(7))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	got := nullIfEmpty("out/candidates.txt")
	require.NotNil(t, got)
	assert.Equal(t, "out/candidates.txt", *got)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not a url ::")
	assert.Error(t, err)
}

func TestCreateGenerationRun_RequiresResult(t *testing.T) {
	db := &DB{}
	_, err := db.CreateGenerationRun(context.Background(), &GenerationRunInput{})
	assert.ErrorIs(t, err, ErrMissingResult)

	_, err = db.CreateGenerationRun(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingResult)
}

func TestAnalysisRows(t *testing.T) {
	batchID := uuid.New()
	records := []types.AnalysisRecord{
		{Password: "password", Length: 8, Strength: types.VeryWeak, Patterns: []string{"common-word"}},
		{Password: "Tr0ub4dor&9Xk!", Length: 14, Strength: types.VeryStrong},
	}

	rows, err := analysisRows(batchID, records)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		require.Len(t, row, len(analysisColumns))
		assert.Equal(t, batchID, row[1])
		assert.Equal(t, i, row[2])
	}
	assert.Equal(t, "Very Weak", rows[0][7])
	assert.Equal(t, []string{}, rows[1][9])
}

func TestAnalysisRows_RejectsNULByte(t *testing.T) {
	records := []types.AnalysisRecord{{Password: "ok"}, {Password: "pass\x00word"}}

	rows, err := analysisRows(uuid.New(), records)
	assert.Nil(t, rows)
	require.ErrorIs(t, err, ErrNULByte)
	assert.Contains(t, err.Error(), "analysis 1")
}
