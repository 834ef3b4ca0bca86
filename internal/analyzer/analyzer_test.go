package analyzer

import (
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/darkforge/internal/types"
)

func newDefault(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := New(DefaultConfig(), opts...)
	require.NoError(t, err)
	return a
}

func TestAnalyze_CommonPassword(t *testing.T) {
	rec := newDefault(t).Analyze("password")

	assert.Equal(t, 8, rec.Length)
	assert.Equal(t, types.Composition{Lower: 8}, rec.Composition)
	assert.Equal(t, 26, rec.AlphabetSize)
	assert.InDelta(t, 8*math.Log2(26), rec.Entropy, 1e-9)
	assert.Equal(t, []string{DetectAllLowercase, DetectCommonWord}, rec.Patterns)
	assert.Equal(t, 0.0, rec.AdjustedEntropy)
	assert.Equal(t, types.VeryWeak, rec.Strength)
	assert.Equal(t, 0, rec.Score)
	require.NotNil(t, rec.Estimate)
	assert.LessOrEqual(t, rec.Estimate.Score, 1)
}

func TestAnalyze_StrongPassword(t *testing.T) {
	rec := newDefault(t).Analyze("Tr0ub4dor&9Xk!")

	assert.Equal(t, 14, rec.Length)
	assert.True(t, rec.Composition.HasLower())
	assert.True(t, rec.Composition.HasUpper())
	assert.True(t, rec.Composition.HasDigit())
	assert.True(t, rec.Composition.HasSymbol())
	assert.Equal(t, 95, rec.AlphabetSize)
	assert.InDelta(t, 91.98, rec.Entropy, 0.01)
	assert.Empty(t, rec.Patterns)
	assert.GreaterOrEqual(t, rec.Strength, types.Strong)
	assert.Equal(t, types.VeryStrong, rec.Strength)
	assert.Equal(t, 92, rec.Score)
}

func TestAnalyze_Empty(t *testing.T) {
	rec := newDefault(t).Analyze("")

	assert.Equal(t, 0, rec.Length)
	assert.Equal(t, 0.0, rec.Entropy)
	assert.Equal(t, types.VeryWeak, rec.Strength)
	assert.Empty(t, rec.Patterns)
	assert.Nil(t, rec.Estimate)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newDefault(t)
	for _, pw := range []string{"", "password", "Summer2024!", "qwerty", "Tr0ub4dor&9Xk!"} {
		assert.Equal(t, a.Analyze(pw), a.Analyze(pw), pw)
	}
}

func TestAnalyze_EntropyMonotonicInLength(t *testing.T) {
	a := newDefault(t)
	short := a.Analyze("Xk9#mQ")
	long := a.Analyze("Xk9#mQ2v")

	assert.Equal(t, short.AlphabetSize, long.AlphabetSize)
	assert.Greater(t, long.Entropy, short.Entropy)
}

func TestAnalyze_ClassificationMonotonicInPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Estimate = false
	base, err := New(cfg, WithDetectors(nil))
	require.NoError(t, err)
	full, err := New(cfg)
	require.NoError(t, err)

	for _, pw := range []string{"password", "123456", "qwerty2020", "aaaBBB111", "Tr0ub4dor&9Xk!"} {
		withDetectors := full.Analyze(pw)
		without := base.Analyze(pw)
		assert.LessOrEqual(t, withDetectors.Strength, without.Strength, pw)
		assert.Equal(t, withDetectors.Entropy, without.Entropy, pw)
	}
}

func TestAnalyze_PatternsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatternsOnly = true
	a, err := New(cfg)
	require.NoError(t, err)

	rec := a.Analyze("password")
	assert.Equal(t, []string{DetectAllLowercase, DetectCommonWord}, rec.Patterns)
	assert.Equal(t, 8, rec.Length)
	assert.Equal(t, 0, rec.AlphabetSize)
	assert.Equal(t, 0.0, rec.Entropy)
	assert.Nil(t, rec.Estimate)
}

func TestAnalyzeAll_PreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 3
	cfg.Estimate = false
	core, logs := observer.New(zap.InfoLevel)
	a, err := New(cfg, WithLogger(zap.New(core)))
	require.NoError(t, err)

	input := []string{"password", "", "Tr0ub4dor&9Xk!", "111", "qwerty", "password"}
	records := a.AnalyzeAll(input)

	require.Len(t, records, len(input))
	for i, pw := range input {
		assert.Equal(t, pw, records[i].Password)
		assert.Equal(t, a.Analyze(pw), records[i])
	}
	assert.Equal(t, 1, logs.FilterMessage("Analyzed batch").Len())
}

func TestAnalyzeAll_Empty(t *testing.T) {
	assert.Empty(t, newDefault(t).AnalyzeAll(nil))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thresholds = [4]float64{40, 30, 60, 80}
	_, err := New(cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)

	cfg = DefaultConfig()
	cfg.SymbolSetSize = 0
	_, err = New(cfg)
	require.ErrorAs(t, err, &cfgErr)

	cfg = DefaultConfig()
	cfg.Penalties[DetectCommonWord] = -5
	_, err = New(cfg)
	require.ErrorAs(t, err, &cfgErr)
}

func TestPackageAnalyze(t *testing.T) {
	assert.Equal(t, types.VeryWeak, Analyze("123456").Strength)
}

func TestAnalyze_LongPasswordWithinBudget(t *testing.T) {
	pw := strings.Repeat("aB3$xq", 700)

	start := time.Now()
	rec := newDefault(t).Analyze(pw)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second)
	assert.Equal(t, utf8.RuneCountInString(pw), rec.Length)
	require.NotNil(t, rec.Estimate)
	assert.True(t, rec.Estimate.Truncated)
}

func TestAnalyze_ShortPasswordNotTruncated(t *testing.T) {
	rec := newDefault(t).Analyze(strings.Repeat("x", MaxEstimateLength))

	require.NotNil(t, rec.Estimate)
	assert.False(t, rec.Estimate.Truncated)
}

func TestEstimate_TruncatesByRune(t *testing.T) {
	long := estimate(strings.Repeat("é", MaxEstimateLength+1))
	prefix := estimate(strings.Repeat("é", MaxEstimateLength))

	assert.True(t, long.Truncated)
	assert.Equal(t, prefix.Entropy, long.Entropy)
}
