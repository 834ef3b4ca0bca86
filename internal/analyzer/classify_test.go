package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/darkforge/internal/types"
)

func TestClassify_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		bits float64
		want types.Strength
	}{
		{0, types.VeryWeak},
		{27.99, types.VeryWeak},
		{28, types.Weak},
		{35.9, types.Weak},
		{36, types.Moderate},
		{60, types.Strong},
		{79.9, types.Strong},
		{80, types.VeryStrong},
		{500, types.VeryStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Classify(tt.bits), "bits=%v", tt.bits)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := types.VeryWeak
	for bits := 0.0; bits <= 120; bits += 0.5 {
		got := cfg.Classify(bits)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestAdjust(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 50.0, cfg.Adjust(50, nil))
	assert.Equal(t, 20.0, cfg.Adjust(50, []string{DetectCommonWord}))
	assert.Equal(t, 0.0, cfg.Adjust(20, []string{DetectCommonWord, DetectAllDigits}))
	assert.Equal(t, 40.0, cfg.Adjust(50, []string{"custom"}))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(0))
	assert.Equal(t, 0, Score(-3))
	assert.Equal(t, 50, Score(50))
	assert.Equal(t, 100, Score(250))
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(0, 26))
	assert.Equal(t, 0.0, Entropy(5, 0))
	assert.InDelta(t, 10*3.321928, Entropy(10, 10), 1e-5)
}

func TestCompose(t *testing.T) {
	assert.Equal(t, types.Composition{Lower: 2, Upper: 1, Digit: 2, Symbol: 2}, Compose("Ab12c! "))
	assert.Equal(t, types.Composition{Lower: 1, Symbol: 1}, Compose("aé"))
	assert.Equal(t, 26+10+DefaultSymbolSetSize, AlphabetSize(Compose("a1!"), DefaultSymbolSetSize))
}
