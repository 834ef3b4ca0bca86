package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/darkforge/internal/patterns"
	"github.com/jonathan/darkforge/internal/transform"
	"github.com/jonathan/darkforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// unbounded is large enough that no test profile is truncated.
const unbounded = 1_000_000

func scenarioProfile() *types.Profile {
	return &types.Profile{
		FirstName: "John",
		LastName:  "Smith",
		BirthYear: types.IntPtr(1985),
		Pet:       types.StringPtr("Buddy"),
	}
}

func richProfile() *types.Profile {
	return &types.Profile{
		FirstName:      "Shivendra",
		LastName:       "Chauhan",
		Nickname:       types.StringPtr("Shivi"),
		BirthDay:       types.IntPtr(3),
		BirthMonth:     types.IntPtr(9),
		BirthYear:      types.IntPtr(2005),
		Father:         types.StringPtr("Rajendra"),
		Mother:         types.StringPtr("Anjali"),
		Pet:            types.StringPtr("Bruno"),
		GamerTag:       types.StringPtr("Ninja"),
		DeviceNames:    []string{"iPhone", "DellLaptop"},
		FavoriteNumber: types.IntPtr(7),
		Instagram:      types.StringPtr("shivendra_ig"),
		GitHub:         types.StringPtr("shivendra_github"),
	}
}

func countOf(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}

func TestGenerate_Scenario(t *testing.T) {
	result, err := New(WithLogger(zaptest.NewLogger(t))).Generate(scenarioProfile(), 0, 0)
	require.NoError(t, err)

	for _, want := range []string{"John1985", "Buddy1985", "JohnSmith1985"} {
		assert.Equal(t, 1, countOf(result.Candidates, want), "expected %s exactly once", want)
	}
	assert.Equal(t, DefaultTargetMin, result.TargetMin)
	assert.Equal(t, DefaultTargetMax, result.TargetMax)
}

func TestGenerate_Deterministic(t *testing.T) {
	g := New(WithCurrentYear(2025))

	first, err := g.Generate(richProfile(), 0, 0)
	require.NoError(t, err)
	second, err := g.Generate(richProfile(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Candidates, second.Candidates)
}

func TestGenerate_Unique(t *testing.T) {
	result, err := New(WithCurrentYear(2025)).Generate(richProfile(), 1, unbounded)
	require.NoError(t, err)

	seen := make(map[string]bool, len(result.Candidates))
	for _, c := range result.Candidates {
		require.False(t, seen[c], "duplicate candidate %q", c)
		seen[c] = true
	}
}

func TestGenerate_NoEmptyCandidates(t *testing.T) {
	result, err := Generate(richProfile(), 1, unbounded)
	require.NoError(t, err)
	for _, c := range result.Candidates {
		assert.NotEmpty(t, c)
	}
}

func TestGenerate_ConditionalApplicability(t *testing.T) {
	withPet := scenarioProfile()
	withoutPet := scenarioProfile()
	withoutPet.Pet = nil

	g := New()
	resWith, err := g.Generate(withPet, 1, unbounded)
	require.NoError(t, err)
	resWithout, err := g.Generate(withoutPet, 1, unbounded)
	require.NoError(t, err)

	for _, c := range resWithout.Candidates {
		lower := strings.ToLower(c)
		assert.NotContains(t, lower, "buddy")
		assert.NotContains(t, lower, "yddub")
	}

	withSet := make(map[string]bool, len(resWith.Candidates))
	for _, c := range resWith.Candidates {
		withSet[c] = true
	}
	for _, c := range resWithout.Candidates {
		assert.True(t, withSet[c], "adding a field must not remove %q", c)
	}

	var petCandidates int
	for _, c := range resWith.Candidates {
		if strings.Contains(strings.ToLower(c), "buddy") {
			petCandidates++
		}
	}
	assert.Greater(t, petCandidates, 0)
	assert.Greater(t, resWith.TemplatesApplied, resWithout.TemplatesApplied)
}

func TestGenerate_MissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.Profile
	}{
		{"no first name", &types.Profile{LastName: "Smith"}},
		{"no last name", &types.Profile{FirstName: "John"}},
		{"no names", &types.Profile{BirthYear: types.IntPtr(1985)}},
		{"nil profile", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.profile, 0, 0)
			assert.Nil(t, result)
			var invalid *types.InvalidProfileError
			assert.True(t, errors.As(err, &invalid), "expected InvalidProfileError, got %v", err)
		})
	}
}

func TestGenerate_NamesOnly(t *testing.T) {
	result, err := Generate(&types.Profile{FirstName: "John", LastName: "Smith"}, 0, 0)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Candidates)
	assert.Contains(t, result.Candidates, "JohnSmith")
	assert.True(t, result.LowYield)
	assert.False(t, result.Truncated)
}

func TestGenerate_Truncation(t *testing.T) {
	g := New()
	full, err := g.Generate(richProfile(), 1, unbounded)
	require.NoError(t, err)
	require.Greater(t, len(full.Candidates), 50)

	capped, err := g.Generate(richProfile(), 1, 50)
	require.NoError(t, err)

	assert.Len(t, capped.Candidates, 50)
	assert.True(t, capped.Truncated)
	assert.Equal(t, full.Candidates[:50], capped.Candidates, "truncation keeps the earliest candidates")
}

func TestGenerate_LowYieldIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := New(WithLogger(zap.New(core)))

	result, err := g.Generate(scenarioProfile(), unbounded-1, unbounded)
	require.NoError(t, err)

	assert.True(t, result.LowYield)
	assert.Equal(t, 1, logs.FilterMessage("Generated fewer candidates than requested").Len())
}

func TestGenerate_InvalidTarget(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"min above max", 10, 5},
		{"negative min", -1, 5},
		{"negative max", 1, -5},
		{"max above limit", 1, MaxTarget + 1},
		{"huge max", 1, 1 << 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(scenarioProfile(), tt.min, tt.max)
			assert.ErrorIs(t, err, ErrInvalidTarget)
		})
	}
}

func TestGenerate_HugeTargetDoesNotPanic(t *testing.T) {
	p := &types.Profile{FirstName: "John", LastName: "Smith"}
	assert.NotPanics(t, func() {
		_, err := New().Generate(p, 1, 1<<62)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

func TestGenerate_MaxTargetAccepted(t *testing.T) {
	result, err := New().Generate(scenarioProfile(), 1, MaxTarget)
	require.NoError(t, err)
	assert.Equal(t, MaxTarget, result.TargetMax)
	assert.False(t, result.Truncated)
}

func TestGenerate_CurrentYearSuffix(t *testing.T) {
	withYear, err := New(WithCurrentYear(2025)).Generate(scenarioProfile(), 1, unbounded)
	require.NoError(t, err)
	assert.Contains(t, withYear.Candidates, "John19852025")

	withoutYear, err := New().Generate(scenarioProfile(), 1, unbounded)
	require.NoError(t, err)
	assert.NotContains(t, withoutYear.Candidates, "John19852025")
}

func TestGenerate_CustomTablesExtendWithoutCodeChanges(t *testing.T) {
	lib := patterns.NewLibrary(patterns.T(patterns.F(types.FieldPet), patterns.Lit("<3")))
	rules := []transform.Rule{transform.NewRule("shout", func(b string) []string { return []string{b + "!!!"} })}

	result, err := New(WithLibrary(lib), WithRules(rules)).Generate(scenarioProfile(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buddy<3", "Buddy<3!!!"}, result.Candidates)
	assert.Equal(t, 1, result.TemplatesApplied)
}

func TestGenerate_SkippedTemplatesCounted(t *testing.T) {
	result, err := Generate(scenarioProfile(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, patterns.Default().Len(), result.TemplatesApplied+result.TemplatesSkipped)
}
