// Package generator expands the template library against a profile into
// an ordered, deduplicated list of candidate passwords.
package generator

import (
	"errors"
	"fmt"

	"github.com/jonathan/darkforge/internal/patterns"
	"github.com/jonathan/darkforge/internal/transform"
	"github.com/jonathan/darkforge/internal/types"
	"go.uber.org/zap"
)

// Default output volume
const (
	DefaultTargetMin = 2000
	DefaultTargetMax = 4000
	// MaxTarget is the largest accepted targetMax.
	MaxTarget = 1_000_000
)

// ErrInvalidTarget is returned when the requested volume range is inverted,
// negative or above MaxTarget.
var ErrInvalidTarget = errors.New("invalid target range")

// Generator turns profiles into candidate lists. It holds only read-only
// tables and is safe for concurrent use.
type Generator struct {
	library *patterns.Library
	rules   []transform.Rule
	year    int
	logger  *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLibrary replaces the template library.
func WithLibrary(lib *patterns.Library) Option {
	return func(g *Generator) { g.library = lib }
}

// WithRules replaces the transformation rules.
func WithRules(rules []transform.Rule) Option {
	return func(g *Generator) { g.rules = rules }
}

// WithCurrentYear sets the year used by the default year-suffix rule.
// Ignored when WithRules is given.
func WithCurrentYear(year int) Option {
	return func(g *Generator) { g.year = year }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New creates a Generator with the default library and rules.
func New(opts ...Option) *Generator {
	g := &Generator{
		library: patterns.Default(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rules == nil {
		g.rules = transform.DefaultRules(g.year)
	}
	return g
}

// Generate expands every applicable template, applies the transformation
// rules, removes duplicates keeping first-seen order, and truncates to
// targetMax. Zero targets fall back to the defaults. Falling short of
// targetMin is reported on the result, not as an error.
func (g *Generator) Generate(profile *types.Profile, targetMin, targetMax int) (*types.GenerationResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if targetMin == 0 {
		targetMin = DefaultTargetMin
	}
	if targetMax == 0 {
		targetMax = DefaultTargetMax
	}
	if targetMin < 0 || targetMax < 0 || targetMin > targetMax || targetMax > MaxTarget {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrInvalidTarget, targetMin, targetMax)
	}

	result := &types.GenerationResult{
		TargetMin: targetMin,
		TargetMax: targetMax,
	}

	present := profile.Present()
	seen := make(map[string]struct{})
	candidates := make([]string, 0, min(targetMax, DefaultTargetMax))

	for _, tmpl := range g.library.Templates() {
		if !tmpl.ApplicableTo(present) {
			result.TemplatesSkipped++
			continue
		}
		result.TemplatesApplied++

		for _, base := range tmpl.Render(profile) {
			for _, candidate := range transform.Expand(base, g.rules) {
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				candidates = append(candidates, candidate)
			}
		}
	}

	if len(candidates) > targetMax {
		candidates = candidates[:targetMax]
		result.Truncated = true
	}
	result.Candidates = candidates

	if len(candidates) < targetMin {
		result.LowYield = true
		g.logger.Warn("Generated fewer candidates than requested",
			zap.Int("count", len(candidates)),
			zap.Int("target_min", targetMin),
			zap.Int("templates_applied", result.TemplatesApplied))
	}

	g.logger.Debug("Generation complete",
		zap.Int("count", len(candidates)),
		zap.Int("templates_applied", result.TemplatesApplied),
		zap.Int("templates_skipped", result.TemplatesSkipped),
		zap.Bool("truncated", result.Truncated))

	return result, nil
}

// Generate runs the default generator.
func Generate(profile *types.Profile, targetMin, targetMax int) (*types.GenerationResult, error) {
	return New().Generate(profile, targetMin, targetMax)
}
