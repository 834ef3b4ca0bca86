package analyzer

import (
	"runtime"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/darkforge/internal/types"
)

// MaxEstimateLength is the number of leading runes passed to the zxcvbn
// estimator. Its dictionary matcher grows faster than linearly with length.
const MaxEstimateLength = 100

// Analyzer evaluates password strength. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	cfg       Config
	detectors []Detector
	logger    *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDetectors replaces the detector table.
func WithDetectors(detectors []Detector) Option {
	return func(a *Analyzer) {
		a.detectors = append([]Detector(nil), detectors...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New builds an Analyzer after validating cfg.
func New(cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{
		cfg:       cfg,
		detectors: DefaultDetectors(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Detectors returns the names of the configured detectors in evaluation order.
func (a *Analyzer) Detectors() []string {
	names := make([]string, len(a.detectors))
	for i, d := range a.detectors {
		names[i] = d.Name()
	}
	return names
}

// Detect runs every detector and returns the names that matched, in table order.
func (a *Analyzer) Detect(password string) []string {
	matched := []string{}
	for _, d := range a.detectors {
		if d.Match(password) {
			matched = append(matched, d.Name())
		}
	}
	return matched
}

// Analyze evaluates a single password.
func (a *Analyzer) Analyze(password string) types.AnalysisRecord {
	comp := Compose(password)
	rec := types.AnalysisRecord{
		Password:    password,
		Length:      utf8.RuneCountInString(password),
		Composition: comp,
		Patterns:    a.Detect(password),
		Strength:    types.VeryWeak,
	}
	if a.cfg.PatternsOnly {
		return rec
	}

	rec.AlphabetSize = AlphabetSize(comp, a.cfg.SymbolSetSize)
	rec.Entropy = Entropy(rec.Length, rec.AlphabetSize)
	rec.AdjustedEntropy = a.cfg.Adjust(rec.Entropy, rec.Patterns)
	rec.Strength = a.cfg.Classify(rec.AdjustedEntropy)
	rec.Score = Score(rec.AdjustedEntropy)

	if a.cfg.Estimate && password != "" {
		rec.Estimate = estimate(password)
	}

	a.logger.Debug("Analyzed password",
		zap.Int("length", rec.Length),
		zap.Float64("entropy", rec.Entropy),
		zap.Float64("adjusted_entropy", rec.AdjustedEntropy),
		zap.Strings("patterns", rec.Patterns),
		zap.Stringer("strength", rec.Strength),
	)
	return rec
}

func estimate(password string) *types.Estimate {
	input, truncated := password, false
	if utf8.RuneCountInString(password) > MaxEstimateLength {
		input, truncated = string([]rune(password)[:MaxEstimateLength]), true
	}
	m := zxcvbn.PasswordStrength(input, nil)
	return &types.Estimate{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
		Truncated: truncated,
	}
}

// AnalyzeAll evaluates passwords in parallel. Records are returned in input order.
func (a *Analyzer) AnalyzeAll(passwords []string) []types.AnalysisRecord {
	records := make([]types.AnalysisRecord, len(passwords))
	workers := a.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, pw := range passwords {
		g.Go(func() error {
			records[i] = a.Analyze(pw)
			return nil
		})
	}
	_ = g.Wait()

	a.logger.Info("Analyzed batch",
		zap.Int("count", len(records)),
		zap.Int("workers", workers),
	)
	return records
}

// Analyze evaluates password with the default configuration.
func Analyze(password string) types.AnalysisRecord {
	a, _ := New(DefaultConfig())
	return a.Analyze(password)
}
