package analyzer

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/darkforge/internal/types"
)

// Default classification thresholds in bits, for Weak, Moderate, Strong and Very Strong.
var DefaultThresholds = [4]float64{28, 36, 60, 80}

// DefaultPenalty applies to any matched detector without an explicit penalty.
const DefaultPenalty = 10.0

// DefaultPenalties returns the per-detector entropy penalties in bits.
func DefaultPenalties() map[string]float64 {
	return map[string]float64{
		DetectAllDigits:        15,
		DetectAllLowercase:     10,
		DetectSequentialDigits: 10,
		DetectRepeated:         10,
		DetectKeyboard:         15,
		DetectCommonWord:       30,
		DetectDateLike:         10,
	}
}

// ScoreCeiling is the adjusted entropy that maps to a score of 100.
const ScoreCeiling = 100.0

// Config tunes classification.
type Config struct {
	Thresholds    [4]float64         `json:"thresholds" mapstructure:"thresholds" validate:"dive,gte=0"`
	Penalties     map[string]float64 `json:"penalties" mapstructure:"penalties" validate:"dive,gte=0"`
	SymbolSetSize int                `json:"symbol_set_size" mapstructure:"symbol_set_size" validate:"gt=0"`
	Workers       int                `json:"workers" mapstructure:"workers" validate:"gte=0"`
	PatternsOnly  bool               `json:"patterns_only" mapstructure:"patterns_only"`
	Estimate      bool               `json:"estimate" mapstructure:"estimate"`
}

// DefaultConfig returns the stock classification settings with the zxcvbn estimate enabled.
func DefaultConfig() Config {
	return Config{
		Thresholds:    DefaultThresholds,
		Penalties:     DefaultPenalties(),
		SymbolSetSize: DefaultSymbolSetSize,
		Estimate:      true,
	}
}

// ConfigError reports an unusable analyzer configuration.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validate checks field ranges and that thresholds ascend strictly.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigError{Message: "invalid analyzer config", Cause: err}
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] <= c.Thresholds[i-1] {
			return &ConfigError{
				Message: fmt.Sprintf("thresholds must ascend: %v", c.Thresholds),
			}
		}
	}
	return nil
}

func (c Config) penalty(detector string) float64 {
	if p, ok := c.Penalties[detector]; ok {
		return p
	}
	return DefaultPenalty
}

// Adjust subtracts the penalty of every matched detector, clamping at zero.
func (c Config) Adjust(entropy float64, patterns []string) float64 {
	adjusted := entropy
	for _, name := range patterns {
		adjusted -= c.penalty(name)
	}
	return math.Max(adjusted, 0)
}

// Classify maps adjusted entropy onto the strength scale.
func (c Config) Classify(adjusted float64) types.Strength {
	strength := types.VeryWeak
	for i, threshold := range c.Thresholds {
		if adjusted >= threshold {
			strength = types.Strengths[i+1]
		}
	}
	return strength
}

// Score maps adjusted entropy onto 0–100.
func Score(adjusted float64) int {
	if adjusted <= 0 {
		return 0
	}
	return int(math.Round(math.Min(adjusted, ScoreCeiling) / ScoreCeiling * 100))
}
