//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// Strength is a position on the ordered strength scale.
type Strength int

// Strength levels, weakest first.
const (
	VeryWeak Strength = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// Strengths lists every level in ascending order.
var Strengths = []Strength{VeryWeak, Weak, Moderate, Strong, VeryStrong}

var strengthNames = map[Strength]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Moderate:   "Moderate",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

func (s Strength) String() string {
	if name, ok := strengthNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON encodes the strength as its display name.
func (s Strength) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a display name back into a Strength.
func (s *Strength) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseStrength(name)
	if !ok {
		return fmt.Errorf("unknown strength %q", name)
	}
	*s = parsed
	return nil
}

// ParseStrength resolves a display name to a Strength.
func ParseStrength(name string) (Strength, bool) {
	for s, n := range strengthNames {
		if n == name {
			return s, true
		}
	}
	return VeryWeak, false
}

// Composition tallies character classes in a password.
type Composition struct {
	Lower  int `json:"lower"`
	Upper  int `json:"upper"`
	Digit  int `json:"digit"`
	Symbol int `json:"symbol"`
}

// HasLower reports whether any lowercase letter is present.
func (c Composition) HasLower() bool { return c.Lower > 0 }

// HasUpper reports whether any uppercase letter is present.
func (c Composition) HasUpper() bool { return c.Upper > 0 }

// HasDigit reports whether any digit is present.
func (c Composition) HasDigit() bool { return c.Digit > 0 }

// HasSymbol reports whether any symbol is present.
func (c Composition) HasSymbol() bool { return c.Symbol > 0 }

// Estimate is an advisory second opinion on a password. It never
// influences Strength.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
	// Truncated is set when only a prefix of the password was estimated.
	Truncated bool `json:"truncated,omitempty"`
}

// AnalysisRecord is the strength analysis of one password.
type AnalysisRecord struct {
	Password        string      `json:"password"`
	Length          int         `json:"length"`
	Composition     Composition `json:"composition"`
	AlphabetSize    int         `json:"alphabet_size"`
	Entropy         float64     `json:"entropy"`
	AdjustedEntropy float64     `json:"adjusted_entropy"`
	Patterns        []string    `json:"patterns"`
	Strength        Strength    `json:"strength"`
	Score           int         `json:"score"`
	Estimate        *Estimate   `json:"estimate,omitempty"`
}

// HasPattern reports whether the named detector matched.
func (r *AnalysisRecord) HasPattern(name string) bool {
	for _, p := range r.Patterns {
		if p == name {
			return true
		}
	}
	return false
}

// GenerationResult is the output of one generator run.
type GenerationResult struct {
	Candidates       []string `json:"candidates"`
	LowYield         bool     `json:"low_yield"`
	Truncated        bool     `json:"truncated"`
	TemplatesApplied int      `json:"templates_applied"`
	TemplatesSkipped int      `json:"templates_skipped"`
	TargetMin        int      `json:"target_min"`
	TargetMax        int      `json:"target_max"`
}
