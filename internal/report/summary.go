// Package report aggregates analysis records and renders them for the terminal.
package report

import (
	"sort"

	"github.com/jonathan/darkforge/internal/types"
)

// StrengthCount is the number of records at one strength level.
type StrengthCount struct {
	Strength types.Strength `json:"strength"`
	Count    int            `json:"count"`
}

// PatternCount is how often a detector matched across a batch.
type PatternCount struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

// Summary aggregates a batch of analysis records.
type Summary struct {
	Total       int             `json:"total"`
	ByStrength  []StrengthCount `json:"by_strength"`
	Patterns    []PatternCount  `json:"patterns"`
	MeanEntropy float64         `json:"mean_entropy"`
	Weakest     string          `json:"weakest,omitempty"`
	Strongest   string          `json:"strongest,omitempty"`
}

// Count returns the number of records classified at s.
func (s Summary) Count(strength types.Strength) int {
	for _, sc := range s.ByStrength {
		if sc.Strength == strength {
			return sc.Count
		}
	}
	return 0
}

// Summarize aggregates records. Every strength level appears in ByStrength,
// weakest first; Patterns is sorted by count descending then name.
func Summarize(records []types.AnalysisRecord) Summary {
	s := Summary{
		Total:      len(records),
		ByStrength: make([]StrengthCount, len(types.Strengths)),
		Patterns:   []PatternCount{},
	}
	for i, level := range types.Strengths {
		s.ByStrength[i] = StrengthCount{Strength: level}
	}
	if len(records) == 0 {
		return s
	}

	patterns := make(map[string]int)
	var total float64
	weakest, strongest := 0, 0
	for i, rec := range records {
		s.ByStrength[rec.Strength].Count++
		total += rec.Entropy
		for _, p := range rec.Patterns {
			patterns[p]++
		}
		if rec.AdjustedEntropy < records[weakest].AdjustedEntropy {
			weakest = i
		}
		if rec.AdjustedEntropy > records[strongest].AdjustedEntropy {
			strongest = i
		}
	}

	for name, count := range patterns {
		s.Patterns = append(s.Patterns, PatternCount{Pattern: name, Count: count})
	}
	sort.Slice(s.Patterns, func(i, j int) bool {
		if s.Patterns[i].Count != s.Patterns[j].Count {
			return s.Patterns[i].Count > s.Patterns[j].Count
		}
		return s.Patterns[i].Pattern < s.Patterns[j].Pattern
	})

	s.MeanEntropy = total / float64(len(records))
	s.Weakest = records[weakest].Password
	s.Strongest = records[strongest].Password
	return s
}
