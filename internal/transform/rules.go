// Package transform provides the rules that turn one base password into
// the decorated variants people actually type.
package transform

import (
	"strconv"
	"strings"
	"unicode"
)

// Rule maps a base string to zero or more variants.
type Rule interface {
	Name() string
	Apply(base string) []string
}

type ruleFunc struct {
	name string
	fn   func(string) []string
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Apply(base string) []string {
	if base == "" {
		return nil
	}
	return r.fn(base)
}

// NewRule wraps a function as a named Rule.
func NewRule(name string, fn func(string) []string) Rule {
	return ruleFunc{name: name, fn: fn}
}

// Decorations appended or prepended by the default rules.
var (
	NumericSuffixes  = []string{"1", "12", "123", "1234", "007"}
	SymbolSuffixes   = []string{"!", "@", "#", "$", "!!"}
	NumericPrefixes  = []string{"123", "1"}
	SymbolPrefixes   = []string{"!"}
	CapitalSuffixes  = []string{"1", "123", "!", "123!"}
	leetReplacements = strings.NewReplacer(
		"a", "4", "A", "4",
		"e", "3", "E", "3",
		"i", "1", "I", "1",
		"o", "0", "O", "0",
		"s", "5", "S", "5",
	)
)

// Capitalize upper-cases the first rune and leaves the rest alone.
func Capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Leet applies a↔4 e↔3 i↔1 o↔0 s↔5 substitution.
func Leet(s string) string {
	return leetReplacements.Replace(s)
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// AlternatingCase upper-cases even positions and lower-cases odd ones.
func AlternatingCase(s string) string {
	r := []rune(s)
	for i := range r {
		if i%2 == 0 {
			r[i] = unicode.ToUpper(r[i])
		} else {
			r[i] = unicode.ToLower(r[i])
		}
	}
	return string(r)
}

func changed(base, variant string) []string {
	if variant == base {
		return nil
	}
	return []string{variant}
}

func suffixed(base string, suffixes []string) []string {
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, base+s)
	}
	return out
}

func prefixed(base string, prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, p+base)
	}
	return out
}

// YearSuffix appends the given year. A zero year yields no variants so
// callers that need reproducible output can leave it unset.
func YearSuffix(year int) Rule {
	return NewRule("year-suffix", func(base string) []string {
		if year <= 0 {
			return nil
		}
		return []string{base + strconv.Itoa(year)}
	})
}

// DefaultRules returns the ordered default rule table. currentYear feeds
// the year-suffix rule.
func DefaultRules(currentYear int) []Rule {
	return []Rule{
		NewRule("capitalize", func(b string) []string { return changed(b, Capitalize(b)) }),
		NewRule("lowercase", func(b string) []string { return changed(b, strings.ToLower(b)) }),
		NewRule("uppercase", func(b string) []string { return changed(b, strings.ToUpper(b)) }),
		NewRule("leetspeak", func(b string) []string { return changed(b, Leet(b)) }),
		NewRule("numeric-suffix", func(b string) []string { return suffixed(b, NumericSuffixes) }),
		NewRule("symbol-suffix", func(b string) []string { return suffixed(b, SymbolSuffixes) }),
		NewRule("numeric-prefix", func(b string) []string { return prefixed(b, NumericPrefixes) }),
		NewRule("symbol-prefix", func(b string) []string { return prefixed(b, SymbolPrefixes) }),
		YearSuffix(currentYear),
		NewRule("reverse", func(b string) []string { return changed(b, Reverse(b)) }),
		NewRule("alternating-case", func(b string) []string { return changed(b, AlternatingCase(b)) }),
		NewRule("capitalize-suffix", func(b string) []string { return suffixed(Capitalize(b), CapitalSuffixes) }),
	}
}

// Expand returns base followed by every rule's variants, in rule order,
// with empties and repeats removed.
func Expand(base string, rules []Rule) []string {
	if base == "" {
		return nil
	}
	seen := map[string]struct{}{base: {}}
	out := []string{base}
	for _, rule := range rules {
		for _, v := range rule.Apply(base) {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Names returns the rule names in order.
func Names(rules []Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name()
	}
	return names
}
