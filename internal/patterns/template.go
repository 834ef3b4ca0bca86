// Package patterns holds the library of password-construction templates.
package patterns

import (
	"strconv"
	"strings"

	"github.com/jonathan/darkforge/internal/types"
)

// SlotKind distinguishes the three kinds of template slot.
type SlotKind int

// Slot kinds
const (
	SlotLiteral SlotKind = iota
	SlotField
	SlotDerived
)

// Derivation names a transformation of a field value used by a derived slot.
type Derivation string

// Supported derivations
const (
	DeriveInitial Derivation = "initial"
	DeriveReverse Derivation = "rev"
	DerivePrefix  Derivation = "prefix"
	DeriveSuffix  Derivation = "suffix"
	DerivePad2    Derivation = "pad2"
	DeriveYear2   Derivation = "year2"
)

// Slot is one position of a template.
type Slot struct {
	Kind   SlotKind
	Text   string
	Field  types.Field
	Derive Derivation
	N      int
}

// Lit is a literal slot.
func Lit(text string) Slot {
	return Slot{Kind: SlotLiteral, Text: text}
}

// F references a profile field.
func F(f types.Field) Slot {
	return Slot{Kind: SlotField, Field: f}
}

// Initial references the first character of a field.
func Initial(f types.Field) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DeriveInitial}
}

// Rev references a field reversed.
func Rev(f types.Field) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DeriveReverse}
}

// Prefix references the first n characters of a field.
func Prefix(f types.Field, n int) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DerivePrefix, N: n}
}

// Suffix references the last n characters of a field.
func Suffix(f types.Field, n int) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DeriveSuffix, N: n}
}

// Pad2 references a numeric field zero-padded to two digits.
func Pad2(f types.Field) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DerivePad2}
}

// Year2 references the last two digits of a year field.
func Year2(f types.Field) Slot {
	return Slot{Kind: SlotDerived, Field: f, Derive: DeriveYear2}
}

// resolve returns the values the slot can take for a profile.
// A nil result means the slot references an absent field.
func (s Slot) resolve(p *types.Profile) []string {
	if s.Kind == SlotLiteral {
		return []string{s.Text}
	}

	values := p.Values(s.Field)
	if s.Kind == SlotField || len(values) == 0 {
		return values
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if d := s.derive(v); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func (s Slot) derive(v string) string {
	r := []rune(v)
	switch s.Derive {
	case DeriveInitial:
		return string(r[:1])
	case DeriveReverse:
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	case DerivePrefix:
		if s.N < len(r) {
			return string(r[:s.N])
		}
		return v
	case DeriveSuffix:
		if s.N < len(r) {
			return string(r[len(r)-s.N:])
		}
		return v
	case DerivePad2:
		if len(r) == 1 {
			return "0" + v
		}
		return v
	case DeriveYear2:
		if len(r) > 2 {
			return string(r[len(r)-2:])
		}
		return v
	}
	return ""
}

func (s Slot) String() string {
	switch s.Kind {
	case SlotLiteral:
		return s.Text
	case SlotField:
		return "{" + string(s.Field) + "}"
	}
	if s.Derive == DerivePrefix || s.Derive == DeriveSuffix {
		return "{" + string(s.Field) + ":" + string(s.Derive) + strconv.Itoa(s.N) + "}"
	}
	return "{" + string(s.Field) + ":" + string(s.Derive) + "}"
}

// Template is an ordered sequence of slots describing one
// password-construction idiom.
type Template struct {
	Slots []Slot
}

// T builds a template from slots.
func T(slots ...Slot) Template {
	return Template{Slots: slots}
}

// Fields returns the profile fields the template needs, in slot order, without repeats.
func (t Template) Fields() []types.Field {
	seen := make(map[types.Field]bool)
	var fields []types.Field
	for _, s := range t.Slots {
		if s.Kind == SlotLiteral || seen[s.Field] {
			continue
		}
		seen[s.Field] = true
		fields = append(fields, s.Field)
	}
	return fields
}

// ApplicableTo reports whether every field the template needs is present.
func (t Template) ApplicableTo(present types.FieldSet) bool {
	for _, f := range t.Fields() {
		if !present.Has(f) {
			return false
		}
	}
	return true
}

// Render substitutes the profile into the template. Multi-valued fields
// expand as a cartesian product in slot order. An inapplicable template
// renders nothing.
func (t Template) Render(p *types.Profile) []string {
	results := []string{""}
	for _, s := range t.Slots {
		values := s.resolve(p)
		if len(values) == 0 {
			return nil
		}
		next := make([]string, 0, len(results)*len(values))
		for _, prefix := range results {
			for _, v := range values {
				next = append(next, prefix+v)
			}
		}
		results = next
	}
	return results
}

// String renders the template as a {field} pattern.
func (t Template) String() string {
	var sb strings.Builder
	for _, s := range t.Slots {
		sb.WriteString(s.String())
	}
	return sb.String()
}
