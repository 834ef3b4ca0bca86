package patterns

import "github.com/jonathan/darkforge/internal/types"

// Library is an ordered, read-only collection of templates. Earlier
// templates are more likely in practice and survive truncation first.
type Library struct {
	templates []Template
}

// NewLibrary creates a library holding the given templates in order.
func NewLibrary(templates ...Template) *Library {
	cp := make([]Template, len(templates))
	copy(cp, templates)
	return &Library{templates: cp}
}

// Default returns the built-in template library.
func Default() *Library {
	return NewLibrary(defaultTemplates...)
}

// Extend returns a new library with extra templates appended.
func (l *Library) Extend(templates ...Template) *Library {
	all := make([]Template, 0, len(l.templates)+len(templates))
	all = append(all, l.templates...)
	all = append(all, templates...)
	return &Library{templates: all}
}

// Templates returns a copy of every template in order.
func (l *Library) Templates() []Template {
	cp := make([]Template, len(l.templates))
	copy(cp, l.templates)
	return cp
}

// Len returns the number of templates.
func (l *Library) Len() int {
	return len(l.templates)
}

// Applicable returns, in library order, the templates whose fields are all present.
func (l *Library) Applicable(present types.FieldSet) []Template {
	var out []Template
	for _, t := range l.templates {
		if t.ApplicableTo(present) {
			out = append(out, t)
		}
	}
	return out
}
