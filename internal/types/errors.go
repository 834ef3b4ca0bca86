//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// ProfileFieldError describes one invalid profile field.
type ProfileFieldError struct {
	Field   Field
	Message string
}

// InvalidProfileError is returned when a profile is missing mandatory
// fields or carries values of the wrong type or range.
type InvalidProfileError struct {
	Message string
	Fields  []ProfileFieldError
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid profile: ")
	sb.WriteString(e.Message)
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
		}
		sb.WriteString(" (")
		sb.WriteString(strings.Join(parts, "; "))
		sb.WriteString(")")
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

// HasField reports whether the error names the given field.
func (e *InvalidProfileError) HasField(f Field) bool {
	for _, fe := range e.Fields {
		if fe.Field == f {
			return true
		}
	}
	return false
}
