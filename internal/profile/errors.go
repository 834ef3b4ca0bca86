// Package profile loads, collects and saves target profiles.
package profile

import (
	"errors"
	"fmt"
)

// ErrInputClosed is returned when interactive input ends before every
// required field was answered.
var ErrInputClosed = errors.New("input closed before profile was complete")

// LoadError represents an error during file I/O or document parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
