// Package validate provides the boundary error type shared by the
// valuation calculators. The calculators are pure functions; their
// only failure mode is an input that makes a calculation undefined.
package validate

import (
	"fmt"
	"strings"
)

// ValidationError names the input fields that make a calculation
// undefined (zero divisors, non-positive areas, and the like).
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// NewError builds a ValidationError for the given field names.
func NewError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
