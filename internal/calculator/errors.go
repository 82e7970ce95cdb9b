package calculator

import (
	"errors"
	"fmt"
)

// Validation failures. Callers match them with errors.Is; the concrete
// error is a *ValidationError naming the offending entry.
var (
	ErrMissingField = errors.New("missing field")
	ErrNotANumber   = errors.New("must be a number")
)

// Selection failures returned by CalculateOverall and AverageGPA.
var (
	ErrEmptySelection = errors.New("at least one semester must be selected")
	ErrMissingName    = errors.New("name is required")
	ErrNoCredits      = errors.New("selected semesters carry no credits")
)

// ValidationError reports which entry and field failed validation.
type ValidationError struct {
	// Entry is what was being validated ("subject" or "semester").
	Entry string

	// Index is the 1-based position of the entry in its list.
	Index int

	// Field is the failing field ("code", "credit", "grade" or "gpa").
	Field string

	// Err is ErrMissingField or ErrNotANumber.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %s: %v", e.Entry, e.Index, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
