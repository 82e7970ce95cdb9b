package calculator

import "strings"

// AverageGPA returns the unweighted mean of semester GPAs typed in
// directly, for students who only know their per-semester results.
// Every value must be a number; an empty list fails with ErrEmptySelection.
func AverageGPA(values []string) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptySelection
	}

	var sum float64
	for i, raw := range values {
		text := strings.TrimSpace(raw)
		verr := &ValidationError{Entry: "semester", Index: i + 1, Field: "gpa"}
		if text == "" {
			verr.Err = ErrMissingField
			return "", verr
		}
		if err := validate.Var(text, "finite_number"); err != nil {
			verr.Err = ErrNotANumber
			return "", verr
		}
		v, _ := parseNumber(text)
		sum += v
	}
	return FormatGPA(Round2(sum / float64(len(values)))), nil
}
