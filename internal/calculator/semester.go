package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/gradebook/internal/models"
)

// SubjectInput is a subject exactly as typed into a form. All fields are
// text so that validation can tell a blank field from a bad number.
type SubjectInput struct {
	Code   string `json:"code"`
	Credit string `json:"credit"`
	Grade  string `json:"grade"`
}

// SemesterResult holds the totals and GPA of one calculation.
type SemesterResult struct {
	TotalCredits  float64
	TotalWeighted float64
	GPA           string
}

// subjectFields carries the validation rules for a trimmed SubjectInput.
type subjectFields struct {
	Code   string `validate:"required"`
	Credit string `validate:"required,finite_number"`
	Grade  string `validate:"required,finite_number"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Only fails for an empty tag or nil func.
	_ = v.RegisterValidation("finite_number", func(fl validator.FieldLevel) bool {
		_, ok := parseNumber(fl.Field().String())
		return ok
	})
	return v
}

// parseNumber accepts anything strconv.ParseFloat does (".5", "3.", "1e1")
// except NaN and the infinities.
func parseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Validate checks every subject in order and stops at the first bad one.
// Within a subject, a blank field is reported before a non-numeric one.
// Numbers are anything that parses as a finite float ("3", "-1", ".5", "1e1").
func Validate(inputs []SubjectInput) error {
	for i, in := range inputs {
		fields := subjectFields{
			Code:   strings.TrimSpace(in.Code),
			Credit: strings.TrimSpace(in.Credit),
			Grade:  strings.TrimSpace(in.Grade),
		}
		if err := validate.Struct(fields); err != nil {
			return subjectError(i, err)
		}
	}
	return nil
}

// subjectError converts validator output into a *ValidationError.
func subjectError(index int, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	chosen := fieldErrs[0]
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			chosen = fe
			break
		}
	}

	verr := &ValidationError{
		Entry: "subject",
		Index: index + 1,
		Field: strings.ToLower(chosen.Field()),
		Err:   ErrNotANumber,
	}
	if chosen.Tag() == "required" {
		verr.Err = ErrMissingField
	}
	return verr
}

// ParseSubjects validates inputs and converts them to subject entries.
func ParseSubjects(inputs []SubjectInput) ([]models.SubjectEntry, error) {
	if err := Validate(inputs); err != nil {
		return nil, err
	}

	subjects := make([]models.SubjectEntry, len(inputs))
	for i, in := range inputs {
		// Validate guarantees both parse.
		credit, _ := parseNumber(strings.TrimSpace(in.Credit))
		grade, _ := parseNumber(strings.TrimSpace(in.Grade))
		subjects[i] = models.SubjectEntry{
			Code:   strings.TrimSpace(in.Code),
			Credit: credit,
			Grade:  grade,
		}
	}
	return subjects, nil
}

// CalculateSemester computes the credit-weighted GPA of subjects.
// Algorithm: gpa = Σ(credit × grade) / Σ credit, rounded half up to two
// decimals. With no credits the GPA is ZeroGPA.
func CalculateSemester(subjects []models.SubjectEntry) SemesterResult {
	var result SemesterResult
	for _, s := range subjects {
		result.TotalCredits += s.Credit
		result.TotalWeighted += s.Credit * s.Grade
	}
	result.GPA = weightedAverage(result.TotalWeighted, result.TotalCredits)
	return result
}

// SubjectInputs turns stored entries back into form input, for editing a
// saved semester.
func SubjectInputs(subjects []models.SubjectEntry) []SubjectInput {
	inputs := make([]SubjectInput, len(subjects))
	for i, s := range subjects {
		inputs[i] = SubjectInput{
			Code:   s.Code,
			Credit: strconv.FormatFloat(s.Credit, 'f', -1, 64),
			Grade:  strconv.FormatFloat(s.Grade, 'f', -1, 64),
		}
	}
	return inputs
}
