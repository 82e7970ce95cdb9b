package models

// DefaultSemesterName is used when a new semester is saved without a name.
const DefaultSemesterName = "Unnamed Semester"

// SemesterRecord is the persisted result of one GPA calculation.
// Records live in a most-recent-first list under a single store key.
type SemesterRecord struct {
	// ID is unique within the semester history and derived from the
	// creation time (Unix milliseconds as decimal digits).
	ID string `json:"id"`

	// Name is the display name (e.g., "Fall 2025").
	Name string `json:"name"`

	// GPA is the rounded result with exactly two decimals (e.g., "3.71").
	// It is "0.00" when TotalCredits is zero.
	GPA string `json:"gpa"`

	// Subjects are the entries the GPA was calculated from, kept so the
	// record can be edited later.
	Subjects []SubjectEntry `json:"subjects"`

	// TotalCredits is the sum of all subject credits.
	TotalCredits float64 `json:"totalCredits"`

	// TotalWeighted is the sum of credit × grade over all subjects.
	TotalWeighted float64 `json:"totalWeighted"`

	// Date is a display timestamp of the last calculation.
	Date string `json:"date"`
}

// RecordID returns the record's ID.
func (r SemesterRecord) RecordID() string { return r.ID }
