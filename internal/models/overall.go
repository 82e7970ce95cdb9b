package models

// OverallRecord is the persisted result of aggregating several semesters
// into an OGPA.
type OverallRecord struct {
	// ID is unique within the overall history (Unix milliseconds as digits).
	ID string `json:"id"`

	// Name is the display name given by the student. Never blank.
	Name string `json:"name"`

	// OGPA is the rounded overall result with exactly two decimals.
	OGPA string `json:"ogpa"`

	// TotalCredits is the sum of TotalCredits over the semesters that were
	// found when the record was calculated.
	TotalCredits float64 `json:"totalCredits"`

	// TotalWeighted is the matching sum of TotalWeighted.
	TotalWeighted float64 `json:"totalWeighted"`

	// Semesters are the IDs of the selected SemesterRecords, in selection
	// order. IDs that no longer exist are skipped when resolved.
	Semesters []string `json:"semesters"`

	// Date is a display timestamp of the last calculation.
	Date string `json:"date"`
}

// RecordID returns the record's ID.
func (r OverallRecord) RecordID() string { return r.ID }
