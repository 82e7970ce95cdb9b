// Package models defines the persisted records of the gradebook.
//
// # Records
//
//   - SubjectEntry: one subject's credit and grade point, embedded in a semester
//   - SemesterRecord: a calculated semester GPA with the totals needed to re-aggregate it
//   - OverallRecord: an OGPA computed from a selection of semester records
//
// # Design Principles
//
// 1. **Totals travel with the record**: a semester stores TotalCredits and
// TotalWeighted so overall aggregation never re-reads subjects.
// 2. **IDs, not pointers**: an overall record references semesters by ID. The
// reference is weak; a deleted semester is skipped, never an error.
// 3. **JSON keys are the storage format**: the field tags below are what the
// record store holds, so renaming one is a schema change.
package models
