package gradebook

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/history"
	"github.com/mmynk/gradebook/internal/models"
)

// SemesterDraft is a semester as entered, before calculation.
type SemesterDraft struct {
	// ID selects the record to edit. Empty, or an ID that is no longer in
	// the history, saves a new record.
	ID string

	Name     string
	Subjects []calculator.SubjectInput
}

// SaveSemester validates and calculates the draft, then stores it.
// Editing keeps the record's ID and position; a new record goes first.
// A draft whose subjects carry no credits is calculated ("0.00") but not
// stored; the returned record then has an empty ID.
func (b *Book) SaveSemester(ctx context.Context, draft SemesterDraft) (models.SemesterRecord, error) {
	subjects, err := calculator.ParseSubjects(draft.Subjects)
	if err != nil {
		return models.SemesterRecord{}, err
	}
	result := calculator.CalculateSemester(subjects)

	rec := models.SemesterRecord{
		Name:          draft.Name,
		GPA:           result.GPA,
		Subjects:      subjects,
		TotalCredits:  result.TotalCredits,
		TotalWeighted: result.TotalWeighted,
		Date:          b.now().Format(DateLayout),
	}
	if result.TotalCredits == 0 {
		slog.Debug("Semester has no credits, not saved", "name", draft.Name)
		return rec, nil
	}

	_, err = b.semesters.Update(ctx, func(list []models.SemesterRecord) ([]models.SemesterRecord, error) {
		if _, editing := history.Find(list, draft.ID); editing && draft.ID != "" {
			rec.ID = draft.ID
		} else {
			rec.ID = newID(b.now(), list)
			if strings.TrimSpace(rec.Name) == "" {
				rec.Name = models.DefaultSemesterName
			}
		}
		updated, _ := history.Upsert(list, rec)
		return updated, nil
	})
	if err != nil {
		return models.SemesterRecord{}, err
	}

	slog.Info("Semester saved", "id", rec.ID, "name", rec.Name, "gpa", rec.GPA)
	return rec, nil
}

// ListSemesters returns the semester history, most recent first.
func (b *Book) ListSemesters(ctx context.Context) ([]models.SemesterRecord, error) {
	return b.semesters.List(ctx)
}

// GetSemester returns one semester record or history.ErrNotFound.
func (b *Book) GetSemester(ctx context.Context, id string) (models.SemesterRecord, error) {
	return b.semesters.Get(ctx, id)
}

// DeleteSemester removes one semester record. Overall records that
// reference it are left as they are; the ID is skipped from then on.
func (b *Book) DeleteSemester(ctx context.Context, id string) error {
	if err := b.semesters.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Semester deleted", "id", id)
	return nil
}

// ClearSemesters removes the whole semester history.
func (b *Book) ClearSemesters(ctx context.Context) error {
	if err := b.semesters.Clear(ctx); err != nil {
		return err
	}
	slog.Info("Semester history cleared")
	return nil
}
