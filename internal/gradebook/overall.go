package gradebook

import (
	"context"
	"log/slog"

	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/history"
	"github.com/mmynk/gradebook/internal/models"
)

// OverallDraft is an overall GPA selection, before calculation.
type OverallDraft struct {
	// ID selects the record to edit. Empty, or an unknown ID, saves a new one.
	ID string

	Name      string
	Semesters []string
}

// SaveOverall aggregates the selected semesters from the current semester
// history and stores the result, with the same edit semantics as
// SaveSemester.
func (b *Book) SaveOverall(ctx context.Context, draft OverallDraft) (models.OverallRecord, error) {
	semesters, err := b.semesters.List(ctx)
	if err != nil {
		return models.OverallRecord{}, err
	}

	result, err := calculator.CalculateOverall(draft.Name, draft.Semesters, semesters)
	if err != nil {
		return models.OverallRecord{}, err
	}

	rec := models.OverallRecord{
		Name:          draft.Name,
		OGPA:          result.OGPA,
		TotalCredits:  result.TotalCredits,
		TotalWeighted: result.TotalWeighted,
		Semesters:     result.Semesters,
		Date:          b.now().Format(DateLayout),
	}

	_, err = b.overalls.Update(ctx, func(list []models.OverallRecord) ([]models.OverallRecord, error) {
		if _, editing := history.Find(list, draft.ID); editing && draft.ID != "" {
			rec.ID = draft.ID
		} else {
			rec.ID = newID(b.now(), list)
		}
		updated, _ := history.Upsert(list, rec)
		return updated, nil
	})
	if err != nil {
		return models.OverallRecord{}, err
	}

	slog.Info("Overall saved",
		"id", rec.ID,
		"name", rec.Name,
		"ogpa", rec.OGPA,
		"semesters_count", len(rec.Semesters),
	)
	return rec, nil
}

// ListOveralls returns the overall history, most recent first.
func (b *Book) ListOveralls(ctx context.Context) ([]models.OverallRecord, error) {
	return b.overalls.List(ctx)
}

// GetOverall returns one overall record or history.ErrNotFound.
func (b *Book) GetOverall(ctx context.Context, id string) (models.OverallRecord, error) {
	return b.overalls.Get(ctx, id)
}

// ExpandOverall returns the record together with the semesters it still
// resolves to. Deleted semesters are left out.
func (b *Book) ExpandOverall(ctx context.Context, id string) (models.OverallRecord, []models.SemesterRecord, error) {
	rec, err := b.overalls.Get(ctx, id)
	if err != nil {
		return models.OverallRecord{}, nil, err
	}
	semesters, err := b.semesters.List(ctx)
	if err != nil {
		return models.OverallRecord{}, nil, err
	}
	return rec, calculator.ExpandDetail(rec, semesters), nil
}

// DeleteOverall removes one overall record.
func (b *Book) DeleteOverall(ctx context.Context, id string) error {
	if err := b.overalls.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Overall deleted", "id", id)
	return nil
}

// ClearOveralls removes the whole overall history.
func (b *Book) ClearOveralls(ctx context.Context) error {
	if err := b.overalls.Clear(ctx); err != nil {
		return err
	}
	slog.Info("Overall history cleared")
	return nil
}
