package calculator

import (
	"slices"
	"strings"

	"github.com/mmynk/gradebook/internal/models"
)

// OverallResult holds the aggregated totals and OGPA of a selection.
type OverallResult struct {
	TotalCredits  float64
	TotalWeighted float64
	OGPA          string

	// Semesters is the selection with duplicates removed, in first-seen order.
	Semesters []string
}

// ToggleSelection adds id to selected if absent and removes it if present.
// The input slice is not modified. Applying it twice with the same id
// yields the original selection.
func ToggleSelection(id string, selected []string) []string {
	if i := slices.Index(selected, id); i >= 0 {
		return slices.Delete(slices.Clone(selected), i, i+1)
	}
	next := make([]string, 0, len(selected)+1)
	next = append(next, selected...)
	return append(next, id)
}

// CalculateOverall aggregates the stored totals of the selected semesters.
// Selected IDs that are not in semesters are skipped. A selection that
// resolves to zero credits fails with ErrNoCredits rather than producing
// an undefined ratio.
func CalculateOverall(name string, selected []string, semesters []models.SemesterRecord) (OverallResult, error) {
	if len(selected) == 0 {
		return OverallResult{}, ErrEmptySelection
	}
	if strings.TrimSpace(name) == "" {
		return OverallResult{}, ErrMissingName
	}

	byID := indexSemesters(semesters)

	var result OverallResult
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		result.Semesters = append(result.Semesters, id)

		rec, ok := byID[id]
		if !ok {
			continue
		}
		result.TotalCredits += rec.TotalCredits
		result.TotalWeighted += rec.TotalWeighted
	}

	if result.TotalCredits == 0 {
		return OverallResult{}, ErrNoCredits
	}
	result.OGPA = weightedAverage(result.TotalWeighted, result.TotalCredits)
	return result, nil
}

// ExpandDetail resolves the record's semester IDs against the current
// semester list, keeping selection order and dropping IDs with no match.
func ExpandDetail(record models.OverallRecord, semesters []models.SemesterRecord) []models.SemesterRecord {
	byID := indexSemesters(semesters)
	detail := make([]models.SemesterRecord, 0, len(record.Semesters))
	for _, id := range record.Semesters {
		if rec, ok := byID[id]; ok {
			detail = append(detail, rec)
		}
	}
	return detail
}

func indexSemesters(semesters []models.SemesterRecord) map[string]models.SemesterRecord {
	byID := make(map[string]models.SemesterRecord, len(semesters))
	for _, s := range semesters {
		if _, dup := byID[s.ID]; !dup {
			byID[s.ID] = s
		}
	}
	return byID
}
