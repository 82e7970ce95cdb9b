package calculator

import (
	"errors"
	"slices"
	"testing"

	"github.com/mmynk/gradebook/internal/models"
)

func sampleSemesters() []models.SemesterRecord {
	return []models.SemesterRecord{
		{ID: "2", Name: "Spring", GPA: "3.50", TotalCredits: 3, TotalWeighted: 10.5},
		{ID: "1", Name: "Fall", GPA: "3.71", TotalCredits: 7, TotalWeighted: 26},
		{ID: "0", Name: "Audit", GPA: "0.00", TotalCredits: 0, TotalWeighted: 0},
	}
}

func TestCalculateOverall(t *testing.T) {
	tests := []struct {
		name         string
		ogpaName     string
		selected     []string
		wantErr      error
		validateFunc func(t *testing.T, got OverallResult)
	}{
		{
			name:     "two semesters",
			ogpaName: "Year 1",
			selected: []string{"1", "2"},
			validateFunc: func(t *testing.T, got OverallResult) {
				// (26 + 10.5) / (7 + 3) = 3.65
				if got.OGPA != "3.65" {
					t.Errorf("OGPA = %q, want 3.65", got.OGPA)
				}
				if got.TotalCredits != 10 || got.TotalWeighted != 36.5 {
					t.Errorf("totals = %v/%v, want 10/36.5", got.TotalCredits, got.TotalWeighted)
				}
			},
		},
		{
			name:     "missing ids are skipped",
			ogpaName: "Year 1",
			selected: []string{"1", "gone"},
			validateFunc: func(t *testing.T, got OverallResult) {
				if got.OGPA != "3.71" {
					t.Errorf("OGPA = %q, want 3.71", got.OGPA)
				}
				if !slices.Equal(got.Semesters, []string{"1", "gone"}) {
					t.Errorf("Semesters = %v, want selection kept", got.Semesters)
				}
			},
		},
		{
			name:     "duplicate ids counted once",
			ogpaName: "Year 1",
			selected: []string{"2", "2"},
			validateFunc: func(t *testing.T, got OverallResult) {
				if got.TotalCredits != 3 {
					t.Errorf("TotalCredits = %v, want 3", got.TotalCredits)
				}
				if len(got.Semesters) != 1 {
					t.Errorf("Semesters = %v, want one id", got.Semesters)
				}
			},
		},
		{
			name:     "empty selection",
			ogpaName: "Year 1",
			selected: nil,
			wantErr:  ErrEmptySelection,
		},
		{
			name:     "blank name",
			ogpaName: "  \t",
			selected: []string{"1"},
			wantErr:  ErrMissingName,
		},
		{
			name:     "empty selection reported before blank name",
			ogpaName: "",
			selected: []string{},
			wantErr:  ErrEmptySelection,
		},
		{
			name:     "all ids missing",
			ogpaName: "Year 1",
			selected: []string{"x", "y"},
			wantErr:  ErrNoCredits,
		},
		{
			name:     "only zero credit semesters",
			ogpaName: "Audit only",
			selected: []string{"0"},
			wantErr:  ErrNoCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateOverall(tt.ogpaName, tt.selected, sampleSemesters())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CalculateOverall() error = %v, want %v", err, tt.wantErr)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, got)
			}
		})
	}
}

func TestToggleSelection(t *testing.T) {
	original := []string{"a", "b"}

	added := ToggleSelection("c", original)
	if !slices.Equal(added, []string{"a", "b", "c"}) {
		t.Errorf("toggle on = %v", added)
	}
	if !slices.Equal(original, []string{"a", "b"}) {
		t.Errorf("input was modified: %v", original)
	}

	if back := ToggleSelection("c", added); !slices.Equal(back, original) {
		t.Errorf("toggle twice = %v, want %v", back, original)
	}

	removed := ToggleSelection("a", original)
	if !slices.Equal(removed, []string{"b"}) {
		t.Errorf("toggle off = %v", removed)
	}
	if back := ToggleSelection("a", removed); !slices.Equal(sortedCopy(back), original) {
		t.Errorf("toggle twice = %v, want same set as %v", back, original)
	}

	if got := ToggleSelection("x", ToggleSelection("x", nil)); len(got) != 0 {
		t.Errorf("toggle twice on empty = %v, want empty", got)
	}
}

func TestExpandDetail(t *testing.T) {
	record := models.OverallRecord{ID: "9", Name: "Year 1", Semesters: []string{"1", "missing", "2"}}

	detail := ExpandDetail(record, sampleSemesters())
	if len(detail) != 2 {
		t.Fatalf("expected 2 semesters, got %d", len(detail))
	}
	if detail[0].ID != "1" || detail[1].ID != "2" {
		t.Errorf("expected selection order [1 2], got [%s %s]", detail[0].ID, detail[1].ID)
	}

	if got := ExpandDetail(record, nil); len(got) != 0 {
		t.Errorf("expected no semesters against empty history, got %d", len(got))
	}
}

// sortedCopy returns a sorted copy of s (equivalent to slices.Sorted(slices.Values(s))).
func sortedCopy(s []string) []string {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
