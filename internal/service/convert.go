package service

import (
	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/models"
	"github.com/mmynk/gradebook/pkg/api"
)

func subjectInputs(subjects []api.Subject) []calculator.SubjectInput {
	inputs := make([]calculator.SubjectInput, len(subjects))
	for i, s := range subjects {
		inputs[i] = calculator.SubjectInput{Code: s.Code, Credit: s.Credit, Grade: s.Grade}
	}
	return inputs
}

func semesterToAPI(rec models.SemesterRecord) api.Semester {
	subjects := make([]api.SubjectEntry, len(rec.Subjects))
	for i, s := range rec.Subjects {
		subjects[i] = api.SubjectEntry{Code: s.Code, Credit: s.Credit, Grade: s.Grade}
	}
	return api.Semester{
		ID:            rec.ID,
		Name:          rec.Name,
		GPA:           rec.GPA,
		Subjects:      subjects,
		TotalCredits:  rec.TotalCredits,
		TotalWeighted: rec.TotalWeighted,
		Date:          rec.Date,
	}
}

func semestersToAPI(recs []models.SemesterRecord) []api.Semester {
	out := make([]api.Semester, len(recs))
	for i, rec := range recs {
		out[i] = semesterToAPI(rec)
	}
	return out
}

func overallToAPI(rec models.OverallRecord) api.Overall {
	return api.Overall{
		ID:            rec.ID,
		Name:          rec.Name,
		OGPA:          rec.OGPA,
		TotalCredits:  rec.TotalCredits,
		TotalWeighted: rec.TotalWeighted,
		Semesters:     append([]string{}, rec.Semesters...),
		Date:          rec.Date,
	}
}
