package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/pkg/api"
)

// GradeService implements the Connect GradeService on top of a Book.
type GradeService struct {
	book *gradebook.Book
}

var _ api.GradeServiceHandler = (*GradeService)(nil)

// NewGradeService creates a new GradeService backed by book.
func NewGradeService(book *gradebook.Book) *GradeService {
	return &GradeService{book: book}
}

// CalculateSemester previews a semester GPA without storing anything.
func (s *GradeService) CalculateSemester(ctx context.Context, req *connect.Request[api.CalculateSemesterRequest]) (*connect.Response[api.CalculateSemesterResponse], error) {
	slog.Info("CalculateSemester request received", "subjects_count", len(req.Msg.Subjects))

	subjects, err := calculator.ParseSubjects(subjectInputs(req.Msg.Subjects))
	if err != nil {
		slog.Warn("CalculateSemester validation failed", "error", err)
		return nil, connectError(err)
	}
	result := calculator.CalculateSemester(subjects)

	return connect.NewResponse(&api.CalculateSemesterResponse{
		TotalCredits:  result.TotalCredits,
		TotalWeighted: result.TotalWeighted,
		GPA:           result.GPA,
	}), nil
}

// SaveSemester calculates and stores a semester, or edits an existing one.
func (s *GradeService) SaveSemester(ctx context.Context, req *connect.Request[api.SaveSemesterRequest]) (*connect.Response[api.SaveSemesterResponse], error) {
	slog.Info("SaveSemester request received",
		"id", req.Msg.ID,
		"name", req.Msg.Name,
		"subjects_count", len(req.Msg.Subjects),
	)

	rec, err := s.book.SaveSemester(ctx, gradebook.SemesterDraft{
		ID:       req.Msg.ID,
		Name:     req.Msg.Name,
		Subjects: subjectInputs(req.Msg.Subjects),
	})
	if err != nil {
		slog.Error("SaveSemester failed", "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.SaveSemesterResponse{
		Semester: semesterToAPI(rec),
		Saved:    rec.ID != "",
	}), nil
}

// ListSemesters returns the semester history, most recent first.
func (s *GradeService) ListSemesters(ctx context.Context, req *connect.Request[api.ListSemestersRequest]) (*connect.Response[api.ListSemestersResponse], error) {
	slog.Info("ListSemesters request received")

	recs, err := s.book.ListSemesters(ctx)
	if err != nil {
		slog.Error("ListSemesters failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListSemesters successful", "count", len(recs))
	return connect.NewResponse(&api.ListSemestersResponse{Semesters: semestersToAPI(recs)}), nil
}

// DeleteSemester removes one semester by ID.
func (s *GradeService) DeleteSemester(ctx context.Context, req *connect.Request[api.DeleteSemesterRequest]) (*connect.Response[api.DeleteSemesterResponse], error) {
	slog.Info("DeleteSemester request received", "id", req.Msg.ID)

	if err := s.book.DeleteSemester(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteSemester failed", "id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.DeleteSemesterResponse{}), nil
}

// ClearSemesters removes the whole semester history.
func (s *GradeService) ClearSemesters(ctx context.Context, req *connect.Request[api.ClearSemestersRequest]) (*connect.Response[api.ClearSemestersResponse], error) {
	slog.Info("ClearSemesters request received")

	if err := s.book.ClearSemesters(ctx); err != nil {
		slog.Error("ClearSemesters failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ClearSemestersResponse{}), nil
}

// SaveOverall aggregates the selected semesters and stores the result.
func (s *GradeService) SaveOverall(ctx context.Context, req *connect.Request[api.SaveOverallRequest]) (*connect.Response[api.SaveOverallResponse], error) {
	slog.Info("SaveOverall request received",
		"id", req.Msg.ID,
		"name", req.Msg.Name,
		"semesters_count", len(req.Msg.SemesterIDs),
	)

	rec, err := s.book.SaveOverall(ctx, gradebook.OverallDraft{
		ID:        req.Msg.ID,
		Name:      req.Msg.Name,
		Semesters: req.Msg.SemesterIDs,
	})
	if err != nil {
		slog.Error("SaveOverall failed", "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.SaveOverallResponse{Overall: overallToAPI(rec)}), nil
}

// ListOveralls returns the overall history, most recent first.
func (s *GradeService) ListOveralls(ctx context.Context, req *connect.Request[api.ListOverallsRequest]) (*connect.Response[api.ListOverallsResponse], error) {
	slog.Info("ListOveralls request received")

	recs, err := s.book.ListOveralls(ctx)
	if err != nil {
		slog.Error("ListOveralls failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]api.Overall, len(recs))
	for i, rec := range recs {
		out[i] = overallToAPI(rec)
	}

	slog.Info("ListOveralls successful", "count", len(recs))
	return connect.NewResponse(&api.ListOverallsResponse{Overalls: out}), nil
}

// GetOverall returns an overall record with the semesters it still resolves to.
func (s *GradeService) GetOverall(ctx context.Context, req *connect.Request[api.GetOverallRequest]) (*connect.Response[api.GetOverallResponse], error) {
	slog.Info("GetOverall request received", "id", req.Msg.ID)

	rec, semesters, err := s.book.ExpandOverall(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetOverall failed", "id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetOverallResponse{
		Overall:   overallToAPI(rec),
		Semesters: semestersToAPI(semesters),
	}), nil
}

// DeleteOverall removes one overall record by ID.
func (s *GradeService) DeleteOverall(ctx context.Context, req *connect.Request[api.DeleteOverallRequest]) (*connect.Response[api.DeleteOverallResponse], error) {
	slog.Info("DeleteOverall request received", "id", req.Msg.ID)

	if err := s.book.DeleteOverall(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteOverall failed", "id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.DeleteOverallResponse{}), nil
}

// ClearOveralls removes the whole overall history.
func (s *GradeService) ClearOveralls(ctx context.Context, req *connect.Request[api.ClearOverallsRequest]) (*connect.Response[api.ClearOverallsResponse], error) {
	slog.Info("ClearOveralls request received")

	if err := s.book.ClearOveralls(ctx); err != nil {
		slog.Error("ClearOveralls failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ClearOverallsResponse{}), nil
}

// AverageGPA returns the plain mean of the given semester GPAs.
func (s *GradeService) AverageGPA(ctx context.Context, req *connect.Request[api.AverageGPARequest]) (*connect.Response[api.AverageGPAResponse], error) {
	slog.Info("AverageGPA request received", "count", len(req.Msg.GPAs))

	cgpa, err := calculator.AverageGPA(req.Msg.GPAs)
	if err != nil {
		slog.Warn("AverageGPA validation failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.AverageGPAResponse{CGPA: cgpa}), nil
}
