package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/internal/middleware"
	"github.com/mmynk/gradebook/internal/storage"
	"github.com/mmynk/gradebook/internal/storage/sqlite"
	"github.com/mmynk/gradebook/pkg/api"
)

var fixedNow = time.Date(2025, 9, 1, 14, 30, 0, 0, time.UTC)

// setupGradeTestServer serves a GradeService over a temp SQLite store.
func setupGradeTestServer(t *testing.T) (*api.GradeServiceClient, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	book := gradebook.New(store, gradebook.WithClock(func() time.Time { return fixedNow }))
	path, handler := api.NewGradeServiceHandler(
		NewGradeService(book),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return api.NewGradeServiceClient(http.DefaultClient, server.URL), store
}

func subjects(rows ...[3]string) []api.Subject {
	out := make([]api.Subject, len(rows))
	for i, r := range rows {
		out[i] = api.Subject{Code: r[0], Credit: r[1], Grade: r[2]}
	}
	return out
}

func TestCalculateSemester(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	resp, err := client.CalculateSemester(ctx, connect.NewRequest(&api.CalculateSemesterRequest{
		Subjects: subjects([3]string{"CS101", "3", "4"}, [3]string{"MA101", "4", "3.5"}),
	}))
	require.NoError(t, err)
	assert.Equal(t, "3.71", resp.Msg.GPA)
	assert.Equal(t, 7.0, resp.Msg.TotalCredits)
	assert.Equal(t, 26.0, resp.Msg.TotalWeighted)

	// Preview never persists.
	list, err := client.ListSemesters(ctx, connect.NewRequest(&api.ListSemestersRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Semesters)
}

func TestCalculateSemesterValidation(t *testing.T) {
	client, _ := setupGradeTestServer(t)

	tests := []struct {
		name     string
		subjects []api.Subject
	}{
		{"missing grade", subjects([3]string{"CS101", "3", ""})},
		{"not a number", subjects([3]string{"CS101", "three", "4"})},
		{"missing code", subjects([3]string{" ", "3", "4"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CalculateSemester(context.Background(), connect.NewRequest(&api.CalculateSemesterRequest{
				Subjects: tt.subjects,
			}))
			require.Error(t, err)
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestSaveAndListSemesters(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	saved, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Fall 2024",
		Subjects: subjects([3]string{"CS101", "3", "4"}),
	}))
	require.NoError(t, err)
	assert.True(t, saved.Msg.Saved)
	assert.Equal(t, "1756737000000", saved.Msg.Semester.ID)
	assert.Equal(t, "4.00", saved.Msg.Semester.GPA)
	assert.Equal(t, "9/1/2025, 2:30:00 PM", saved.Msg.Semester.Date)

	unnamed, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Subjects: subjects([3]string{"PH101", "2", "3"}),
	}))
	require.NoError(t, err)
	assert.Equal(t, "Unnamed Semester", unnamed.Msg.Semester.Name)
	assert.Equal(t, "1756737000001", unnamed.Msg.Semester.ID)

	// Edit keeps ID and position.
	edited, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		ID:       saved.Msg.Semester.ID,
		Name:     "Fall 2024 (revised)",
		Subjects: subjects([3]string{"CS101", "3", "3"}),
	}))
	require.NoError(t, err)
	assert.Equal(t, saved.Msg.Semester.ID, edited.Msg.Semester.ID)

	list, err := client.ListSemesters(ctx, connect.NewRequest(&api.ListSemestersRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Semesters, 2)
	assert.Equal(t, unnamed.Msg.Semester.ID, list.Msg.Semesters[0].ID)
	assert.Equal(t, "Fall 2024 (revised)", list.Msg.Semesters[1].Name)
	assert.Equal(t, "3.00", list.Msg.Semesters[1].GPA)
	assert.Equal(t, []api.SubjectEntry{{Code: "CS101", Credit: 3, Grade: 3}}, list.Msg.Semesters[1].Subjects)
}

func TestSaveSemesterWithoutCredits(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	resp, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Audit",
		Subjects: subjects([3]string{"AU100", "0", "4"}),
	}))
	require.NoError(t, err)
	assert.False(t, resp.Msg.Saved)
	assert.Equal(t, "0.00", resp.Msg.Semester.GPA)
	assert.Empty(t, resp.Msg.Semester.ID)

	list, err := client.ListSemesters(ctx, connect.NewRequest(&api.ListSemestersRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Semesters)
}

func TestOverallLifecycle(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	first, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Fall",
		Subjects: subjects([3]string{"A", "3", "4"}, [3]string{"B", "4", "3.5"}),
	}))
	require.NoError(t, err)
	second, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Spring",
		Subjects: subjects([3]string{"C", "3", "3"}),
	}))
	require.NoError(t, err)

	ids := []string{first.Msg.Semester.ID, second.Msg.Semester.ID}
	saved, err := client.SaveOverall(ctx, connect.NewRequest(&api.SaveOverallRequest{
		Name:        "Year 1",
		SemesterIDs: ids,
	}))
	require.NoError(t, err)
	// (26 + 9) / 10
	assert.Equal(t, "3.50", saved.Msg.Overall.OGPA)
	assert.Equal(t, 10.0, saved.Msg.Overall.TotalCredits)
	assert.Equal(t, ids, saved.Msg.Overall.Semesters)

	got, err := client.GetOverall(ctx, connect.NewRequest(&api.GetOverallRequest{ID: saved.Msg.Overall.ID}))
	require.NoError(t, err)
	require.Len(t, got.Msg.Semesters, 2)
	assert.Equal(t, "Fall", got.Msg.Semesters[0].Name)

	// A deleted semester drops out of the detail but not the record.
	_, err = client.DeleteSemester(ctx, connect.NewRequest(&api.DeleteSemesterRequest{ID: first.Msg.Semester.ID}))
	require.NoError(t, err)
	got, err = client.GetOverall(ctx, connect.NewRequest(&api.GetOverallRequest{ID: saved.Msg.Overall.ID}))
	require.NoError(t, err)
	assert.Len(t, got.Msg.Semesters, 1)
	assert.Equal(t, ids, got.Msg.Overall.Semesters)

	list, err := client.ListOveralls(ctx, connect.NewRequest(&api.ListOverallsRequest{}))
	require.NoError(t, err)
	assert.Len(t, list.Msg.Overalls, 1)

	_, err = client.DeleteOverall(ctx, connect.NewRequest(&api.DeleteOverallRequest{ID: saved.Msg.Overall.ID}))
	require.NoError(t, err)
	_, err = client.GetOverall(ctx, connect.NewRequest(&api.GetOverallRequest{ID: saved.Msg.Overall.ID}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestSaveOverallErrors(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	sem, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Fall",
		Subjects: subjects([3]string{"A", "3", "4"}),
	}))
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *api.SaveOverallRequest
	}{
		{"empty selection", &api.SaveOverallRequest{Name: "Year"}},
		{"missing name", &api.SaveOverallRequest{SemesterIDs: []string{sem.Msg.Semester.ID}}},
		{"only unknown ids", &api.SaveOverallRequest{Name: "Year", SemesterIDs: []string{"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SaveOverall(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}

	list, err := client.ListOveralls(ctx, connect.NewRequest(&api.ListOverallsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Overalls)
}

func TestClearHistories(t *testing.T) {
	client, store := setupGradeTestServer(t)
	ctx := context.Background()

	sem, err := client.SaveSemester(ctx, connect.NewRequest(&api.SaveSemesterRequest{
		Name:     "Fall",
		Subjects: subjects([3]string{"A", "3", "4"}),
	}))
	require.NoError(t, err)
	_, err = client.SaveOverall(ctx, connect.NewRequest(&api.SaveOverallRequest{
		Name:        "Year",
		SemesterIDs: []string{sem.Msg.Semester.ID},
	}))
	require.NoError(t, err)

	_, err = client.ClearSemesters(ctx, connect.NewRequest(&api.ClearSemestersRequest{}))
	require.NoError(t, err)
	_, err = client.ClearOveralls(ctx, connect.NewRequest(&api.ClearOverallsRequest{}))
	require.NoError(t, err)

	for _, key := range []string{storage.SemesterHistoryKey, storage.OverallHistoryKey} {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestDeleteMissing(t *testing.T) {
	client, _ := setupGradeTestServer(t)

	_, err := client.DeleteSemester(context.Background(), connect.NewRequest(&api.DeleteSemesterRequest{ID: "42"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestAverageGPA(t *testing.T) {
	client, _ := setupGradeTestServer(t)
	ctx := context.Background()

	resp, err := client.AverageGPA(ctx, connect.NewRequest(&api.AverageGPARequest{GPAs: []string{"3.5", "3.8"}}))
	require.NoError(t, err)
	assert.Equal(t, "3.65", resp.Msg.CGPA)

	_, err = client.AverageGPA(ctx, connect.NewRequest(&api.AverageGPARequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.AverageGPA(ctx, connect.NewRequest(&api.AverageGPARequest{GPAs: []string{"abc"}}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestStorageErrorCodes(t *testing.T) {
	t.Run("newer schema", func(t *testing.T) {
		client, store := setupGradeTestServer(t)
		require.NoError(t, store.Set(context.Background(), storage.SemesterHistoryKey,
			[]byte(`{"version":99,"records":[]}`)))

		_, err := client.ListSemesters(context.Background(), connect.NewRequest(&api.ListSemestersRequest{}))
		assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
	})

	t.Run("backend down", func(t *testing.T) {
		client, store := setupGradeTestServer(t)
		require.NoError(t, store.Close())

		_, err := client.ListSemesters(context.Background(), connect.NewRequest(&api.ListSemestersRequest{}))
		assert.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))
	})
}
