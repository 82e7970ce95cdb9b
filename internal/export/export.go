// Package export writes the semester and overall histories to an xlsx
// workbook.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/internal/models"
)

// Sheet names, in workbook order.
const (
	SemestersSheet = "Semesters"
	SubjectsSheet  = "Subjects"
	OverallSheet   = "Overall"
)

// ContentType is the MIME type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	semesterHeader = []any{"ID", "Name", "GPA", "Total Credits", "Total Weighted", "Date"}
	subjectHeader  = []any{"Semester ID", "Semester", "Code", "Credit", "Grade"}
	overallHeader  = []any{"ID", "Name", "OGPA", "Total Credits", "Total Weighted", "Semesters", "Date"}
)

// WriteWorkbook writes both histories, most recent first as stored.
func WriteWorkbook(w io.Writer, semesters []models.SemesterRecord, overalls []models.OverallRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SemestersSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SubjectsSheet, OverallSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	var semesterRows, subjectRows, overallRows [][]any
	for _, s := range semesters {
		semesterRows = append(semesterRows, []any{s.ID, s.Name, s.GPA, s.TotalCredits, s.TotalWeighted, s.Date})
		for _, sub := range s.Subjects {
			subjectRows = append(subjectRows, []any{s.ID, s.Name, sub.Code, sub.Credit, sub.Grade})
		}
	}
	for _, o := range overalls {
		overallRows = append(overallRows, []any{
			o.ID, o.Name, o.OGPA, o.TotalCredits, o.TotalWeighted, strings.Join(o.Semesters, ","), o.Date,
		})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SemestersSheet, semesterHeader, semesterRows},
		{SubjectsSheet, subjectHeader, subjectRows},
		{OverallSheet, overallHeader, overallRows},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, headerStyle, sh.header, sh.rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", last, 16); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// WriteBook exports everything currently stored in book.
func WriteBook(ctx context.Context, w io.Writer, book *gradebook.Book) error {
	semesters, err := book.ListSemesters(ctx)
	if err != nil {
		return err
	}
	overalls, err := book.ListOveralls(ctx)
	if err != nil {
		return err
	}
	return WriteWorkbook(w, semesters, overalls)
}

// Handler serves the workbook as a download.
func Handler(book *gradebook.Book) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var buf bytes.Buffer
		if err := WriteBook(r.Context(), &buf, book); err != nil {
			slog.Error("Export failed", "error", err)
			http.Error(w, "export failed", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="gradebook.xlsx"`)
		buf.WriteTo(w)
	})
}
