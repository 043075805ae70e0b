package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
)

// Export renders the task list, sorted by deadline, in the requested format.
func (uc *implUseCase) Export(ctx context.Context, input task.ExportInput) (task.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = task.FormatCSV
	}

	var render func([]task.Item, string) ([]byte, error)
	var contentType string
	switch format {
	case task.FormatCSV:
		render, contentType = renderCSV, "text/csv; charset=utf-8"
	case task.FormatJSON:
		render, contentType = renderJSON, "application/json"
	case task.FormatPDF:
		render, contentType = renderPDF, "application/pdf"
	default:
		return task.ExportOutput{}, task.ErrUnknownFormat
	}

	out, err := uc.List(ctx, task.ListInput{Today: input.Today, SortByDeadline: true})
	if err != nil {
		return task.ExportOutput{}, err
	}

	today := input.Today.Format(model.DateLayout)
	data, err := render(out.Items, today)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export %s: %v", format, err)
		return task.ExportOutput{}, fmt.Errorf("render %s export: %w", format, err)
	}

	return task.ExportOutput{
		Data:        data,
		ContentType: contentType,
		Filename:    fmt.Sprintf("tasks-%s.%s", today, format),
	}, nil
}

func renderCSV(items []task.Item, _ string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := w.Write(exportRow(it)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type exportItem struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
	Urgency     string `json:"urgency"`
	Suggestion  string `json:"suggestion"`
}

func renderJSON(items []task.Item, today string) ([]byte, error) {
	rows := make([]exportItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, exportItem{
			Description: it.Task.Description,
			Priority:    it.Task.Priority.String(),
			Deadline:    it.Task.DeadlineString(),
			Urgency:     string(it.Urgency),
			Suggestion:  it.Suggestion.String(),
		})
	}
	return json.MarshalIndent(struct {
		Today string       `json:"today"`
		Tasks []exportItem `json:"tasks"`
	}{Today: today, Tasks: rows}, "", "  ")
}

// Column widths in mm for an A4 portrait page with 10mm margins.
var pdfWidths = []float64{70, 22, 26, 72}

func renderPDF(items []task.Item, today string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Task List")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "As of "+today)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	for i, col := range exportHeadings {
		pdf.CellFormat(pdfWidths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, it := range items {
		row := exportRow(it)
		for i := range exportHeadings {
			pdf.CellFormat(pdfWidths[i], 6, tr(truncate(row[i], pdfWidths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
