package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/internal/entity"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
	"github.com/SmritaPandey/OCR-admission-forms/internal/utils"
)

// Formats accepted by Export.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Service is a tiny façade over repositories that renders admission forms
// into downloadable registers.
type Service struct {
	formsRepo repository.FormRepository
	logger    *slog.Logger
}

func NewService(formsRepo repository.FormRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{formsRepo: formsRepo, logger: logger}
}

// exportColumns is the register layout: a fixed lead block followed by
// every canonical field in declaration order.
var leadColumns = []string{"Form ID", "Status", "Verified By", "Verified At", "Created At"}

func headerRow() []string {
	headers := append([]string{}, leadColumns...)
	for _, f := range constants.RecordFields {
		headers = append(headers, f)
	}
	return headers
}

func formRow(f *entity.AdmissionForm) []string {
	row := []string{
		f.ID.String(),
		f.Status,
		deref(f.VerifiedBy),
		formatTime(f.VerifiedAt),
		f.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, name := range constants.RecordFields {
		row = append(row, f.Fields[name])
	}
	return row
}

// Export renders all forms matching status (empty = all) in the requested
// format and returns the encoded bytes plus the row count.
func (s *Service) Export(ctx context.Context, format, status string) ([]byte, int, error) {
	start := time.Now()

	rows, err := s.formsRepo.List(ctx, status, 0, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("query forms: %w", err)
	}
	forms := make([]*entity.AdmissionForm, len(rows))
	for i, r := range rows {
		forms[i] = utils.ToForm(r)
	}

	var out []byte
	switch format {
	case FormatXLSX:
		out, err = renderXLSX(forms)
	case FormatCSV:
		out, err = renderCSV(forms)
	case FormatJSON:
		out, err = json.MarshalIndent(forms, "", "  ")
	default:
		return nil, 0, fmt.Errorf("unsupported export format: %q", format)
	}
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("export.ok",
		"format", format,
		"status", status,
		"rows", len(forms),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, len(forms), nil
}

func renderXLSX(forms []*entity.AdmissionForm) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Admissions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headerRow() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, form := range forms {
		for c, v := range formRow(form) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the identity block
	_ = f.SetColWidth(sheet, "A", "A", 38) // form id
	_ = f.SetColWidth(sheet, "B", "E", 20)
	_ = f.SetColWidth(sheet, "F", "F", 28) // student name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCSV(forms []*entity.AdmissionForm) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headerRow()); err != nil {
		return nil, err
	}
	for _, form := range forms {
		if err := w.Write(formRow(form)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
