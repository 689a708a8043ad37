package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/export"
)

// ExportForms renders matching forms into a register file on disk and
// returns its path.
func (s *AdmissionsService) ExportForms(ctx context.Context, req *admissionspb.ExportFormsRequest) (*admissionspb.ExportFormsResponse, error) {
	format := strings.ToLower(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = export.FormatXLSX
	}

	data, count, err := s.exporter.Export(ctx, format, strings.TrimSpace(req.GetStatus()))
	if err != nil {
		s.logger.Error("export failed", "format", format, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "export: %v", err)
	}

	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		outPath = filepath.Join(os.TempDir(), "admissions-"+time.Now().UTC().Format("20060102-150405")+"."+format)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		s.logger.Error("failed to write export", "path", outPath, "error", err)
		return nil, status.Errorf(codes.Internal, "write export: %v", err)
	}

	s.logger.Info("export written", "path", outPath, "format", format, "rows", count)
	return &admissionspb.ExportFormsResponse{
		OutputPath: outPath,
		Count:      int32(count),
	}, nil
}
