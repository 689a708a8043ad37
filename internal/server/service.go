package server

import (
	"log/slog"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/export"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ingest"
	"github.com/SmritaPandey/OCR-admission-forms/internal/pipeline"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

// AdmissionsService is the gRPC surface over ingestion, extraction,
// verification and export.
type AdmissionsService struct {
	admissionspb.UnimplementedAdmissionsServiceServer

	formsRepo    repository.FormRepository
	docsRepo     repository.DocumentRepository
	profilesRepo repository.ProfileRepository
	ingestor     *ingest.FSIngestor
	processor    *pipeline.Processor
	exporter     *export.Service
	logger       *slog.Logger
}

func NewAdmissionsService(
	formsRepo repository.FormRepository,
	docsRepo repository.DocumentRepository,
	profilesRepo repository.ProfileRepository,
	ingestor *ingest.FSIngestor,
	processor *pipeline.Processor,
	exporter *export.Service,
	logger *slog.Logger,
) *AdmissionsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdmissionsService{
		formsRepo:    formsRepo,
		docsRepo:     docsRepo,
		profilesRepo: profilesRepo,
		ingestor:     ingestor,
		processor:    processor,
		exporter:     exporter,
		logger:       logger,
	}
}
