package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/SmritaPandey/OCR-admission-forms/internal/common"
	"github.com/SmritaPandey/OCR-admission-forms/internal/export"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ingest"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ocr"
	"github.com/SmritaPandey/OCR-admission-forms/internal/pipeline"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
)

func main() {
	var (
		inmem  = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir    = flag.String("dir", "", "directory of scanned admission forms (required)")
		out    = flag.String("out", "", "output register path (defaults next to --dir)")
		format = flag.String("format", export.FormatXLSX, "register format: xlsx, csv or json")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		logger.Error("usage", "cmd", "formbatch --dir <scans> [--out register.xlsx] [--format xlsx|csv|json] [--inmem]")
		os.Exit(2)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "admissions."+*format)
	}

	ctx := context.Background()
	cfg := common.LoadConfig()

	db, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	formsRepo := repository.NewFormRepository(db.Client, logger)
	docsRepo := repository.NewDocumentRepository(db.Client, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		DPI:                 cfg.OCR.DPI,
		MaxPages:            cfg.OCR.MaxPages,
		EnableTSVConfidence: cfg.OCR.TSVConfidence,
	}, logger)
	processor := pipeline.NewProcessor(logger, pipeline.Config{
		MinConfidence: cfg.Pipeline.MinConfidence,
	}, docsRepo, formsRepo, extractor)
	ingestor := ingest.NewFSIngestor(docsRepo, formsRepo, logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, r := range results {
		if r.Err != "" || r.FormID == "" {
			continue
		}
		formID, err := uuid.Parse(r.FormID)
		if err != nil {
			logger.Error("failed to parse form id", "form_id", r.FormID, "error", err)
			failures++
			continue
		}
		logger.Info("processing form", "form_id", formID, "path", r.SourcePath)
		if _, err := processor.ProcessForm(ctx, formID); err != nil {
			logger.Error("failed to process form", "form_id", formID, "error", err)
			failures++
			continue
		}
		processed++
	}

	exporter := export.NewService(formsRepo, logger)
	data, count, err := exporter.Export(ctx, *format, "")
	if err != nil {
		logger.Error("failed to export register", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"forms_processed", processed,
		"failures", failures,
		"register_rows", count,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Forms processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Register: %s (%d rows)\n", *out, count)
}
