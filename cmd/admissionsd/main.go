package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/grpclog"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"
	"go.uber.org/zap/zapgrpc"

	admissionspb "github.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1"
	"github.com/SmritaPandey/OCR-admission-forms/internal/common"
	"github.com/SmritaPandey/OCR-admission-forms/internal/export"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ingest"
	"github.com/SmritaPandey/OCR-admission-forms/internal/ocr"
	"github.com/SmritaPandey/OCR-admission-forms/internal/pipeline"
	"github.com/SmritaPandey/OCR-admission-forms/internal/repository"
	"github.com/SmritaPandey/OCR-admission-forms/internal/server"
)

func main() {
	// Lifecycle logger
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	log := zlog.Sugar()
	grpclog.SetLoggerV2(zapgrpc.NewLogger(zlog))

	// App-level logger for repositories and the pipeline
	applog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(applog)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, applog)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, applog)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, applog); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	formsRepo := repository.NewFormRepository(entc, applog)
	docsRepo := repository.NewDocumentRepository(entc, applog)
	profilesRepo := repository.NewProfileRepository(entc, applog)

	provider := buildProvider(cfg, applog)
	ingestor := ingest.NewFSIngestor(docsRepo, formsRepo, applog)
	processor := pipeline.NewProcessor(applog, pipeline.Config{
		MinConfidence: cfg.Pipeline.MinConfidence,
	}, docsRepo, formsRepo, provider)
	exporter := export.NewService(formsRepo, applog)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(server.RequestIDInterceptor(applog)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewAdmissionsService(formsRepo, docsRepo, profilesRepo, ingestor, processor, exporter, applog)
	admissionspb.RegisterAdmissionsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}

// buildProvider wires the exec-based extractor and, when enabled, races it
// against the in-process gosseract engine for image inputs.
func buildProvider(cfg *common.Config, logger *slog.Logger) ocr.Provider {
	exec := ocr.NewExtractor(ocr.Config{
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		DPI:                 cfg.OCR.DPI,
		MaxPages:            cfg.OCR.MaxPages,
		EnableTSVConfidence: cfg.OCR.TSVConfidence,
	}, logger)
	if !cfg.OCR.UseGosseract {
		return exec
	}
	return ocr.NewMultiProvider(logger, exec, ocr.NewGosseractProvider(cfg.OCR.TesseractLang, logger))
}
