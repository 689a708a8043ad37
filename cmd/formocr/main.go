package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SmritaPandey/OCR-admission-forms/internal/ocr"
	"github.com/SmritaPandey/OCR-admission-forms/internal/parse"
)

func main() {
	var (
		path      = flag.String("path", "", "scanned PDF or image to OCR")
		lang      = flag.String("lang", "eng", "tesseract language")
		gosseract = flag.Bool("gosseract", false, "also try the in-process gosseract engine")
		fields    = flag.Bool("fields", false, "extract admission fields from the decoded text")
		timeout   = flag.Duration("timeout", 2*time.Minute, "per-file OCR timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *path == "" {
		logger.Error("usage", "cmd", "formocr -path <scan.pdf|scan.jpg> [-lang eng] [-gosseract] [-fields]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var provider ocr.Provider = ocr.NewExtractor(ocr.Config{
		TesseractLang:       *lang,
		EnableTSVConfidence: true,
	}, logger)
	if *gosseract {
		provider = ocr.NewMultiProvider(logger, provider, ocr.NewGosseractProvider(*lang, logger))
	}

	start := time.Now()
	res, err := provider.ExtractText(ctx, *path)
	if err != nil {
		logger.Error("ocr failed", "path", *path, "error", err)
		os.Exit(1)
	}

	logger.Info("ocr ok",
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	for _, w := range res.Warnings {
		logger.Warn("ocr warning", "detail", w)
	}

	if *fields {
		for name, value := range parse.ExtractFields(res.Text) {
			fmt.Printf("%s\t%s\n", name, value)
		}
		return
	}
	fmt.Println(res.Text)
}
