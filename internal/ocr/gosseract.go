package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/SmritaPandey/OCR-admission-forms/constants"
)

// GosseractProvider runs tesseract in-process through its C API. It skips
// the exec round-trip and reports per-word confidence, but only handles
// image inputs; PDFs stay with the exec extractor.
type GosseractProvider struct {
	lang          string
	clientFactory func() *gosseract.Client
	logger        *slog.Logger
}

func NewGosseractProvider(lang string, logger *slog.Logger) *GosseractProvider {
	if lang == "" {
		lang = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GosseractProvider{
		lang:          lang,
		clientFactory: gosseract.NewClient,
		logger:        logger,
	}
}

func (p *GosseractProvider) Name() string { return "gosseract" }

func (p *GosseractProvider) ExtractText(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) != constants.IMAGE {
		return ExtractionResult{}, fmt.Errorf("gosseract: unsupported extension: %q", ext)
	}
	select {
	case <-ctx.Done():
		return ExtractionResult{}, ctx.Err()
	default:
	}

	c := p.clientFactory()
	defer func() {
		if err := c.Close(); err != nil {
			p.logger.Warn("failed to close gosseract client", "error", err)
		}
	}()

	if err := c.SetImage(path); err != nil {
		return ExtractionResult{}, fmt.Errorf("gosseract: set image: %w", err)
	}
	if err := c.SetLanguage(p.lang); err != nil {
		return ExtractionResult{}, fmt.Errorf("gosseract: set language: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("gosseract: recognize: %w", err)
	}
	text = Normalize(text)

	conf := wordConfidence(c)
	return ExtractionResult{
		Text:       text,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "gosseract",
		Language:   p.lang,
		Duration:   time.Since(start),
		Confidence: blendConfidence(conf, heuristicConfidence(text)),
	}, nil
}

// wordConfidence averages per-word confidence from the recognizer, 0..1.
func wordConfidence(c *gosseract.Client) float32 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence / 100.0
	}
	return float32(sum / float64(len(boxes)))
}
