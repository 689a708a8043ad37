package ocr

import (
	"context"
	"fmt"
	"log/slog"
)

// MultiProvider tries each provider in turn and keeps the best result.
// Results are scored by confidence with a mild bonus for longer text, so
// a provider that decodes more of the page wins a near-tie.
type MultiProvider struct {
	providers []Provider
	logger    *slog.Logger
}

func NewMultiProvider(logger *slog.Logger, providers ...Provider) *MultiProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiProvider{providers: providers, logger: logger}
}

func (m *MultiProvider) Name() string { return "multi" }

func (m *MultiProvider) ExtractText(ctx context.Context, path string) (ExtractionResult, error) {
	var best ExtractionResult
	var bestScore float64
	var found bool
	var errs []string

	for _, p := range m.providers {
		res, err := p.ExtractText(ctx, path)
		if err != nil {
			m.logger.Warn("ocr provider failed", "provider", p.Name(), "path", path, "error", err)
			errs = append(errs, fmt.Sprintf("%s: %v", p.Name(), err))
			continue
		}
		score := resultScore(res)
		m.logger.Debug("ocr provider result",
			"provider", p.Name(), "confidence", res.Confidence,
			"chars", len(res.Text), "score", score)
		if !found || score > bestScore {
			best = res
			bestScore = score
			found = true
		}
	}
	if !found {
		return ExtractionResult{Warnings: errs}, fmt.Errorf("all ocr providers failed: %v", errs)
	}
	best.Warnings = append(best.Warnings, errs...)
	return best, nil
}

func resultScore(res ExtractionResult) float64 {
	return float64(res.Confidence) * (1 + float64(len(res.Text))/1000)
}
