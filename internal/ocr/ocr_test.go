package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubRunner struct {
	stdout map[string]string // keyed by binary name
	err    map[string]error
}

func (s stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if err := s.err[name]; err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(s.stdout[name]), nil, nil
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "Name: Jane\r\nDOB: 1/1/2000\r\n", "Name: Jane\nDOB: 1/1/2000"},
		{"tabs and runs", "Name:\t\tJane   Doe", "Name: Jane Doe"},
		{"blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"underscore blanks", "Name: ____________", "Name:"},
		{"rule lines dropped", "Name: Jane\n----------\nCity: Pune", "Name: Jane\n\nCity: Pune"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestHeuristicConfidence_FormTextScoresHigher(t *testing.T) {
	form := "Name: Jane Doe\nDate of Birth: 15/08/2005\nPhone: 9876543210\nEmail: jane@example.com\nFather's Name: Rajesh\nCourse: B.Sc\nAddress: 12 Park Lane, Delhi, a fairly long block of address text"
	junk := "zzzz qqqq"

	if heuristicConfidence(form) <= heuristicConfidence(junk) {
		t.Errorf("form text %v should outscore junk %v",
			heuristicConfidence(form), heuristicConfidence(junk))
	}
	if c := heuristicConfidence(form); c > 1.0 {
		t.Errorf("confidence %v exceeds 1.0", c)
	}
}

func TestBlendConfidence(t *testing.T) {
	if got := blendConfidence(0, 0.5); got != 0.5 {
		t.Errorf("heuristic-only blend = %v, want 0.5", got)
	}
	got := blendConfidence(0.9, 0.5)
	if got <= 0.5 || got >= 0.9 {
		t.Errorf("blend = %v, want between heuristic and ocr confidence", got)
	}
}

func TestExtractor_PDFTextLayerPreferred(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{stdout: map[string]string{
		"pdftotext": "Name: Jane Doe\nDate of Birth: 15/08/2005\nPhone: 9876543210\nCourse: B.Sc Computer Science",
	}}

	res, err := e.ExtractText(context.Background(), "/scans/form.pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if !strings.Contains(res.Text, "Jane Doe") {
		t.Errorf("text lost during extraction: %q", res.Text)
	}
	if res.Confidence <= 0 {
		t.Errorf("confidence = %v, want > 0", res.Confidence)
	}
}

func TestExtractor_ImageOCR(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{stdout: map[string]string{
		"tesseract": "Name: Jane Doe\nDOB: 15/08/2005",
	}}

	res, err := e.ExtractText(context.Background(), "/scans/form.jpg")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Method != "image-ocr" || res.Pages != 1 {
		t.Errorf("method/pages = %q/%d, want image-ocr/1", res.Method, res.Pages)
	}
}

func TestTesseractTSVConfidence(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t90\tName\n" +
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t70\tJane\n" +
		"5\t1\t1\t1\t1\t3\t130\t10\t50\t20\t-1\t\n"
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{stdout: map[string]string{"tesseract": tsv}}

	conf, _, err := e.tesseractTSVConfidence(context.Background(), "/scans/form.jpg")
	if err != nil {
		t.Fatalf("tsv confidence: %v", err)
	}
	// mean of 90 and 70; the -1 row is unrecognized and skipped
	if conf != 0.8 {
		t.Errorf("conf = %v, want 0.8", conf)
	}
}

func TestExtractor_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.ExtractText(context.Background(), "/scans/form.docx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

type fakeProvider struct {
	name string
	res  ExtractionResult
	err  error
}

func (f fakeProvider) Name() string { return f.name }
func (f fakeProvider) ExtractText(context.Context, string) (ExtractionResult, error) {
	return f.res, f.err
}

func TestMultiProvider_PicksBestScore(t *testing.T) {
	short := fakeProvider{name: "short", res: ExtractionResult{Text: "Name: J", Confidence: 0.8}}
	long := fakeProvider{name: "long", res: ExtractionResult{
		Text:       strings.Repeat("Name: Jane Doe\n", 40),
		Confidence: 0.7,
	}}

	m := NewMultiProvider(nil, short, long)
	res, err := m.ExtractText(context.Background(), "/scans/form.jpg")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	// 0.7 * (1 + 600/1000) beats 0.8 * (1 + ~0)
	if res.Confidence != 0.7 {
		t.Errorf("picked provider with confidence %v, want the longer 0.7 result", res.Confidence)
	}
}

func TestMultiProvider_SkipsFailures(t *testing.T) {
	bad := fakeProvider{name: "bad", err: errors.New("no dice")}
	good := fakeProvider{name: "good", res: ExtractionResult{Text: "Name: Jane Doe", Confidence: 0.5}}

	m := NewMultiProvider(nil, bad, good)
	res, err := m.ExtractText(context.Background(), "/scans/form.jpg")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Confidence != 0.5 {
		t.Errorf("confidence = %v, want surviving provider result", res.Confidence)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected failed provider to surface as a warning")
	}
}

func TestMultiProvider_AllFail(t *testing.T) {
	m := NewMultiProvider(nil, fakeProvider{name: "a", err: errors.New("x")})
	if _, err := m.ExtractText(context.Background(), "/scans/form.jpg"); err == nil {
		t.Error("expected error when every provider fails")
	}
}
