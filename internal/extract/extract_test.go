package extract

import (
	"errors"
	"strings"
	"testing"
)

// fakeOCR implements OCR with canned lines, recording whether it ran.
type fakeOCR struct {
	lines  []Line
	err    error
	called bool
}

func (f *fakeOCR) Recognize(data []byte) ([]Line, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

func TestExtractNonPDFUsesOCR(t *testing.T) {
	ocr := &fakeOCR{lines: []Line{
		{Text: "PRESSURE RELIEF VALVE", Confidence: 91.2},
		{Text: "Rated to 150 PSI", Confidence: 88.0},
	}}
	e := New(ocr)

	got := e.Extract([]byte("not a real image"), "diagram.png")

	if !ocr.called {
		t.Fatal("expected OCR pass to run for non-PDF input")
	}
	want := "PRESSURE RELIEF VALVE\nRated to 150 PSI"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractMalformedPDFFallsBackToOCR(t *testing.T) {
	ocr := &fakeOCR{lines: []Line{{Text: "scanned page text", Confidence: 80}}}
	e := New(ocr)

	// Garbage bytes with a .pdf name: the text-layer pass fails and is
	// swallowed, then OCR runs because the gathered text is short.
	got := e.Extract([]byte("%PDF-not really"), "scan.PDF")

	if !ocr.called {
		t.Fatal("expected OCR pass after text-layer failure")
	}
	if got != "scanned page text" {
		t.Errorf("got %q", got)
	}
}

func TestExtractOCRFailureYieldsEmpty(t *testing.T) {
	ocr := &fakeOCR{err: errors.New("tesseract not installed")}
	e := New(ocr)

	got := e.Extract([]byte("garbage"), "photo.jpg")
	if got != "" {
		t.Errorf("expected empty text when OCR fails, got %q", got)
	}
}

func TestExtractJoinsLinesInEngineOrder(t *testing.T) {
	ocr := &fakeOCR{lines: []Line{
		{Text: "third", Confidence: 10},
		{Text: "first", Confidence: 99},
		{Text: "second", Confidence: 50},
	}}
	e := New(ocr)

	got := e.Extract(nil, "page.png")
	if got != "third\nfirst\nsecond" {
		t.Errorf("lines must keep engine order, got %q", got)
	}
}

func TestExtractPDFTextRejectsGarbage(t *testing.T) {
	_, err := extractPDFText([]byte("definitely not a pdf"), 10)
	if err == nil {
		t.Fatal("expected error for garbage bytes")
	}
}

func TestExtractLongOCRTextNotTruncated(t *testing.T) {
	long := strings.Repeat("line of recognized text ", 10)
	ocr := &fakeOCR{lines: []Line{{Text: long, Confidence: 95}}}
	e := New(ocr)

	if got := e.Extract(nil, "big.png"); got != long {
		t.Errorf("unexpected truncation: got %d chars, want %d", len(got), len(long))
	}
}
