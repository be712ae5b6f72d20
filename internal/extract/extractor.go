// Package extract turns uploaded document bytes into best-effort plain text.
// Digital PDFs are read through their text layer; documents with little or no
// extractable text are treated as scanned and handed to OCR. Neither pass
// returns an error to the caller — an empty result is the failure signal.
package extract

import (
	"log"
	"strings"
)

const (
	// maxPDFPages bounds the text-layer pass on large documents.
	maxPDFPages = 10
	// ocrTriggerThreshold is the text length below which a PDF is assumed
	// to be scanned and the OCR pass runs.
	ocrTriggerThreshold = 50
)

// Extractor extracts plain text from uploaded files.
type Extractor struct {
	ocr OCR
}

// New creates an Extractor using the given OCR engine for scanned documents.
func New(ocr OCR) *Extractor {
	return &Extractor{ocr: ocr}
}

// Extract returns the best-effort plain text of the given file. The filename
// is only a hint for the PDF text-layer pass; the returned text may be empty.
func (e *Extractor) Extract(data []byte, filename string) string {
	var text string

	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		pdfText, err := extractPDFText(data, maxPDFPages)
		if err != nil {
			log.Printf("[READ] PDF error: %v", err)
		}
		text = pdfText
	}

	if len(text) < ocrTriggerThreshold {
		lines, err := e.ocr.Recognize(data)
		if err != nil {
			log.Printf("[OCR] error: %v", err)
		} else {
			var parts []string
			for _, line := range lines {
				parts = append(parts, line.Text)
			}
			text += strings.Join(parts, "\n")
		}
	}

	return text
}
