package extract

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Line is one recognized text line with its confidence score.
type Line struct {
	Text       string
	Confidence float64
}

// OCR recognizes text lines in a raster image.
type OCR interface {
	Recognize(data []byte) ([]Line, error)
}

// TesseractOCR implements OCR using a local Tesseract installation.
type TesseractOCR struct {
	language string
}

// NewTesseractOCR creates a Tesseract-backed OCR engine for the given
// language code (e.g. "eng").
func NewTesseractOCR(language string) *TesseractOCR {
	return &TesseractOCR{language: language}
}

func (t *TesseractOCR) Recognize(data []byte) ([]Line, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if t.language != "" {
		if err := client.SetLanguage(t.language); err != nil {
			return nil, fmt.Errorf("setting ocr language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("recognizing text: %w", err)
	}

	lines := make([]Line, 0, len(boxes))
	for _, box := range boxes {
		lines = append(lines, Line{Text: box.Word, Confidence: box.Confidence})
	}
	return lines, nil
}
