package extract

import (
	"bytes"
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

// extractPDFText reads the text layer of the first maxPages pages, joining
// pages with newlines. Partial text gathered before a failure is kept.
// rsc.io/pdf panics on some malformed files, so the whole pass runs under a
// recover.
func extractPDFText(data []byte, maxPages int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	n := reader.NumPage()
	if n > maxPages {
		n = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		if pt := pageText(reader.Page(i)); pt != "" {
			sb.WriteString(pt)
			sb.WriteString("\n")
		}
		// Keep whatever was gathered so far if a later page panics.
		text = sb.String()
	}
	return text, nil
}

// pageText flattens a page's positioned text fragments into a line-oriented
// string. Fragments on the same baseline are joined with spaces where a
// horizontal gap separates them.
func pageText(page rpdf.Page) string {
	content := page.Content()
	if len(content.Text) == 0 {
		return ""
	}

	var sb strings.Builder
	prev := content.Text[0]
	sb.WriteString(prev.S)
	for _, t := range content.Text[1:] {
		switch {
		case t.Y != prev.Y:
			sb.WriteString("\n")
		case t.X > prev.X+prev.W:
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		prev = t
	}
	return sb.String()
}
