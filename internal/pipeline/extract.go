package pipeline

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/projetoapollo/LICITANDO/internal"
)

// PageContent is the raw material pulled from one PDF page: a best-effort
// cell grid where the page has tabular layout, and plain text lines as the
// fallback. Pages with no text contribute empty slices, not errors.
type PageContent struct {
	Number int
	Grid   [][]string
	Lines  []string
}

type Document struct {
	Pages []PageContent
}

// ExtractPDF reads every page of a PDF byte stream. It fails only when the
// bytes are not a parseable PDF container; that error wraps
// internal.ErrInvalidDocument and must reach the caller.
func ExtractPDF(content []byte) (doc *Document, err error) {
	// The pdf package panics on some malformed cross-reference tables;
	// fold those into the invalid-document error.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", internal.ErrInvalidDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internal.ErrInvalidDocument, err)
	}

	doc = &Document{Pages: make([]PageContent, 0, r.NumPage())}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		page := PageContent{Number: i}
		if p.V.IsNull() {
			doc.Pages = append(doc.Pages, page)
			continue
		}

		if rows, rowErr := p.GetTextByRow(); rowErr == nil {
			page.Grid = gridFromRows(rows)
		}
		if text, textErr := p.GetPlainText(nil); textErr == nil {
			page.Lines = splitLines(text)
		}

		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// gridFromRows groups each visual row's text fragments into cells, starting
// a new cell wherever the horizontal gap is wider than roughly two spaces.
func gridFromRows(rows pdf.Rows) [][]string {
	sorted := make(pdf.Rows, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	grid := make([][]string, 0, len(sorted))
	for _, row := range sorted {
		cells := cellsFromFragments(row.Content)
		if len(cells) >= 2 {
			grid = append(grid, cells)
		}
	}
	if len(grid) < 2 {
		return nil
	}
	return grid
}

func cellsFromFragments(fragments pdf.TextHorizontal) []string {
	frags := make([]pdf.Text, 0, len(fragments))
	for _, f := range fragments {
		if f.S != "" {
			frags = append(frags, f)
		}
	}
	if len(frags) == 0 {
		return nil
	}
	sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	cells := []string{}
	var cell strings.Builder
	prevEnd := frags[0].X

	for i, f := range frags {
		wordGap, cellGap := gapsFor(f.FontSize)
		gap := f.X - prevEnd
		switch {
		case i == 0:
		case gap > cellGap:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		case gap > wordGap:
			cell.WriteByte(' ')
		}
		cell.WriteString(f.S)
		prevEnd = f.X + f.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}

	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func gapsFor(fontSize float64) (word, cell float64) {
	if fontSize <= 0 {
		return 2.5, 14.0
	}
	return fontSize * 0.30, fontSize * 1.8
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
