package pipeline

import (
	"errors"
	"reflect"
	"testing"

	pdf "github.com/ledongthuc/pdf"

	"github.com/projetoapollo/LICITANDO/internal"
)

func TestExtractPDFRejectsGarbage(t *testing.T) {
	_, err := ExtractPDF([]byte("%NOT A PDF"))
	if !errors.Is(err, internal.ErrInvalidDocument) {
		t.Fatalf("err=%v", err)
	}
}

func frag(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w, FontSize: 10}
}

func TestCellsFromFragments(t *testing.T) {
	// Three clusters separated by wide gaps, the middle one split into
	// word-sized gaps that must stay in a single cell.
	row := pdf.TextHorizontal{
		frag("1", 10, 6),
		frag("ADAPTADOR", 60, 54),
		frag("PVC", 118, 18),
		frag("10", 300, 12),
	}

	cells := cellsFromFragments(row)
	want := []string{"1", "ADAPTADOR PVC", "10"}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("cells=%v", cells)
	}
}

func TestCellsFromFragmentsUnsorted(t *testing.T) {
	row := pdf.TextHorizontal{
		frag("B", 200, 6),
		frag("A", 10, 6),
	}
	cells := cellsFromFragments(row)
	if !reflect.DeepEqual(cells, []string{"A", "B"}) {
		t.Fatalf("cells=%v", cells)
	}
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("primeira\r\n\r\n  segunda  \nterceira")
	want := []string{"primeira", "segunda", "terceira"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines=%v", lines)
	}
}
