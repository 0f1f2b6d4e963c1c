package util

import (
	"strings"
	"testing"
)

func TestCanonicalUnit(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"UN", "UNIDADE"},
		{"unid", "UNIDADE"},
		{"UND.", "UNIDADE"},
		{"PC", "PECA"},
		{"PEÇA", "PECA"},
		{"peças", "PECA"},
		{"M", "METRO"},
		{"mt", "METRO"},
		{"M²", "M2"},
		{"CX", "CAIXA"},
		{"GALÃO", "GALAO"},
		{"FARDO", "FARDO"}, // unknown tokens pass through uppercased
		{" kg ", "KG"},
	}
	for _, tc := range cases {
		if got := CanonicalUnit(tc.input); got != tc.want {
			t.Fatalf("CanonicalUnit(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestCanonicalUnitRoundTrip(t *testing.T) {
	// Every canonical spelling must map to itself.
	for _, canonical := range canonicalUnits {
		if got := CanonicalUnit(canonical); got != canonical {
			t.Fatalf("canonical %q re-normalized to %q", canonical, got)
		}
	}
}

func TestUnitAlternation(t *testing.T) {
	alt := UnitAlternation()
	tokens := strings.Split(alt, "|")
	for i := 1; i < len(tokens); i++ {
		if len(tokens[i]) > len(tokens[i-1]) {
			t.Fatalf("alternation not longest-first: %q before %q", tokens[i-1], tokens[i])
		}
	}
	if !strings.Contains(alt, "UNIDADE") || !strings.Contains(alt, "PEÇA") {
		t.Fatalf("vocabulary incomplete: %s", alt)
	}
}
