package util

import "testing"

func TestNormalizeDescription(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"ADAPTADOR PVC 3/4", "adaptador pvc 3/4"},
		{"  Conexão   p/ Água  ", "conexao p/ agua"},
		{"TUBO---PVC__100mm", "tubo pvc 100mm"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDescription(tc.input); got != tc.want {
			t.Fatalf("NormalizeDescription(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("047.003.388"); got != "047003388" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeCode(" 047 003 388 "); got != "047003388" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeCode("abc-123"); got != "ABC123" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanDescription(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"CIMENTO   CP II...........", "CIMENTO CP II"},
		{"---TELHA  CERAMICA___", "TELHA CERAMICA"},
		{" .. ", ""},
	}
	for _, tc := range cases {
		if got := CleanDescription(tc.input); got != tc.want {
			t.Fatalf("CleanDescription(%q)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestTokenSetSimilarity(t *testing.T) {
	a := NormalizeDescription("ADAPTADOR PVC 3/4")
	if got := TokenSetSimilarity(a, a); got != 1.0 {
		t.Fatalf("identical strings score %v", got)
	}

	// Word reordering must not change the token-set score.
	b := NormalizeDescription("PVC 3/4 ADAPTADOR")
	if got := TokenSetSimilarity(a, b); got != 1.0 {
		t.Fatalf("reordered strings score %v", got)
	}

	if got := TokenSetSimilarity(a, ""); got != 0 {
		t.Fatalf("empty candidate score %v", got)
	}

	partial := TokenSetSimilarity(NormalizeDescription("ADAPTADOR PVC"), NormalizeDescription("ADAPTADOR PVC SOLDAVEL"))
	if partial <= 0 || partial >= 1 {
		t.Fatalf("partial overlap score %v", partial)
	}

	// Repeated words count once.
	if got := TokenSetSimilarity(a, NormalizeDescription("ADAPTADOR ADAPTADOR PVC 3/4")); got != 1.0 {
		t.Fatalf("duplicated token score %v", got)
	}
}

func TestCharSimilarity(t *testing.T) {
	if got := CharSimilarity("adaptador", "adaptador"); got != 1.0 {
		t.Fatalf("identical score %v", got)
	}
	if got := CharSimilarity("adaptador", ""); got != 0 {
		t.Fatalf("empty score %v", got)
	}
	close := CharSimilarity("adaptador pvc", "adaptador pvf")
	far := CharSimilarity("adaptador pvc", "telha ceramica")
	if close <= far {
		t.Fatalf("close=%v far=%v", close, far)
	}
}
