package util

import (
	"sort"
	"strings"
)

// canonicalUnits maps uppercased, accent-stripped unit spellings to the one
// canonical spelling used downstream. Keys cover the abbreviations seen in
// municipal quotation PDFs.
var canonicalUnits = map[string]string{
	"UN":       "UNIDADE",
	"UNI":      "UNIDADE",
	"UNID":     "UNIDADE",
	"UND":      "UNIDADE",
	"UNIDADE":  "UNIDADE",
	"PC":       "PECA",
	"PECA":     "PECA",
	"PECAS":    "PECA",
	"M":        "METRO",
	"MT":       "METRO",
	"METRO":    "METRO",
	"METROS":   "METRO",
	"M2":       "M2",
	"M3":       "M3",
	"CX":       "CAIXA",
	"CAIXA":    "CAIXA",
	"PCT":      "PACOTE",
	"PACOTE":   "PACOTE",
	"L":        "LITRO",
	"LT":       "LITRO",
	"LITRO":    "LITRO",
	"KG":       "KG",
	"QUILO":    "KG",
	"SC":       "SACO",
	"SACO":     "SACO",
	"RL":       "ROLO",
	"ROLO":     "ROLO",
	"JG":       "JOGO",
	"JOGO":     "JOGO",
	"BR":       "BARRA",
	"BARRA":    "BARRA",
	"GL":       "GALAO",
	"GALAO":    "GALAO",
	"KIT":      "KIT",
	"PAR":      "PAR",
	"CJ":       "CONJUNTO",
	"CONJUNTO": "CONJUNTO",
}

var unitReplacer = strings.NewReplacer("²", "2", "³", "3")

// CanonicalUnit uppercases and trims a unit token and maps known
// abbreviations to their canonical spelling. Unknown tokens pass through
// unchanged (uppercased) so downstream matching can still degrade gracefully.
func CanonicalUnit(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = strings.TrimSuffix(s, ".")
	s = unitReplacer.Replace(StripAccents(s))
	if canonical, ok := canonicalUnits[s]; ok {
		return canonical
	}
	return s
}

// accentedUnits are raw spellings that appear in PDFs before accent
// folding; they only extend the regex vocabulary.
var accentedUnits = []string{"PÇ", "PEÇA", "PEÇAS", "GALÃO"}

// UnitAlternation is a regex alternation over every known unit spelling,
// longest first so the leftmost-first alternative is also the longest.
func UnitAlternation() string {
	seen := map[string]struct{}{}
	tokens := make([]string, 0, len(canonicalUnits)+len(accentedUnits))
	for _, t := range accentedUnits {
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	for abbrev, canonical := range canonicalUnits {
		for _, t := range []string{abbrev, canonical} {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tokens = append(tokens, t)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return strings.Join(tokens, "|")
}
