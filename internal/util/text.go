package util

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	rePunct  = regexp.MustCompile(`[^a-z0-9/\s]`)
	reSpaces = regexp.MustCompile(`\s+`)
	reFill   = regexp.MustCompile(`^[\s.\-_:]+|[\s.\-_:]+$`)

	accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// StripAccents folds accented letters to their base form (ç -> c, ã -> a).
func StripAccents(input string) string {
	out, _, err := transform.String(accentFold, input)
	if err != nil {
		return input
	}
	return out
}

// NormalizeDescription produces the comparison form of a description:
// lowercased, accents stripped, punctuation collapsed to single spaces.
// Display values keep their original spelling.
func NormalizeDescription(input string) string {
	s := strings.ToLower(StripAccents(input))
	s = rePunct.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeCode strips whitespace and separators, keeping only the
// alphanumeric body used for exact lookups.
func NormalizeCode(input string) string {
	out := strings.Builder{}
	for _, r := range strings.ToUpper(input) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// CleanDescription trims PDF fill characters (dot leaders, dashes,
// underscores) and collapses interior whitespace, preserving case.
func CleanDescription(input string) string {
	s := reSpaces.ReplaceAllString(input, " ")
	s = reFill.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func Tokenize(input string) []string {
	parts := strings.Split(NormalizeDescription(input), " ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TokenSetSimilarity is the Jaccard overlap of the two descriptions' word
// sets. Both inputs must already be in normalized form.
func TokenSetSimilarity(a, b string) float64 {
	aTokens := Tokenize(a)
	bTokens := Tokenize(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	aSet := map[string]struct{}{}
	for _, t := range aTokens {
		aSet[t] = struct{}{}
	}
	bSet := map[string]struct{}{}
	for _, t := range bTokens {
		bSet[t] = struct{}{}
	}

	union := len(aSet)
	inter := 0
	for t := range bSet {
		if _, ok := aSet[t]; ok {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

// CharSimilarity is a character-sequence ratio in [0,1] derived from the
// Levenshtein distance between the normalized strings.
func CharSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	aLen := len([]rune(a))
	bLen := len([]rune(b))
	longest := aLen
	if bLen > longest {
		longest = bLen
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	if dist >= longest {
		return 0
	}
	return 1 - float64(dist)/float64(longest)
}
