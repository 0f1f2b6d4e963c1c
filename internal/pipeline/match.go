package pipeline

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/catalog"
	"github.com/projetoapollo/LICITANDO/internal/config"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

type Matcher struct {
	cfg   config.Config
	index *catalog.Index
	score func(a, b string) float64
}

func NewMatcher(cfg config.Config, index *catalog.Index) *Matcher {
	score := util.TokenSetSimilarity
	if cfg.SimilarityFunc == config.SimilarityChars {
		score = util.CharSimilarity
	}
	return &Matcher{cfg: cfg, index: index, score: score}
}

// Match resolves one extracted item against the catalog. An exact
// normalized-code hit with at least one parsable price takes precedence
// and skips description matching entirely; otherwise every entry whose
// normalized description scores at or above the threshold qualifies.
// No qualifying entry is a normal outcome, not an error.
func (m *Matcher) Match(item internal.ExtractedItem) internal.MatchResult {
	if code := util.NormalizeCode(item.Code); code != "" {
		hits := m.index.ByCode[code]
		if len(hits) > 0 && m.anyPriced(hits) {
			return m.aggregate(hits)
		}
	}

	query := util.NormalizeDescription(item.Description)
	hits := []int{}
	if query != "" {
		for i, candidate := range m.index.NormDesc {
			if m.score(query, candidate) >= m.cfg.MinSimilarity {
				hits = append(hits, i)
			}
		}
	}
	if len(hits) == 0 {
		return internal.MatchResult{Status: internal.StatusNotFound}
	}
	return m.aggregate(hits)
}

func (m *Matcher) anyPriced(hits []int) bool {
	for _, i := range hits {
		if m.index.Entries[i].Price != nil {
			return true
		}
	}
	return false
}

// aggregate folds the matched entries, in catalog order, into one result:
// the configured average over parsable prices plus deduplicated
// market/source labels. Priceless entries still contribute labels.
func (m *Matcher) aggregate(hits []int) internal.MatchResult {
	prices := make([]float64, 0, len(hits))
	markets := make([]string, 0, len(hits))
	sources := make([]string, 0, len(hits))
	for _, i := range hits {
		e := m.index.Entries[i]
		if e.Price != nil {
			prices = append(prices, *e.Price)
		}
		markets = appendUnique(markets, e.Market)
		sources = appendUnique(sources, e.Source)
	}

	result := internal.MatchResult{
		Status:  internal.StatusNotFound,
		Markets: strings.Join(markets, "; "),
		Sources: strings.Join(sources, "; "),
	}
	if avg := m.averagePrice(prices); avg != nil {
		result.AveragePrice = avg
		result.Status = internal.StatusOK
	}
	return result
}

func (m *Matcher) averagePrice(prices []float64) *float64 {
	if m.cfg.AveragePolicy == config.AveragePolicyTrimmed {
		prices = trimPrices(prices, m.cfg.TrimCutoff)
	}
	if len(prices) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(decimal.NewFromFloat(p))
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(prices)))).Float64()
	return &avg
}

// trimPrices is the explicitly selected alternative policy: discard the
// single lowest price, then keep only prices at or above cutoff*max.
// It never trims down to nothing; a set that would vanish is returned as
// the post-lowest-trim slice instead.
func trimPrices(prices []float64, cutoff float64) []float64 {
	if len(prices) <= 1 {
		return prices
	}
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)
	sorted = sorted[1:]

	max := sorted[len(sorted)-1]
	kept := make([]float64, 0, len(sorted))
	for _, p := range sorted {
		if p >= cutoff*max {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return sorted
	}
	return kept
}

func appendUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
