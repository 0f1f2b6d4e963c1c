package pipeline

import (
	"strings"

	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/config"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

// NormalizeItems coerces raw candidate records into typed items, field by
// field and record by record. It never fails; records that lose their
// description or quantity are filtered out.
func NormalizeItems(cfg config.Config, raw []RawItem) []internal.ExtractedItem {
	out := make([]internal.ExtractedItem, 0, len(raw))
	for _, r := range raw {
		desc := util.CleanDescription(r.Description)
		if desc == "" {
			continue
		}
		qty := util.CoerceInt(r.Qty)
		if qty == nil {
			// Quantity is required downstream for per-unit pricing.
			continue
		}
		out = append(out, internal.ExtractedItem{
			Seq:         util.CoerceInt(r.Seq),
			Code:        formatCode(cfg, r.Code),
			Description: desc,
			Unit:        util.CanonicalUnit(r.Unit),
			Qty:         qty,
		})
	}
	return out
}

// formatCode removes embedded whitespace and, when the digit count matches
// the configured grouping (default three groups of three), re-inserts the
// canonical dot separators. Anything else passes through untouched.
func formatCode(cfg config.Config, code string) string {
	stripped := strings.Join(strings.Fields(code), "")
	if stripped == "" {
		return ""
	}

	digits := strings.Builder{}
	for _, r := range stripped {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.' || r == ' ':
		default:
			return stripped
		}
	}
	if digits.Len() != cfg.CodeGroupCount*cfg.CodeGroupWidth {
		return stripped
	}

	s := digits.String()
	groups := make([]string, 0, cfg.CodeGroupCount)
	for i := 0; i < cfg.CodeGroupCount; i++ {
		groups = append(groups, s[i*cfg.CodeGroupWidth:(i+1)*cfg.CodeGroupWidth])
	}
	return strings.Join(groups, ".")
}
