package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projetoapollo/LICITANDO/internal/config"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

// RawItem is one candidate record straight out of a table row or text
// line, all fields still untyped strings. The normalizer does coercion.
type RawItem struct {
	Seq         string
	Code        string
	Description string
	Unit        string
	Qty         string
}

// headerAliases maps normalized header-cell spellings to canonical fields.
// Normalization lowercases, strips accents and trailing punctuation, so
// "Descrição", "DESCRICAO" and "descr." all land on description.
var headerAliases = map[string][]string{
	"seq":         {"no", "n", "num", "numero"},
	"code":        {"codigo", "cod"},
	"description": {"descricao", "descr", "produto"},
	"unit":        {"unidade", "unid", "und", "uni", "un"},
	"qty":         {"qtd", "qtde", "quantidade"},
}

type Parser struct {
	cfg         config.Config
	linePattern *regexp.Regexp
}

func NewParser(cfg config.Config) *Parser {
	return &Parser{cfg: cfg, linePattern: buildLinePattern(cfg)}
}

// buildLinePattern compiles the fixed-shape fallback pattern: sequence
// number, grouped-digit product code (group count/width from config),
// non-greedy description, unit token from the fixed vocabulary, trailing
// quantity.
func buildLinePattern(cfg config.Config) *regexp.Regexp {
	code := fmt.Sprintf(`\d{%d}(?:[. ]\d{%d}){%d}`, cfg.CodeGroupWidth, cfg.CodeGroupWidth, cfg.CodeGroupCount-1)
	expr := `(?i)^\s*(\d+)\s+(` + code + `)\s+(.+?)\s+(` + util.UnitAlternation() + `)\.?\s+(\d+(?:[.,]\d+)?)\s*$`
	return regexp.MustCompile(expr)
}

// Parse applies the two extraction strategies in priority order: table
// grids with a mappable header first, the line pattern over raw text
// otherwise. Yielding no records is not an error; the caller reports the
// empty table as "no items found".
func (p *Parser) Parse(doc *Document) []RawItem {
	if items := p.parseGrids(doc); len(items) > 0 {
		return items
	}
	return p.parseLines(doc)
}

func (p *Parser) parseGrids(doc *Document) []RawItem {
	out := []RawItem{}
	for _, page := range doc.Pages {
		if len(page.Grid) < 2 {
			continue
		}
		cols := mapHeader(page.Grid[0])
		if cols["description"] < 0 {
			continue
		}
		for _, row := range page.Grid[1:] {
			out = append(out, RawItem{
				Seq:         pickCell(row, cols["seq"]),
				Code:        pickCell(row, cols["code"]),
				Description: pickCell(row, cols["description"]),
				Unit:        pickCell(row, cols["unit"]),
				Qty:         pickCell(row, cols["qty"]),
			})
		}
	}
	return out
}

func (p *Parser) parseLines(doc *Document) []RawItem {
	out := []RawItem{}
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			m := p.linePattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			out = append(out, RawItem{
				Seq:         m[1],
				Code:        m[2],
				Description: m[3],
				Unit:        m[4],
				Qty:         m[5],
			})
		}
	}
	return out
}

// mapHeader resolves header cells to canonical field columns. The first
// matching alias wins per field; unmapped columns stay out of play.
func mapHeader(header []string) map[string]int {
	cols := map[string]int{"seq": -1, "code": -1, "description": -1, "unit": -1, "qty": -1}
	for i, cell := range header {
		norm := normalizeHeaderCell(cell)
		if norm == "" {
			continue
		}
		for field, aliases := range headerAliases {
			if cols[field] >= 0 {
				continue
			}
			for _, alias := range aliases {
				if norm == alias {
					cols[field] = i
					break
				}
			}
		}
	}

	// "item" is a description synonym in some layouts but labels the
	// ordinal column when a real description header is present, so it
	// only applies as a fallback.
	if cols["description"] < 0 {
		for i, cell := range header {
			if normalizeHeaderCell(cell) == "item" {
				cols["description"] = i
				break
			}
		}
	}
	return cols
}

func normalizeHeaderCell(cell string) string {
	s := strings.ToLower(util.StripAccents(cell))
	s = strings.NewReplacer("º", "", "°", "", ".", "", ":", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func pickCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
