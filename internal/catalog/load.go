// Package catalog loads and indexes the local price catalog file.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

// catalogRow mirrors the recognized CSV columns. Missing columns stay
// empty; unrecognized columns are ignored by gocsv.
type catalogRow struct {
	Descricao string `csv:"descricao"`
	Unidade   string `csv:"unidade"`
	Preco     string `csv:"preco"`
	Mercado   string `csv:"mercado"`
	Fonte     string `csv:"fonte"`
	Codigo    string `csv:"codigo"`
}

func init() {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.LazyQuotes = true
		r.TrimLeadingSpace = true
		r.FieldsPerRecord = -1
		return r
	})
}

// Load reads the catalog at path into an indexed form. A missing file is
// the supported degraded mode and yields an empty index with no error;
// an unreadable or malformed file is reported to the caller, who decides
// whether to proceed without prices.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return BuildIndex(nil), nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var rows []catalogRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]internal.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		desc := strings.TrimSpace(row.Descricao)
		if desc == "" {
			continue
		}
		entries = append(entries, internal.CatalogEntry{
			Description: desc,
			Unit:        util.CanonicalUnit(row.Unidade),
			Price:       util.ParsePrice(row.Preco),
			Market:      strings.TrimSpace(row.Mercado),
			Source:      strings.TrimSpace(row.Fonte),
			Code:        strings.TrimSpace(row.Codigo),
		})
	}

	return BuildIndex(entries), nil
}
