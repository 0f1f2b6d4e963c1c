package catalog

import (
	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

// Index is the read-only, in-memory form of the catalog. Entries keep file
// order so matching and aggregation stay deterministic; NormDesc holds the
// comparison form of each description, ByCode maps normalized codes to
// entry positions.
type Index struct {
	Entries  []internal.CatalogEntry
	NormDesc []string
	ByCode   map[string][]int
}

func BuildIndex(entries []internal.CatalogEntry) *Index {
	idx := &Index{
		Entries:  entries,
		NormDesc: make([]string, len(entries)),
		ByCode:   map[string][]int{},
	}

	for i, e := range entries {
		idx.NormDesc[i] = util.NormalizeDescription(e.Description)
		if code := util.NormalizeCode(e.Code); code != "" {
			idx.ByCode[code] = append(idx.ByCode[code], i)
		}
	}

	return idx
}

func (ix *Index) Len() int {
	return len(ix.Entries)
}
