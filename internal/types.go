package internal

import "errors"

var (
	// ErrInvalidDocument means the supplied bytes are not a parseable PDF.
	ErrInvalidDocument = errors.New("invalid pdf document")
	// ErrInvalidConfiguration means the pipeline was asked to run with
	// settings outside their allowed range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

type MatchStatus string

const (
	StatusOK       MatchStatus = "OK"
	StatusNotFound MatchStatus = "NAO ENCONTRADO"
)

// ExtractedItem is one candidate line item pulled out of the PDF.
// Immutable once produced by the parser/normalizer.
type ExtractedItem struct {
	Seq         *int
	Code        string
	Description string
	Unit        string
	Qty         *int
}

// CatalogEntry is one row of the local price catalog. Price is nil when the
// source value could not be parsed; such rows still carry market/source
// metadata but never contribute to averages.
type CatalogEntry struct {
	Description string
	Unit        string
	Price       *float64
	Market      string
	Source      string
	Code        string
}

// MatchResult is the per-item outcome of a catalog search. Markets and
// Sources are semicolon-joined, deduplicated, catalog-order lists.
type MatchResult struct {
	AveragePrice *float64
	Status       MatchStatus
	Markets      string
	Sources      string
}

// QuoteRow is one row of the final item table handed to the spreadsheet
// collaborator: the extracted item plus its priced columns.
type QuoteRow struct {
	Item         *int
	Code         string
	Description  string
	Unit         string
	Qty          *int
	SearchQty    int
	AveragePrice *float64
	Status       MatchStatus
	Markets      string
	Sources      string
}
