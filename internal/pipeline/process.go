package pipeline

import (
	"go.uber.org/zap"

	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/catalog"
	"github.com/projetoapollo/LICITANDO/internal/config"
	"github.com/projetoapollo/LICITANDO/internal/logger"
)

// Service is the pipeline entry point for external collaborators: one PDF
// byte stream in, one priced item table out. It owns every intermediate
// structure for the duration of a call and keeps no state between calls
// beyond the catalog cache.
type Service struct {
	cfg    config.Config
	cache  *catalog.Cache
	parser *Parser
	log    *zap.SugaredLogger
}

// NewService validates the configuration before anything runs; an
// out-of-range threshold is rejected here, not midway through a document.
func NewService(cfg config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		cfg:    cfg,
		cache:  catalog.NewCache(),
		parser: NewParser(cfg),
		log:    logger.L(),
	}, nil
}

// ProcessPDF runs extraction, parsing, normalization and matching in
// sequence. An unparseable document propagates as ErrInvalidDocument; an
// unreadable catalog degrades to an empty one (every item unpriced); zero
// extracted items yields an empty table, not an error.
func (s *Service) ProcessPDF(content []byte) ([]internal.QuoteRow, error) {
	index, err := s.cache.Load(s.cfg.CatalogPath)
	if err != nil {
		s.log.Warnw("catalog unavailable, matching without prices", "path", s.cfg.CatalogPath, "error", err)
		index = catalog.BuildIndex(nil)
	}

	doc, err := ExtractPDF(content)
	if err != nil {
		return nil, err
	}

	raw := s.parser.Parse(doc)
	items := NormalizeItems(s.cfg, raw)
	if len(items) == 0 {
		s.log.Infow("no items found", "pages", len(doc.Pages), "candidates", len(raw))
		return []internal.QuoteRow{}, nil
	}
	if dropped := len(raw) - len(items); dropped > 0 {
		s.log.Debugw("dropped unusable candidate records", "dropped", dropped)
	}

	matcher := NewMatcher(s.cfg, index)
	rows := make([]internal.QuoteRow, 0, len(items))
	for _, item := range items {
		match := matcher.Match(item)
		rows = append(rows, internal.QuoteRow{
			Item:         item.Seq,
			Code:         item.Code,
			Description:  item.Description,
			Unit:         item.Unit,
			Qty:          item.Qty,
			SearchQty:    1,
			AveragePrice: match.AveragePrice,
			Status:       match.Status,
			Markets:      match.Markets,
			Sources:      match.Sources,
		})
	}

	s.log.Infow("pdf processed", "items", len(rows), "catalogEntries", index.Len())
	return rows, nil
}
