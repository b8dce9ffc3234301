// Package portfolio values holdings against market quotes and aggregates
// them into portfolio-level summaries.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// Service implements the PortfolioService interface
type Service struct {
	holdings interfaces.HoldingsService
	quotes   interfaces.QuoteProvider
	logger   *common.Logger
	now      func() time.Time
}

// NewService creates a portfolio service
func NewService(holdings interfaces.HoldingsService, quotes interfaces.QuoteProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		holdings: holdings,
		quotes:   quotes,
		logger:   logger,
		now:      time.Now,
	}
}

// GetPortfolio returns the user's holdings valued at current quotes
func (s *Service) GetPortfolio(ctx context.Context, userID string) ([]*models.ValuedHolding, error) {
	records, err := s.holdings.GetHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.value(ctx, records), nil
}

// GetSummary returns portfolio totals and sector allocation
func (s *Service) GetSummary(ctx context.Context, userID string) (*models.PortfolioSummary, error) {
	valued, err := s.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Summarize(valued), nil
}

// SyncPortfolio refreshes the user's holdings from the configured source and
// returns the new set, valued.
func (s *Service) SyncPortfolio(ctx context.Context, userID string) ([]*models.ValuedHolding, error) {
	records, err := s.holdings.SyncHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("portfolio sync failed: %w", err)
	}
	return s.value(ctx, records), nil
}

// value fetches quotes for the holding symbols and joins them. Quote
// failures degrade to fallback pricing inside Value.
func (s *Service) value(ctx context.Context, records []*models.HoldingRecord) []*models.ValuedHolding {
	symbols := make([]string, 0, len(records))
	for _, record := range records {
		symbols = append(symbols, record.Symbol)
	}

	quotes, err := s.quotes.GetQuotes(ctx, symbols)
	if err != nil {
		s.logger.Warn().Err(err).Int("symbols", len(symbols)).Msg("Quote lookup failed, valuing at cost")
		quotes = map[string]*models.Quote{}
	}

	return Value(records, quotes, s.now())
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
