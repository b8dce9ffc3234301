// Package advisor generates rule-based portfolio recommendations.
package advisor

import (
	"context"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// Service implements the AdvisorService interface
type Service struct {
	holdings interfaces.HoldingsService
	quotes   interfaces.QuoteProvider
	logger   *common.Logger
}

// NewService creates an advisor service
func NewService(holdings interfaces.HoldingsService, quotes interfaces.QuoteProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		holdings: holdings,
		quotes:   quotes,
		logger:   logger,
	}
}

// GetRecommendations evaluates the advisory rules against the user's
// holdings and resolves current prices for the recommended symbols.
// Price resolution is best-effort: a failed lookup leaves the price at 0.
func (s *Service) GetRecommendations(ctx context.Context, userID string) (*models.RecommendationResponse, error) {
	records, err := s.holdings.GetHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := Evaluate(records)

	for i := range response.Recommendations {
		quote, err := s.quotes.GetQuote(ctx, response.Recommendations[i].Symbol)
		if err != nil {
			s.logger.Debug().Err(err).Str("symbol", response.Recommendations[i].Symbol).Msg("Price lookup for recommendation failed")
			continue
		}
		response.Recommendations[i].CurrentPrice = quote.CurrentPrice
	}

	return response, nil
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
