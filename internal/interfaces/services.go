// Package interfaces defines service contracts for Vantage
package interfaces

import (
	"context"

	"github.com/dkellaway/vantage/internal/models"
)

// QuoteProvider returns market quotes for symbols. Implementations never
// fail a lookup outright: when live data is unavailable they degrade to a
// deterministic synthetic quote so valuation always completes.
type QuoteProvider interface {
	// GetQuote returns the quote for one symbol.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetQuotes returns quotes for a set of symbols, keyed by normalized
	// symbol. Lookups for distinct symbols may run concurrently.
	GetQuotes(ctx context.Context, symbols []string) (map[string]*models.Quote, error)
}

// HoldingsSource supplies the canonical holding records for a user.
// Implementations: built-in demo snapshot, PDF statement parse, persisted store.
type HoldingsSource interface {
	// GetHoldings returns the holding records for a user.
	GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error)

	// Origin names the backing source ("demo", "statement", "store").
	Origin() string
}

// HoldingsService layers replace-all sync on top of a persisted store,
// importing from an origin HoldingsSource.
type HoldingsService interface {
	HoldingsSource

	// SyncHoldings re-imports the user's holdings from the origin source,
	// atomically replacing the persisted set, and returns the new records.
	SyncHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error)
}

// PortfolioService values holdings and aggregates portfolio statistics.
type PortfolioService interface {
	// GetPortfolio returns the user's holdings joined with current quotes.
	GetPortfolio(ctx context.Context, userID string) ([]*models.ValuedHolding, error)

	// GetSummary reduces the valued holdings into portfolio totals.
	GetSummary(ctx context.Context, userID string) (*models.PortfolioSummary, error)

	// SyncPortfolio replaces the user's holdings from the origin source
	// and returns the freshly valued set.
	SyncPortfolio(ctx context.Context, userID string) ([]*models.ValuedHolding, error)

	// RenderAllocationChart renders the sector allocation as a PNG donut.
	RenderAllocationChart(ctx context.Context, userID string) ([]byte, error)
}

// InsightService classifies holdings against their 52-week ranges and
// sector spread.
type InsightService interface {
	GetInsights(ctx context.Context, userID string) (*models.InsightReport, error)
}

// AdvisorService applies the rule-based recommendation engine.
type AdvisorService interface {
	GetRecommendations(ctx context.Context, userID string) (*models.RecommendationResponse, error)
}
