// Package interfaces defines service contracts for Vantage
package interfaces

import (
	"context"

	"github.com/dkellaway/vantage/internal/models"
)

// FinnhubClient provides access to the Finnhub market data API
type FinnhubClient interface {
	// GetQuote retrieves a live quote for a symbol. A quote with both
	// CurrentPrice and PreviousClose at zero means the symbol is unknown
	// upstream and is reported as ErrSymbolNotFound.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// GeminiClient provides access to the Gemini API
type GeminiClient interface {
	// GenerateContent generates AI content from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
