// Package common provides shared test infrastructure
package common

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// MockFinnhubClient implements FinnhubClient for testing
type MockFinnhubClient struct {
	Quotes map[string]*models.Quote
	Err    error

	mu            sync.Mutex
	GetQuoteCalls int
}

// NewMockFinnhubClient creates a mock Finnhub client
func NewMockFinnhubClient() *MockFinnhubClient {
	return &MockFinnhubClient{
		Quotes: make(map[string]*models.Quote),
	}
}

func (m *MockFinnhubClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	m.mu.Lock()
	m.GetQuoteCalls++
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if quote, ok := m.Quotes[symbol]; ok {
		return quote, nil
	}
	return nil, fmt.Errorf("no quote for %s", symbol)
}

// Calls returns the number of GetQuote invocations
func (m *MockFinnhubClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.GetQuoteCalls
}

// MockQuoteProvider implements QuoteProvider for testing
type MockQuoteProvider struct {
	Quotes map[string]*models.Quote
	Err    error
}

// NewMockQuoteProvider creates a mock quote provider
func NewMockQuoteProvider() *MockQuoteProvider {
	return &MockQuoteProvider{
		Quotes: make(map[string]*models.Quote),
	}
}

// SetQuote registers a quote keyed by its symbol
func (m *MockQuoteProvider) SetQuote(quote *models.Quote) {
	m.Quotes[quote.Symbol] = quote
}

func (m *MockQuoteProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if quote, ok := m.Quotes[models.NormalizeSymbol(symbol)]; ok {
		return quote, nil
	}
	return nil, fmt.Errorf("no quote for %s", symbol)
}

func (m *MockQuoteProvider) GetQuotes(ctx context.Context, symbols []string) (map[string]*models.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	quotes := make(map[string]*models.Quote)
	for _, symbol := range symbols {
		symbol = models.NormalizeSymbol(symbol)
		if quote, ok := m.Quotes[symbol]; ok {
			quotes[symbol] = quote
		}
	}
	return quotes, nil
}

// MockHoldingsService implements HoldingsService for testing
type MockHoldingsService struct {
	Holdings  map[string][]*models.HoldingRecord
	SyncCalls int
	Err       error
}

// NewMockHoldingsService creates a mock holdings service
func NewMockHoldingsService() *MockHoldingsService {
	return &MockHoldingsService{
		Holdings: make(map[string][]*models.HoldingRecord),
	}
}

func (m *MockHoldingsService) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if holdings, ok := m.Holdings[userID]; ok {
		return holdings, nil
	}
	return []*models.HoldingRecord{}, nil
}

func (m *MockHoldingsService) Origin() string {
	return "mock"
}

func (m *MockHoldingsService) SyncHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.SyncCalls++
	return m.GetHoldings(ctx, userID)
}

// MockGeminiClient implements GeminiClient for testing
type MockGeminiClient struct {
	Response string
	Err      error
	Prompts  []string
}

// NewMockGeminiClient creates a mock Gemini client
func NewMockGeminiClient() *MockGeminiClient {
	return &MockGeminiClient{Response: "mock commentary"}
}

func (m *MockGeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockHoldingStore implements HoldingStore for testing
type MockHoldingStore struct {
	mu       sync.Mutex
	Holdings map[string][]*models.HoldingRecord
	Err      error
}

// NewMockHoldingStore creates a mock holding store
func NewMockHoldingStore() *MockHoldingStore {
	return &MockHoldingStore{
		Holdings: make(map[string][]*models.HoldingRecord),
	}
}

func (m *MockHoldingStore) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Holdings[userID], nil
}

func (m *MockHoldingStore) ReplaceHoldings(ctx context.Context, userID string, holdings []*models.HoldingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Holdings[userID] = holdings
	return nil
}

// TestQuote builds a quote with the given symbol and price
func TestQuote(symbol string, price float64) *models.Quote {
	return &models.Quote{
		Symbol:        symbol,
		CurrentPrice:  price,
		DayHigh:       price * 1.02,
		DayLow:        price * 0.98,
		Open:          price,
		PreviousClose: price,
		Week52High:    price * 1.4,
		Week52Low:     price * 0.7,
		BuyScore:      70,
		Source:        "test",
		Timestamp:     time.Now(),
	}
}

// TestHolding builds a holding record
func TestHolding(symbol string, quantity, avgCost float64, sector string) *models.HoldingRecord {
	return &models.HoldingRecord{
		Symbol:   symbol,
		Name:     symbol,
		Quantity: quantity,
		AvgCost:  avgCost,
		Sector:   sector,
	}
}

// Interface assertions
var (
	_ interfaces.FinnhubClient   = (*MockFinnhubClient)(nil)
	_ interfaces.QuoteProvider   = (*MockQuoteProvider)(nil)
	_ interfaces.HoldingsService = (*MockHoldingsService)(nil)
	_ interfaces.GeminiClient    = (*MockGeminiClient)(nil)
	_ interfaces.HoldingStore    = (*MockHoldingStore)(nil)
)
