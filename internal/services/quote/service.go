// Package quote provides market quote retrieval with caching and a
// deterministic synthetic fallback.
package quote

import (
	"context"
	"sync"
	"time"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

const DefaultCacheTTL = 60 * time.Second

// inflight tracks an upstream fetch in progress for a symbol
type inflight struct {
	done  chan struct{}
	quote *models.Quote
}

// Service implements the QuoteProvider interface. It consults a live client
// when one is configured, falls back to synthetic quotes otherwise, and
// caches results per symbol. Concurrent requests for the same symbol share a
// single upstream call.
type Service struct {
	client interfaces.FinnhubClient
	cache  *quoteCache
	logger *common.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]*inflight
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithCacheTTL sets the quote cache time-to-live
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.cache = newQuoteCache(ttl, s.now)
		}
	}
}

// WithClock sets the time source, used by tests
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
		s.cache = newQuoteCache(s.cache.ttl, now)
	}
}

// NewService creates a quote service. The client may be nil, in which case
// every quote is synthetic.
func NewService(client interfaces.FinnhubClient, logger *common.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	s := &Service{
		client:  client,
		logger:  logger,
		now:     time.Now,
		pending: make(map[string]*inflight),
	}
	s.cache = newQuoteCache(DefaultCacheTTL, s.now)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetQuote returns a quote for a symbol. A live lookup failure degrades to a
// synthetic quote rather than an error; the only error is context
// cancellation while waiting on a shared in-flight fetch.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = models.NormalizeSymbol(symbol)

	if quote, ok := s.cache.Get(symbol); ok {
		return quote, nil
	}

	s.mu.Lock()
	if call, ok := s.pending[symbol]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.quote, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflight{done: make(chan struct{})}
	s.pending[symbol] = call
	s.mu.Unlock()

	quote := s.fetch(ctx, symbol)
	s.cache.Set(symbol, quote)

	s.mu.Lock()
	call.quote = quote
	delete(s.pending, symbol)
	s.mu.Unlock()
	close(call.done)

	return quote, nil
}

// fetch resolves a quote from the live client, falling back to synthetic
func (s *Service) fetch(ctx context.Context, symbol string) *models.Quote {
	if s.client == nil {
		return SyntheticQuote(symbol, s.now())
	}

	quote, err := s.client.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Live quote failed, using synthetic fallback")
		return SyntheticQuote(symbol, s.now())
	}
	return quote
}

// GetQuotes returns quotes for a set of symbols, keyed by normalized symbol.
// Lookups run concurrently; result order does not depend on completion order.
func (s *Service) GetQuotes(ctx context.Context, symbols []string) (map[string]*models.Quote, error) {
	quotes := make(map[string]*models.Quote, len(symbols))
	seen := make(map[string]bool, len(symbols))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, symbol := range symbols {
		symbol = models.NormalizeSymbol(symbol)
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true

		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			quote, err := s.GetQuote(ctx, symbol)
			if err != nil {
				return
			}
			mu.Lock()
			quotes[symbol] = quote
			mu.Unlock()
		}(symbol)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Ensure Service implements QuoteProvider
var _ interfaces.QuoteProvider = (*Service)(nil)
