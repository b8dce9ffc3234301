// Package finnhub provides a client for the Finnhub API
package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

const (
	DefaultBaseURL   = "https://finnhub.io/api/v1"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// ErrSymbolNotFound indicates Finnhub has no data for the symbol.
// Finnhub reports unknown symbols as an all-zero quote rather than a 404.
var ErrSymbolNotFound = errors.New("symbol not found")

// Client implements the FinnhubClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Finnhub client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Finnhub API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// quoteResponse is Finnhub's /quote payload:
// c: current, h: high, l: low, o: open, pc: previous close, d/dp: change.
type quoteResponse struct {
	Current       float64 `json:"c"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	Timestamp     int64   `json:"t"`
}

// metricResponse is the subset of /stock/metric we use.
// marketCapitalization is reported in millions.
type metricResponse struct {
	Metric struct {
		Week52High float64 `json:"52WeekHigh"`
		Week52Low  float64 `json:"52WeekLow"`
		MarketCap  float64 `json:"marketCapitalization"`
	} `json:"metric"`
}

// GetQuote retrieves a live quote for a symbol, enriched best-effort with
// 52-week range and market cap from the metric endpoint.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = models.NormalizeSymbol(symbol)

	var qr quoteResponse
	if err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &qr); err != nil {
		return nil, err
	}

	// Finnhub returns all zeros for unknown symbols
	if qr.Current == 0 && qr.PreviousClose == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	quote := &models.Quote{
		Symbol:        symbol,
		CurrentPrice:  qr.Current,
		DayHigh:       qr.High,
		DayLow:        qr.Low,
		Open:          qr.Open,
		PreviousClose: qr.PreviousClose,
		Change:        qr.Change,
		ChangePercent: qr.ChangePercent,
		Source:        "finnhub",
		Timestamp:     time.Unix(qr.Timestamp, 0),
	}

	// 52-week range is a separate endpoint; leave fields zero on failure
	// and let callers apply their fallbacks.
	var mr metricResponse
	if err := c.get(ctx, "/stock/metric", url.Values{"symbol": {symbol}, "metric": {"all"}}, &mr); err != nil {
		c.logger.Debug().Err(err).Str("symbol", symbol).Msg("Metric lookup failed")
	} else {
		quote.Week52High = mr.Metric.Week52High
		quote.Week52Low = mr.Metric.Week52Low
		quote.MarketCap = models.FormatMarketCap(mr.Metric.MarketCap * 1e6)
	}

	return quote, nil
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// Ensure Client implements FinnhubClient
var _ interfaces.FinnhubClient = (*Client)(nil)
