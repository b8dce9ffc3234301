// Package app wires configuration, storage, clients, and services together.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dkellaway/vantage/internal/clients/finnhub"
	"github.com/dkellaway/vantage/internal/clients/gemini"
	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/services/advisor"
	"github.com/dkellaway/vantage/internal/services/holdings"
	"github.com/dkellaway/vantage/internal/services/insight"
	"github.com/dkellaway/vantage/internal/services/portfolio"
	"github.com/dkellaway/vantage/internal/services/quote"
	"github.com/dkellaway/vantage/internal/storage/surrealdb"
)

// App holds all initialized clients and services. It is the shared core
// behind cmd/vantage-server.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	FinnhubClient interfaces.FinnhubClient
	GeminiClient  interfaces.GeminiClient

	Quotes    interfaces.QuoteProvider
	Holdings  interfaces.HoldingsService
	Portfolio interfaces.PortfolioService
	Insights  interfaces.InsightService
	Advisor   interfaces.AdvisorService

	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients, and services.
// configPath may be empty, in which case the default resolution is used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	// Config resolution: explicit path, VANTAGE_CONFIG, binary dir, dev fallback
	if configPath == "" {
		configPath = os.Getenv("VANTAGE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "vantage.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/vantage.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()
	kvStore := storageManager.SystemKV()

	finnhubKey, err := common.ResolveAPIKey(ctx, kvStore, "finnhub_api_key", config.Clients.Finnhub.APIKey)
	if err != nil {
		logger.Warn().Msg("Finnhub API key not configured - quotes will be synthetic")
	}

	geminiKey, err := common.ResolveAPIKey(ctx, kvStore, "gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - insight commentary disabled")
	}

	var finnhubClient interfaces.FinnhubClient
	if finnhubKey != "" {
		finnhubClient = finnhub.NewClient(finnhubKey,
			finnhub.WithBaseURL(config.Clients.Finnhub.BaseURL),
			finnhub.WithLogger(logger),
			finnhub.WithRateLimit(config.Clients.Finnhub.RateLimit),
			finnhub.WithTimeout(config.Clients.Finnhub.GetTimeout()),
		)
	}

	var geminiClient interfaces.GeminiClient
	if geminiKey != "" {
		client, err := gemini.NewClient(ctx, geminiKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini client init failed - insight commentary disabled")
		} else {
			geminiClient = client
		}
	}

	quoteService := quote.NewService(finnhubClient, logger,
		quote.WithCacheTTL(config.Holdings.GetQuoteCacheTTL()),
	)

	source := holdingsSource(config, logger)
	holdingsService := holdings.NewService(source, storageManager.HoldingStore(), logger)

	portfolioService := portfolio.NewService(holdingsService, quoteService, logger)
	insightService := insight.NewService(portfolioService, geminiClient, logger)
	advisorService := advisor.NewService(holdingsService, quoteService, logger)

	logger.Info().
		Str("environment", config.Environment).
		Str("holdings_origin", config.Holdings.Origin).
		Bool("live_quotes", finnhubClient != nil).
		Bool("commentary", geminiClient != nil).
		Msg("Application initialized")

	return &App{
		Config:        config,
		Logger:        logger,
		Storage:       storageManager,
		FinnhubClient: finnhubClient,
		GeminiClient:  geminiClient,
		Quotes:        quoteService,
		Holdings:      holdingsService,
		Portfolio:     portfolioService,
		Insights:      insightService,
		Advisor:       advisorService,
		StartupTime:   time.Now(),
	}, nil
}

// holdingsSource builds the configured holdings origin
func holdingsSource(config *common.Config, logger *common.Logger) interfaces.HoldingsSource {
	if config.Holdings.Origin == "statement" && config.Holdings.StatementPath != "" {
		return holdings.NewStatementSource(config.Holdings.StatementPath, logger)
	}
	return holdings.NewDemoSource()
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
