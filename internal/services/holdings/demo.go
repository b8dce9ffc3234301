package holdings

import (
	"context"

	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// demoHoldings is a fixed brokerage snapshot used when no statement is
// configured. Figures mirror a Fidelity statement dated October 31, 2025.
var demoHoldings = []models.HoldingRecord{
	// Stocks
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc", Quantity: 25.0, AvgCost: 116.90, Sector: "Technology"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Quantity: 12.0, AvgCost: 128.48, Sector: "Technology"},
	{Symbol: "IONQ", Name: "IonQ Inc", Quantity: 37.0, AvgCost: 15.96, Sector: "Technology"},
	{Symbol: "OKLO", Name: "Oklo Inc Class A", Quantity: 10.0, AvgCost: 19.59, Sector: "Energy"},
	{Symbol: "PLTR", Name: "Palantir Technologies Inc", Quantity: 5.0, AvgCost: 85.24, Sector: "Technology"},
	{Symbol: "RGTI", Name: "Rigetti Computing Inc", Quantity: 30.0, AvgCost: 19.41, Sector: "Technology"},
	{Symbol: "SOFI", Name: "SoFi Technologies Inc", Quantity: 30.0, AvgCost: 11.87, Sector: "Financial Services"},
	{Symbol: "TSLA", Name: "Tesla Inc", Quantity: 3.0, AvgCost: 300.91, Sector: "Consumer Cyclical"},
	{Symbol: "GOOG", Name: "Alphabet Inc Class C", Quantity: 2.0, AvgCost: 167.58, Sector: "Technology"},
	{Symbol: "BABA", Name: "Alibaba Group Holding Ltd ADR", Quantity: 2.0, AvgCost: 96.13, Sector: "Consumer Cyclical"},
	{Symbol: "MO", Name: "Altria Group Inc", Quantity: 40.0, AvgCost: 58.94, Sector: "Consumer Defensive"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Quantity: 2.0, AvgCost: 152.75, Sector: "Healthcare"},
	{Symbol: "LEG", Name: "Leggett & Platt Inc", Quantity: 30.0, AvgCost: 8.59, Sector: "Consumer Cyclical"},
	{Symbol: "ORCL", Name: "Oracle Corp", Quantity: 1.0, AvgCost: 183.00, Sector: "Technology"},
	{Symbol: "QUBT", Name: "Quantum Computing Inc", Quantity: 40.0, AvgCost: 11.62, Sector: "Technology"},
	{Symbol: "SOUN", Name: "SoundHound AI Inc Class A", Quantity: 5.0, AvgCost: 11.35, Sector: "Technology"},
	{Symbol: "TGT", Name: "Target Corp", Quantity: 6.0, AvgCost: 113.33, Sector: "Consumer Defensive"},
	{Symbol: "MMM", Name: "3M Co", Quantity: 2.0, AvgCost: 100.42, Sector: "Industrials"},
	// ETFs
	{Symbol: "URA", Name: "Global X Uranium ETF", Quantity: 2.0, AvgCost: 36.76, Sector: "Energy"},
	{Symbol: "SCHD", Name: "Schwab US Dividend Equity ETF", Quantity: 23.0, AvgCost: 26.91, Sector: "Financial Services"},
	{Symbol: "MRNY", Name: "YieldMax MRNA Option Income", Quantity: 100.0, AvgCost: 3.24, Sector: "Healthcare"},
	{Symbol: "CONY", Name: "YieldMax COIN Option Income", Quantity: 15.0, AvgCost: 8.07, Sector: "Financial Services"},
	{Symbol: "TSLY", Name: "YieldMax TSLA Option Income", Quantity: 18.0, AvgCost: 12.10, Sector: "Consumer Cyclical"},
	{Symbol: "BABO", Name: "YieldMax BABA Option Income", Quantity: 2.0, AvgCost: 17.14, Sector: "Consumer Cyclical"},
	// REITs
	{Symbol: "BDN", Name: "Brandywine Realty Trust", Quantity: 10.0, AvgCost: 5.75, Sector: "Real Estate"},
	{Symbol: "ORC", Name: "Orchid Island Capital Inc", Quantity: 54.0, AvgCost: 7.23, Sector: "Real Estate"},
	{Symbol: "TWO", Name: "Two Harbors Investment Corp", Quantity: 10.0, AvgCost: 11.82, Sector: "Real Estate"},
}

// DemoSource serves the built-in demo snapshot for every user
type DemoSource struct{}

// NewDemoSource creates a demo holdings source
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// GetHoldings returns a fresh copy of the demo snapshot
func (s *DemoSource) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	records := make([]*models.HoldingRecord, len(demoHoldings))
	for i := range demoHoldings {
		record := demoHoldings[i]
		records[i] = &record
	}
	return records, nil
}

// Origin identifies this source
func (s *DemoSource) Origin() string {
	return "demo"
}

// Ensure DemoSource implements HoldingsSource
var _ interfaces.HoldingsSource = (*DemoSource)(nil)
