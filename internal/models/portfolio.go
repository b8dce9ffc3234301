// Package models defines data structures for Vantage
package models

import (
	"strings"
	"time"
)

// SectorUnknown is the sector assigned to holdings with no sector metadata.
const SectorUnknown = "Unknown"

// NormalizeSymbol uppercases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// HoldingRecord is a raw brokerage position: what is owned and what it cost.
// Records are immutable per sync; a sync replaces the full set for a user.
type HoldingRecord struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	AvgCost  float64 `json:"avg_cost"`
	Sector   string  `json:"sector"`
}

// Normalize uppercases the symbol and defaults a blank sector to Unknown.
func (h *HoldingRecord) Normalize() {
	h.Symbol = NormalizeSymbol(h.Symbol)
	if strings.TrimSpace(h.Sector) == "" {
		h.Sector = SectorUnknown
	}
}

// CostBasis returns quantity × average cost.
func (h *HoldingRecord) CostBasis() float64 {
	return h.Quantity * h.AvgCost
}

// ValuedHolding is a HoldingRecord joined with market data. Derived on every
// read and never persisted — quotes may have changed between reads.
type ValuedHolding struct {
	HoldingRecord
	CurrentPrice        float64   `json:"current_price"`
	MarketValue         float64   `json:"market_value"`
	UnrealizedPL        float64   `json:"unrealized_pl"`
	UnrealizedPLPercent float64   `json:"unrealized_pl_percent"`
	Week52Low           float64   `json:"week52_low"`
	Week52High          float64   `json:"week52_high"`
	BuyScore            int       `json:"buy_score"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PortfolioSummary aggregates a valued-holdings list into portfolio totals.
type PortfolioSummary struct {
	TotalValue       float64            `json:"total_value"`
	TotalCost        float64            `json:"total_cost"`
	TotalPL          float64            `json:"total_pl"`
	TotalPLPercent   float64            `json:"total_pl_percent"`
	SectorAllocation map[string]float64 `json:"sector_allocation"`
	TrendData        []float64          `json:"trend_data"`
}
