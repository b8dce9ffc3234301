package portfolio

import (
	"time"

	"github.com/dkellaway/vantage/internal/models"
)

const neutralBuyScore = 50

// Value joins holdings with quotes, keyed by uppercased symbol. Missing data
// degrades to fallbacks rather than erroring: a holding without a quote is
// priced at its average cost with zero 52-week range and a neutral buy
// score; a quote without a 52-week range gets price*0.8/price*1.2. Input
// order is preserved.
func Value(holdings []*models.HoldingRecord, quotes map[string]*models.Quote, at time.Time) []*models.ValuedHolding {
	valued := make([]*models.ValuedHolding, 0, len(holdings))

	for _, holding := range holdings {
		h := *holding
		h.Normalize()

		v := &models.ValuedHolding{
			HoldingRecord: h,
			UpdatedAt:     at,
		}

		quote := quotes[h.Symbol]
		if quote != nil {
			v.CurrentPrice = quote.CurrentPrice
			v.Week52Low = quote.Week52Low
			v.Week52High = quote.Week52High
			if v.Week52Low == 0 && v.Week52High == 0 {
				v.Week52Low = models.Round2(quote.CurrentPrice * 0.8)
				v.Week52High = models.Round2(quote.CurrentPrice * 1.2)
			}
			v.BuyScore = quote.BuyScore
			if v.BuyScore == 0 {
				v.BuyScore = neutralBuyScore
			}
		} else {
			// No quote: assume no gain or loss
			v.CurrentPrice = h.AvgCost
			v.Week52Low = 0
			v.Week52High = 0
			v.BuyScore = neutralBuyScore
		}

		costBasis := h.CostBasis()
		v.MarketValue = models.Round2(h.Quantity * v.CurrentPrice)
		v.UnrealizedPL = models.Round2(v.MarketValue - costBasis)
		if costBasis > 0 {
			v.UnrealizedPLPercent = models.Round1(v.UnrealizedPL / costBasis * 100)
		}

		valued = append(valued, v)
	}

	return valued
}

// Summarize reduces a valued-holdings list to portfolio totals and sector
// allocation. A zero-value portfolio yields an empty allocation map.
func Summarize(valued []*models.ValuedHolding) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{
		SectorAllocation: make(map[string]float64),
	}

	sectorValues := make(map[string]float64)
	for _, v := range valued {
		summary.TotalValue += v.MarketValue
		summary.TotalCost += v.CostBasis()

		sector := v.Sector
		if sector == "" {
			sector = models.SectorUnknown
		}
		sectorValues[sector] += v.MarketValue
	}

	summary.TotalValue = models.Round2(summary.TotalValue)
	summary.TotalCost = models.Round2(summary.TotalCost)
	summary.TotalPL = models.Round2(summary.TotalValue - summary.TotalCost)
	if summary.TotalCost > 0 {
		summary.TotalPLPercent = models.Round1(summary.TotalPL / summary.TotalCost * 100)
	}

	if summary.TotalValue > 0 {
		for sector, value := range sectorValues {
			summary.SectorAllocation[sector] = models.Round1(value / summary.TotalValue * 100)
		}
	}

	summary.TrendData = trendData(summary.TotalValue)

	return summary
}

// trendData builds a short synthetic value series ending at the current
// total, for sparkline display only.
func trendData(totalValue float64) []float64 {
	if totalValue == 0 {
		return []float64{}
	}
	multipliers := []float64{0.97, 0.975, 0.982, 0.978, 0.99, 0.995, 1.0}
	trend := make([]float64, len(multipliers))
	for i, m := range multipliers {
		trend[i] = models.Round2(totalValue * m)
	}
	return trend
}
