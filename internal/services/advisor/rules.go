package advisor

import (
	"fmt"

	"github.com/dkellaway/vantage/internal/models"
)

const (
	broadMarketETF = "VTI"
	techGrowthETF  = "QQQ"
	dividendETF    = "SCHD"

	sectorShareLimit = 0.40
	singleShareLimit = 0.25
	techShareLimit   = 0.50
	sparseLimit      = 3

	sectorPenalty = 30
	singlePenalty = 10
	sparsePenalty = 20
)

// Evaluate runs the advisory rules over a holdings set. Shares are weighted
// by cost basis. Risk starts Low and only escalates; the score starts at 100
// and only decreases, floored at 0. Recommended prices are left unset here
// and resolved by the caller. When the total cost basis is zero the
// concentration rules are skipped entirely.
func Evaluate(holdings []*models.HoldingRecord) *models.RecommendationResponse {
	recommendations := []models.Recommendation{}
	risk := models.RiskLow
	score := 100

	var totalCost float64
	sectorCost := make(map[string]float64)
	var sectorOrder []string
	for _, h := range holdings {
		cost := h.CostBasis()
		totalCost += cost
		if _, seen := sectorCost[h.Sector]; !seen {
			sectorOrder = append(sectorOrder, h.Sector)
		}
		sectorCost[h.Sector] += cost
	}

	// 1. Sector concentration
	if totalCost > 0 {
		for _, sector := range sectorOrder {
			weight := sectorCost[sector] / totalCost
			if weight > sectorShareLimit {
				recommendations = append(recommendations, models.Recommendation{
					Symbol:          broadMarketETF,
					Reason:          fmt.Sprintf("High concentration in %s (%d%%). Consider diversifying with a broad market ETF.", sector, int(weight*100)),
					RiskLevel:       models.RiskLow,
					SuggestedAction: models.ActionBuy,
				})
				risk = models.RiskHigh
				score -= sectorPenalty
			}
		}
	}

	// 2. Single-stock concentration
	if totalCost > 0 {
		for _, h := range holdings {
			weight := h.CostBasis() / totalCost
			if weight > singleShareLimit {
				recommendations = append(recommendations, models.Recommendation{
					Symbol:          h.Symbol,
					Reason:          fmt.Sprintf("Single stock %s makes up %d%% of portfolio. Consider reducing position size.", h.Symbol, int(weight*100)),
					RiskLevel:       models.RiskHigh,
					SuggestedAction: models.ActionReduce,
				})
				score -= singlePenalty
			}
		}
	}

	// 3. Sparse portfolio
	if len(holdings) < sparseLimit {
		recommendations = append(recommendations, models.Recommendation{
			Symbol:          techGrowthETF,
			Reason:          "Portfolio has few holdings. Consider adding tech exposure for growth.",
			RiskLevel:       models.RiskMedium,
			SuggestedAction: models.ActionWatch,
		})
		score -= sparsePenalty
	}

	// 4. Tech overweight
	if totalCost > 0 && sectorCost["Technology"]/totalCost > techShareLimit {
		recommendations = append(recommendations, models.Recommendation{
			Symbol:          dividendETF,
			Reason:          "Heavy tech exposure. Consider a dividend ETF for balance.",
			RiskLevel:       models.RiskLow,
			SuggestedAction: models.ActionBuy,
		})
	}

	if score < 0 {
		score = 0
	}

	return &models.RecommendationResponse{
		Recommendations:      recommendations,
		PortfolioRiskSummary: fmt.Sprintf("Portfolio Risk is %s. Diversification Score: %d/100", risk, score),
		DiversificationScore: score,
	}
}
