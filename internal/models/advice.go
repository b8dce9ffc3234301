package models

// RiskLevel grades a recommendation or the portfolio as a whole.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// SuggestedAction is what the advisor proposes doing with a symbol.
type SuggestedAction string

const (
	ActionBuy    SuggestedAction = "Buy"
	ActionWatch  SuggestedAction = "Watch"
	ActionReduce SuggestedAction = "Reduce"
)

// Recommendation is a single rule-engine suggestion. Symbol may be an
// instrument not currently held (e.g. a diversification ETF).
type Recommendation struct {
	Symbol          string          `json:"symbol"`
	Reason          string          `json:"reason"`
	RiskLevel       RiskLevel       `json:"risk_level"`
	SuggestedAction SuggestedAction `json:"suggested_action"`
	CurrentPrice    float64         `json:"current_price"`
}

// RecommendationResponse is the full advisor output for a portfolio.
type RecommendationResponse struct {
	Recommendations      []Recommendation `json:"recommendations"`
	PortfolioRiskSummary string           `json:"portfolio_risk_summary"`
	DiversificationScore int              `json:"diversification_score"`
}
