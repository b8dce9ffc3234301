package models

// AlertSeverity grades a concentration alert.
type AlertSeverity string

const (
	SeverityMedium AlertSeverity = "Medium"
	SeverityHigh   AlertSeverity = "High"
)

// ExtremeEntry records a holding trading near one of its 52-week extremes.
// Gap is the distance from the extreme in percent, rounded to 1 decimal.
type ExtremeEntry struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Target float64 `json:"target"`
	Gap    float64 `json:"gap"`
}

// ConcentrationAlert flags a sector holding an outsized share of the portfolio.
type ConcentrationAlert struct {
	Sector   string        `json:"sector"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// InsightReport is the output of the insight classifier. The zones use
// count-based sector shares; the advisor's checks are value-weighted.
type InsightReport struct {
	OpportunityZone      []ExtremeEntry       `json:"opportunity_zone"`
	OverheatedZone       []ExtremeEntry       `json:"overheated_zone"`
	Alerts               []ConcentrationAlert `json:"alerts"`
	DiversificationScore int                  `json:"diversification_score"`
	Commentary           string               `json:"commentary,omitempty"`
}
