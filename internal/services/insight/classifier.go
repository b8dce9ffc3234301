package insight

import (
	"fmt"
	"sort"

	"github.com/dkellaway/vantage/internal/models"
)

const (
	nearLowFactor  = 1.10
	nearHighFactor = 0.95

	concentrationMedium = 0.40
	concentrationHigh   = 0.60

	sectorScoreStep = 15
)

// Classify partitions valued holdings into 52-week extreme zones and checks
// sector concentration by holding count. Pure function: same input, same
// output.
func Classify(valued []*models.ValuedHolding) *models.InsightReport {
	report := &models.InsightReport{
		OpportunityZone: []models.ExtremeEntry{},
		OverheatedZone:  []models.ExtremeEntry{},
		Alerts:          []models.ConcentrationAlert{},
	}

	sectors := make(map[string]int)

	for _, v := range valued {
		sector := v.Sector
		if sector == "" {
			sector = models.SectorUnknown
		}
		sectors[sector]++

		// Near the 52-week low: within 10% above it
		if v.Week52Low > 0 && v.CurrentPrice <= v.Week52Low*nearLowFactor {
			report.OpportunityZone = append(report.OpportunityZone, models.ExtremeEntry{
				Symbol: v.Symbol,
				Price:  v.CurrentPrice,
				Target: v.Week52Low,
				Gap:    models.Round1((v.CurrentPrice - v.Week52Low) / v.Week52Low * 100),
			})
		}

		// Near the 52-week high: within 5% below it
		if v.Week52High > 0 && v.CurrentPrice >= v.Week52High*nearHighFactor {
			report.OverheatedZone = append(report.OverheatedZone, models.ExtremeEntry{
				Symbol: v.Symbol,
				Price:  v.CurrentPrice,
				Target: v.Week52High,
				Gap:    models.Round1((v.Week52High - v.CurrentPrice) / v.Week52High * 100),
			})
		}
	}

	if total := len(valued); total > 0 {
		for sector, count := range sectors {
			share := float64(count) / float64(total)
			if share <= concentrationMedium {
				continue
			}
			severity := models.SeverityMedium
			if share > concentrationHigh {
				severity = models.SeverityHigh
			}
			report.Alerts = append(report.Alerts, models.ConcentrationAlert{
				Sector:   sector,
				Message:  fmt.Sprintf("%s makes up %d%% of your holdings. Consider diversifying.", sector, int(share*100)),
				Severity: severity,
			})
		}
	}
	sort.Slice(report.Alerts, func(i, j int) bool {
		return report.Alerts[i].Sector < report.Alerts[j].Sector
	})

	score := len(sectors) * sectorScoreStep
	if score > 100 {
		score = 100
	}
	report.DiversificationScore = score

	return report
}
