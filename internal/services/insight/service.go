// Package insight classifies valued holdings against their 52-week ranges
// and flags sector concentration.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// Service implements the InsightService interface. The Gemini client is
// optional; without one reports carry no commentary.
type Service struct {
	portfolio interfaces.PortfolioService
	gemini    interfaces.GeminiClient
	logger    *common.Logger
}

// NewService creates an insight service
func NewService(portfolio interfaces.PortfolioService, gemini interfaces.GeminiClient, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		portfolio: portfolio,
		gemini:    gemini,
		logger:    logger,
	}
}

// GetInsights classifies the user's current portfolio
func (s *Service) GetInsights(ctx context.Context, userID string) (*models.InsightReport, error) {
	valued, err := s.portfolio.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := Classify(valued)

	if s.gemini != nil {
		commentary, err := s.gemini.GenerateContent(ctx, buildCommentaryPrompt(report))
		if err != nil {
			s.logger.Warn().Err(err).Str("user", userID).Msg("Insight commentary failed")
		} else {
			report.Commentary = commentary
		}
	}

	return report, nil
}

// buildCommentaryPrompt creates a prompt summarizing the report for the
// commentary model
func buildCommentaryPrompt(report *models.InsightReport) string {
	var sb strings.Builder
	sb.WriteString("Write a short plain-language commentary (3 sentences max) on this portfolio scan.\n\n")

	sb.WriteString("Near 52-week lows:")
	if len(report.OpportunityZone) == 0 {
		sb.WriteString(" none")
	}
	for _, e := range report.OpportunityZone {
		fmt.Fprintf(&sb, " %s ($%.2f, %.1f%% above low)", e.Symbol, e.Price, e.Gap)
	}
	sb.WriteString("\n")

	sb.WriteString("Near 52-week highs:")
	if len(report.OverheatedZone) == 0 {
		sb.WriteString(" none")
	}
	for _, e := range report.OverheatedZone {
		fmt.Fprintf(&sb, " %s ($%.2f, %.1f%% below high)", e.Symbol, e.Price, e.Gap)
	}
	sb.WriteString("\n")

	for _, alert := range report.Alerts {
		fmt.Fprintf(&sb, "Alert: %s\n", alert.Message)
	}
	fmt.Fprintf(&sb, "Diversification score: %d/100\n", report.DiversificationScore)

	return sb.String()
}

// Ensure Service implements InsightService
var _ interfaces.InsightService = (*Service)(nil)
