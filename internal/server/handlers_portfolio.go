package server

import (
	"net/http"

	"github.com/dkellaway/vantage/internal/common"
)

// handlePortfolio handles GET /api/portfolio
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	valued, err := s.app.Portfolio.GetPortfolio(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Portfolio read failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, valued)
}

// handlePortfolioSummary handles GET /api/portfolio/summary
func (s *Server) handlePortfolioSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	summary, err := s.app.Portfolio.GetSummary(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Portfolio summary failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load portfolio summary")
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// handlePortfolioChart handles GET /api/portfolio/summary/chart
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	png, err := s.app.Portfolio.RenderAllocationChart(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Allocation chart failed")
		WriteError(w, http.StatusNotFound, "No allocation data to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handlePortfolioSync handles POST /api/portfolio/sync
func (s *Server) handlePortfolioSync(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	valued, err := s.app.Portfolio.SyncPortfolio(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Portfolio sync failed")
		WriteError(w, http.StatusBadGateway, "Portfolio sync failed")
		return
	}

	WriteJSON(w, http.StatusOK, valued)
}

// handleInsights handles GET /api/insights
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	report, err := s.app.Insights.GetInsights(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Insights failed")
		WriteError(w, http.StatusInternalServerError, "Failed to build insights")
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// handleRecommendations handles GET /api/recommendations
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	userID := common.ResolveUserID(ctx)

	response, err := s.app.Advisor.GetRecommendations(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user", userID).Msg("Recommendations failed")
		WriteError(w, http.StatusInternalServerError, "Failed to build recommendations")
		return
	}

	WriteJSON(w, http.StatusOK, response)
}
