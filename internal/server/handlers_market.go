package server

import (
	"net/http"
	"strings"

	"github.com/dkellaway/vantage/internal/models"
)

// handleMarketQuote handles GET /api/market/quote/{symbol}
func (s *Server) handleMarketQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := models.NormalizeSymbol(PathParam(r, "/api/market/quote/", ""))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	quote, err := s.app.Quotes.GetQuote(r.Context(), symbol)
	if err != nil {
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Quote failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch quote")
		return
	}

	WriteJSON(w, http.StatusOK, quote)
}

// handleMarketQuotes handles GET /api/market/quotes?symbols=AMD,NVDA
func (s *Server) handleMarketQuotes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	param := r.URL.Query().Get("symbols")
	if strings.TrimSpace(param) == "" {
		WriteError(w, http.StatusBadRequest, "symbols query parameter is required")
		return
	}

	symbols := strings.Split(param, ",")
	quotes, err := s.app.Quotes.GetQuotes(r.Context(), symbols)
	if err != nil {
		s.logger.Error().Err(err).Int("symbols", len(symbols)).Msg("Quotes failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}

	WriteJSON(w, http.StatusOK, quotes)
}
