package models

import (
	"fmt"
	"math"
	"time"
)

// Quote holds a point-in-time market snapshot for a symbol.
// Week52High/Low, Volume, MarketCap, and BuyScore are optional — zero values
// mean the source did not supply them and callers apply their own fallbacks.
type Quote struct {
	Symbol        string    `json:"symbol"`
	CurrentPrice  float64   `json:"current_price"`
	DayHigh       float64   `json:"high_price,omitempty"`
	DayLow        float64   `json:"low_price,omitempty"`
	Open          float64   `json:"open_price,omitempty"`
	PreviousClose float64   `json:"previous_close,omitempty"`
	Change        float64   `json:"change,omitempty"`
	ChangePercent float64   `json:"percent_change,omitempty"`
	Week52High    float64   `json:"week52_high,omitempty"`
	Week52Low     float64   `json:"week52_low,omitempty"`
	MarketCap     string    `json:"market_cap,omitempty"`
	BuyScore      int       `json:"buy_score,omitempty"`
	Source        string    `json:"source,omitempty"` // "finnhub" or "synthetic"
	Timestamp     time.Time `json:"timestamp,omitempty"`
}

// Round2 rounds to 2 decimal places — prices and dollar values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place — percentages.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatMarketCap renders a market capitalisation in dollars as a short
// display string, e.g. 65_400_000_000 → "65.4B", 1_230_000_000_000 → "1.2T".
// Display only, never parsed back.
func FormatMarketCap(dollars float64) string {
	if dollars <= 0 {
		return ""
	}
	switch {
	case dollars >= 1e12:
		return trimTrailingZero(fmt.Sprintf("%.1fT", dollars/1e12))
	case dollars >= 1e9:
		return trimTrailingZero(fmt.Sprintf("%.1fB", dollars/1e9))
	case dollars >= 1e6:
		return trimTrailingZero(fmt.Sprintf("%.1fM", dollars/1e6))
	default:
		return fmt.Sprintf("%.0f", dollars)
	}
}

func trimTrailingZero(s string) string {
	if len(s) >= 3 && s[len(s)-3:len(s)-1] == ".0" {
		return s[:len(s)-3] + s[len(s)-1:]
	}
	return s
}
