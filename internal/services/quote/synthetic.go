package quote

import (
	"hash/fnv"
	"time"

	"github.com/dkellaway/vantage/internal/models"
)

// basePrices holds reference prices for common symbols so synthetic quotes
// stay plausible when no live source is available.
var basePrices = map[string]float64{
	"AMD": 195.00, "NVDA": 245.20, "IONQ": 85.50, "OKLO": 42.30,
	"PLTR": 160.40, "RGTI": 55.10, "SOFI": 28.45, "TSLA": 450.20,
	"GOOG": 172.10, "BABA": 98.50, "MO": 75.20, "JNJ": 155.40,
	"LEG": 9.10, "ORCL": 185.50, "QUBT": 45.40, "SOUN": 12.10,
	"TGT": 115.60, "MMM": 102.80,
	// ETFs
	"URA": 37.50, "SCHD": 27.40, "MRNY": 3.40, "CONY": 8.50,
	"TSLY": 12.60, "BABO": 17.80,
	// REITs
	"BDN": 6.10, "ORC": 7.45, "TWO": 12.10,
}

// symbolHash returns a stable hash for a symbol so synthetic quotes are
// reproducible across restarts.
func symbolHash(symbol string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return h.Sum64()
}

// SyntheticQuote builds a deterministic fallback quote for a symbol.
// The same symbol always yields the same quote.
func SyntheticQuote(symbol string, at time.Time) *models.Quote {
	symbol = models.NormalizeSymbol(symbol)
	h := symbolHash(symbol)

	price, ok := basePrices[symbol]
	if !ok {
		// Unknown symbols land in the 100-200 range
		price = models.Round2(100 + float64(h%10001)/100)
	}

	// Change in the -2.00..2.00 range, derived from the hash
	change := models.Round2(float64((h>>8)%401)/100 - 2)
	percentChange := 0.0
	if price != 0 {
		percentChange = models.Round2(change / price * 100)
	}

	return &models.Quote{
		Symbol:        symbol,
		CurrentPrice:  price,
		DayHigh:       models.Round2(price * 1.02),
		DayLow:        models.Round2(price * 0.98),
		Open:          models.Round2(price - change),
		PreviousClose: models.Round2(price - change),
		Change:        change,
		ChangePercent: percentChange,
		Week52High:    models.Round2(price * 1.4),
		Week52Low:     models.Round2(price * 0.7),
		MarketCap:     syntheticMarketCap(h),
		BuyScore:      30 + int((h>>16)%66),
		Source:        "synthetic",
		Timestamp:     at,
	}
}

// syntheticMarketCap picks a display string in the 10B-2000B range.
func syntheticMarketCap(h uint64) string {
	billions := 10 + float64((h>>24)%19901)/10
	return models.FormatMarketCap(billions * 1e9)
}
