package portfolio

import (
	"testing"
	"time"

	"github.com/dkellaway/vantage/internal/models"
	testcommon "github.com/dkellaway/vantage/test/common"
)

func TestValueWithQuote(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("AAPL", 10, 100, "Technology"),
	}
	quotes := map[string]*models.Quote{
		"AAPL": {
			Symbol:       "AAPL",
			CurrentPrice: 150,
			Week52Low:    120,
			Week52High:   160,
			BuyScore:     72,
		},
	}

	valued := Value(holdings, quotes, time.Now())
	if len(valued) != 1 {
		t.Fatalf("got %d valued holdings, want 1", len(valued))
	}

	v := valued[0]
	if v.MarketValue != 1500 {
		t.Errorf("market value = %v, want 1500", v.MarketValue)
	}
	if v.UnrealizedPL != 500 {
		t.Errorf("unrealized P/L = %v, want 500", v.UnrealizedPL)
	}
	if v.UnrealizedPLPercent != 50.0 {
		t.Errorf("unrealized P/L percent = %v, want 50.0", v.UnrealizedPLPercent)
	}
	if v.Week52Low != 120 || v.Week52High != 160 {
		t.Errorf("52-week range = %v/%v, want 120/160", v.Week52Low, v.Week52High)
	}
	if v.BuyScore != 72 {
		t.Errorf("buy score = %d, want 72", v.BuyScore)
	}
}

func TestValueMissingQuote(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("XYZ", 5, 40, "Energy"),
	}

	valued := Value(holdings, map[string]*models.Quote{}, time.Now())
	v := valued[0]

	if v.CurrentPrice != 40 {
		t.Errorf("price = %v, want avg cost 40", v.CurrentPrice)
	}
	if v.MarketValue != 200 {
		t.Errorf("market value = %v, want 200", v.MarketValue)
	}
	if v.UnrealizedPL != 0 || v.UnrealizedPLPercent != 0 {
		t.Errorf("P/L = %v (%v%%), want 0", v.UnrealizedPL, v.UnrealizedPLPercent)
	}
	if v.Week52Low != 0 || v.Week52High != 0 {
		t.Errorf("52-week range = %v/%v, want 0/0", v.Week52Low, v.Week52High)
	}
	if v.BuyScore != 50 {
		t.Errorf("buy score = %d, want neutral 50", v.BuyScore)
	}
}

func TestValueQuoteWithout52WeekRange(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("NEW", 1, 100, "Technology"),
	}
	quotes := map[string]*models.Quote{
		"NEW": {Symbol: "NEW", CurrentPrice: 100},
	}

	v := Value(holdings, quotes, time.Now())[0]
	if v.Week52Low != 80 {
		t.Errorf("52-week low = %v, want 80", v.Week52Low)
	}
	if v.Week52High != 120 {
		t.Errorf("52-week high = %v, want 120", v.Week52High)
	}
	if v.BuyScore != 50 {
		t.Errorf("buy score = %d, want neutral 50", v.BuyScore)
	}
}

func TestValueZeroCostBasis(t *testing.T) {
	tests := []struct {
		name    string
		holding *models.HoldingRecord
	}{
		{"zero quantity", testcommon.TestHolding("A", 0, 100, "Technology")},
		{"zero cost", testcommon.TestHolding("B", 10, 0, "Technology")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes := map[string]*models.Quote{
				tt.holding.Symbol: {Symbol: tt.holding.Symbol, CurrentPrice: 50},
			}
			v := Value([]*models.HoldingRecord{tt.holding}, quotes, time.Now())[0]
			if v.UnrealizedPLPercent != 0 {
				t.Errorf("P/L percent = %v, want exactly 0", v.UnrealizedPLPercent)
			}
		})
	}
}

func TestValuePreservesOrder(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("C", 1, 1, "Technology"),
		testcommon.TestHolding("A", 1, 1, "Energy"),
		testcommon.TestHolding("B", 1, 1, "Healthcare"),
	}

	valued := Value(holdings, map[string]*models.Quote{}, time.Now())
	want := []string{"C", "A", "B"}
	for i, v := range valued {
		if v.Symbol != want[i] {
			t.Errorf("position %d = %s, want %s", i, v.Symbol, want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("AAPL", 10, 100, "Technology"),
		testcommon.TestHolding("JNJ", 10, 50, "Healthcare"),
	}
	quotes := map[string]*models.Quote{
		"AAPL": {Symbol: "AAPL", CurrentPrice: 150},
		"JNJ":  {Symbol: "JNJ", CurrentPrice: 50},
	}

	summary := Summarize(Value(holdings, quotes, time.Now()))

	if summary.TotalValue != 2000 {
		t.Errorf("total value = %v, want 2000", summary.TotalValue)
	}
	if summary.TotalCost != 1500 {
		t.Errorf("total cost = %v, want 1500", summary.TotalCost)
	}
	if summary.TotalPL != 500 {
		t.Errorf("total P/L = %v, want 500", summary.TotalPL)
	}
	if summary.TotalPLPercent != 33.3 {
		t.Errorf("total P/L percent = %v, want 33.3", summary.TotalPLPercent)
	}
	if summary.SectorAllocation["Technology"] != 75.0 {
		t.Errorf("Technology allocation = %v, want 75.0", summary.SectorAllocation["Technology"])
	}
	if summary.SectorAllocation["Healthcare"] != 25.0 {
		t.Errorf("Healthcare allocation = %v, want 25.0", summary.SectorAllocation["Healthcare"])
	}
	if len(summary.TrendData) == 0 {
		t.Error("trend data is empty")
	}
	if last := summary.TrendData[len(summary.TrendData)-1]; last != summary.TotalValue {
		t.Errorf("trend ends at %v, want total value %v", last, summary.TotalValue)
	}
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalValue != 0 || summary.TotalCost != 0 || summary.TotalPL != 0 || summary.TotalPLPercent != 0 {
		t.Errorf("empty portfolio totals not zero: %+v", summary)
	}
	if len(summary.SectorAllocation) != 0 {
		t.Errorf("allocation = %v, want empty", summary.SectorAllocation)
	}
}

func TestSummarizeZeroValuePortfolio(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("FREE", 0, 0, "Technology"),
	}

	summary := Summarize(Value(holdings, map[string]*models.Quote{}, time.Now()))
	for sector, share := range summary.SectorAllocation {
		if share != 0 {
			t.Errorf("sector %s share = %v, want 0", sector, share)
		}
	}
}

func TestSummarizeBlankSectorDefaultsToUnknown(t *testing.T) {
	holdings := []*models.HoldingRecord{
		testcommon.TestHolding("MYST", 1, 100, ""),
	}
	quotes := map[string]*models.Quote{
		"MYST": {Symbol: "MYST", CurrentPrice: 100},
	}

	summary := Summarize(Value(holdings, quotes, time.Now()))
	if summary.SectorAllocation[models.SectorUnknown] != 100.0 {
		t.Errorf("allocation = %v, want 100%% Unknown", summary.SectorAllocation)
	}
}
