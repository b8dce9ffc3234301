package quote

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/models"
	testcommon "github.com/dkellaway/vantage/test/common"
)

func TestSyntheticQuoteDeterministic(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	a := SyntheticQuote("NVDA", at)
	b := SyntheticQuote("nvda", at)

	if a.CurrentPrice != b.CurrentPrice || a.Change != b.Change || a.BuyScore != b.BuyScore {
		t.Errorf("synthetic quotes for same symbol differ: %+v vs %+v", a, b)
	}
	if a.CurrentPrice != 245.20 {
		t.Errorf("NVDA base price = %v, want 245.20", a.CurrentPrice)
	}
	if a.Week52High != models.Round2(a.CurrentPrice*1.4) {
		t.Errorf("52w high = %v, want %v", a.Week52High, models.Round2(a.CurrentPrice*1.4))
	}
	if a.Week52Low != models.Round2(a.CurrentPrice*0.7) {
		t.Errorf("52w low = %v, want %v", a.Week52Low, models.Round2(a.CurrentPrice*0.7))
	}
	if a.Source != "synthetic" {
		t.Errorf("source = %q, want synthetic", a.Source)
	}
}

func TestSyntheticQuoteUnknownSymbol(t *testing.T) {
	at := time.Now()

	q := SyntheticQuote("ZZZZ", at)
	if q.CurrentPrice < 100 || q.CurrentPrice > 200.01 {
		t.Errorf("unknown symbol price = %v, want 100-200", q.CurrentPrice)
	}
	if q.BuyScore < 30 || q.BuyScore > 95 {
		t.Errorf("buy score = %d, want 30-95", q.BuyScore)
	}

	again := SyntheticQuote("ZZZZ", at)
	if q.CurrentPrice != again.CurrentPrice || q.BuyScore != again.BuyScore {
		t.Error("unknown symbol quote is not deterministic")
	}
}

func TestGetQuoteCaching(t *testing.T) {
	client := testcommon.NewMockFinnhubClient()
	client.Quotes["AAPL"] = testcommon.TestQuote("AAPL", 180.00)

	clock := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(client, common.NewSilentLogger(), WithClock(func() time.Time { return clock }))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		quote, err := svc.GetQuote(ctx, "AAPL")
		if err != nil {
			t.Fatalf("GetQuote failed: %v", err)
		}
		if quote.CurrentPrice != 180.00 {
			t.Errorf("price = %v, want 180.00", quote.CurrentPrice)
		}
	}

	if calls := client.Calls(); calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestGetQuoteCacheExpiry(t *testing.T) {
	client := testcommon.NewMockFinnhubClient()
	client.Quotes["AAPL"] = testcommon.TestQuote("AAPL", 180.00)

	clock := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(client, common.NewSilentLogger(), WithClock(func() time.Time { return clock }))

	ctx := context.Background()
	if _, err := svc.GetQuote(ctx, "AAPL"); err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}

	clock = clock.Add(61 * time.Second)
	if _, err := svc.GetQuote(ctx, "AAPL"); err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}

	if calls := client.Calls(); calls != 2 {
		t.Errorf("upstream calls = %d, want 2 after expiry", calls)
	}
}

func TestGetQuoteSyntheticFallback(t *testing.T) {
	client := testcommon.NewMockFinnhubClient()
	// No quotes registered, every lookup errors

	svc := NewService(client, common.NewSilentLogger())

	quote, err := svc.GetQuote(context.Background(), "AMD")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if quote.Source != "synthetic" {
		t.Errorf("source = %q, want synthetic", quote.Source)
	}
	if quote.CurrentPrice != 195.00 {
		t.Errorf("AMD synthetic price = %v, want 195.00", quote.CurrentPrice)
	}
}

func TestGetQuoteNilClient(t *testing.T) {
	svc := NewService(nil, common.NewSilentLogger())

	quote, err := svc.GetQuote(context.Background(), "tsla")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if quote.Symbol != "TSLA" {
		t.Errorf("symbol = %q, want TSLA", quote.Symbol)
	}
	if quote.Source != "synthetic" {
		t.Errorf("source = %q, want synthetic", quote.Source)
	}
}

// slowClient delays every lookup so concurrent callers overlap
type slowClient struct {
	mu    sync.Mutex
	calls int
}

func (c *slowClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	return testcommon.TestQuote(symbol, 100.00), nil
}

func TestGetQuoteCoalescing(t *testing.T) {
	client := &slowClient{}
	svc := NewService(client, common.NewSilentLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GetQuote(context.Background(), "AAPL"); err != nil {
				t.Errorf("GetQuote failed: %v", err)
			}
		}()
	}
	wg.Wait()

	client.mu.Lock()
	calls := client.calls
	client.mu.Unlock()
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1 for coalesced requests", calls)
	}
}

func TestGetQuotes(t *testing.T) {
	client := testcommon.NewMockFinnhubClient()
	client.Quotes["AAPL"] = testcommon.TestQuote("AAPL", 180.00)
	client.Quotes["MSFT"] = testcommon.TestQuote("MSFT", 420.00)

	svc := NewService(client, common.NewSilentLogger())

	quotes, err := svc.GetQuotes(context.Background(), []string{"aapl", "AAPL", "msft", ""})
	if err != nil {
		t.Fatalf("GetQuotes failed: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}
	if quotes["AAPL"].CurrentPrice != 180.00 {
		t.Errorf("AAPL price = %v, want 180.00", quotes["AAPL"].CurrentPrice)
	}
	if quotes["MSFT"].CurrentPrice != 420.00 {
		t.Errorf("MSFT price = %v, want 420.00", quotes["MSFT"].CurrentPrice)
	}
	if calls := client.Calls(); calls != 2 {
		t.Errorf("upstream calls = %d, want 2 (duplicates deduped)", calls)
	}
}
