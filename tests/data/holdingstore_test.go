package data

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellaway/vantage/internal/models"
)

func sampleHoldings() []*models.HoldingRecord {
	return []*models.HoldingRecord{
		{Symbol: "AMD", Name: "Advanced Micro Devices Inc", Quantity: 25, AvgCost: 116.90, Sector: "Technology"},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Quantity: 2, AvgCost: 152.75, Sector: "Healthcare"},
		{Symbol: "XOM", Name: "Exxon Mobil Corp", Quantity: 10, AvgCost: 105.10, Sector: "Energy"},
	}
}

func TestHoldingLifecycle(t *testing.T) {
	mgr := testManager(t)
	store := mgr.HoldingStore()
	ctx := testContext()

	// Unknown user has no holdings
	got, err := store.GetHoldings(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Write and read back in order
	require.NoError(t, store.ReplaceHoldings(ctx, "alice", sampleHoldings()))

	got, err = store.GetHoldings(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "AMD", got[0].Symbol)
	assert.Equal(t, "JNJ", got[1].Symbol)
	assert.Equal(t, "XOM", got[2].Symbol)
	assert.Equal(t, 116.90, got[0].AvgCost)
	assert.Equal(t, "Healthcare", got[1].Sector)
}

func TestReplaceHoldingsIsFullSwap(t *testing.T) {
	mgr := testManager(t)
	store := mgr.HoldingStore()
	ctx := testContext()

	require.NoError(t, store.ReplaceHoldings(ctx, "bob", sampleHoldings()))

	replacement := []*models.HoldingRecord{
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Quantity: 5, AvgCost: 250.00, Sector: "Financial Services"},
	}
	require.NoError(t, store.ReplaceHoldings(ctx, "bob", replacement))

	got, err := store.GetHoldings(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "VTI", got[0].Symbol)
}

func TestReplaceHoldingsEmptySet(t *testing.T) {
	mgr := testManager(t)
	store := mgr.HoldingStore()
	ctx := testContext()

	require.NoError(t, store.ReplaceHoldings(ctx, "carol", sampleHoldings()))
	require.NoError(t, store.ReplaceHoldings(ctx, "carol", nil))

	got, err := store.GetHoldings(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHoldingsIsolatedPerUser(t *testing.T) {
	mgr := testManager(t)
	store := mgr.HoldingStore()
	ctx := testContext()

	require.NoError(t, store.ReplaceHoldings(ctx, "dave", sampleHoldings()))
	require.NoError(t, store.ReplaceHoldings(ctx, "erin", sampleHoldings()[:1]))

	dave, err := store.GetHoldings(ctx, "dave")
	require.NoError(t, err)
	assert.Len(t, dave, 3)

	erin, err := store.GetHoldings(ctx, "erin")
	require.NoError(t, err)
	assert.Len(t, erin, 1)
}

func TestConcurrentReadsDuringReplace(t *testing.T) {
	mgr := testManager(t)
	store := mgr.HoldingStore()
	ctx := testContext()

	first := sampleHoldings()
	second := sampleHoldings()[:2]
	require.NoError(t, store.ReplaceHoldings(ctx, "frank", first))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			set := first
			if i%2 == 1 {
				set = second
			}
			if err := store.ReplaceHoldings(ctx, "frank", set); err != nil {
				t.Errorf("replace failed: %v", err)
				return
			}
		}
	}()

	// Readers must always observe a complete set, never a partial one
	for i := 0; i < 20; i++ {
		got, err := store.GetHoldings(ctx, "frank")
		require.NoError(t, err)
		assert.Contains(t, []int{len(first), len(second)}, len(got),
			"read observed a partially replaced set")
	}
	wg.Wait()
}

func TestSystemKVLifecycle(t *testing.T) {
	mgr := testManager(t)
	store := mgr.SystemKV()
	ctx := testContext()

	_, err := store.GetSystemKV(ctx, "finnhub_api_key")
	assert.Error(t, err)

	require.NoError(t, store.SetSystemKV(ctx, "finnhub_api_key", "abc123"))

	value, err := store.GetSystemKV(ctx, "finnhub_api_key")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)

	// Upsert overwrites
	require.NoError(t, store.SetSystemKV(ctx, "finnhub_api_key", "def456"))
	value, err = store.GetSystemKV(ctx, "finnhub_api_key")
	require.NoError(t, err)
	assert.Equal(t, "def456", value)
}
