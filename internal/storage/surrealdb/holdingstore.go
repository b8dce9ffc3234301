package surrealdb

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// holdingRow is the persisted shape of a holding. Position keeps the sync
// order so reads come back in statement order.
type holdingRow struct {
	UserID   string  `json:"user_id"`
	Position int     `json:"position"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	AvgCost  float64 `json:"avg_cost"`
	Sector   string  `json:"sector"`
}

// HoldingStore persists holding records per user
type HoldingStore struct {
	conn   *surrealdb.DB
	logger *common.Logger
}

// NewHoldingStore creates a holding store
func NewHoldingStore(db *surrealdb.DB, logger *common.Logger) *HoldingStore {
	return &HoldingStore{
		conn:   db,
		logger: logger,
	}
}

// GetHoldings returns a user's holdings in sync order
func (s *HoldingStore) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	sql := "SELECT * FROM holding WHERE user_id = $user_id ORDER BY position"
	vars := map[string]any{"user_id": userID}

	results, err := surrealdb.Query[[]holdingRow](ctx, s.conn, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}

	var records []*models.HoldingRecord
	if results != nil && len(*results) > 0 {
		for _, row := range (*results)[0].Result {
			records = append(records, &models.HoldingRecord{
				Symbol:   row.Symbol,
				Name:     row.Name,
				Quantity: row.Quantity,
				AvgCost:  row.AvgCost,
				Sector:   row.Sector,
			})
		}
	}
	return records, nil
}

// ReplaceHoldings swaps a user's full holding set in one transaction.
// Concurrent readers see either the old set or the new set, never a
// partially cleared state.
func (s *HoldingStore) ReplaceHoldings(ctx context.Context, userID string, holdings []*models.HoldingRecord) error {
	rows := make([]holdingRow, 0, len(holdings))
	for i, h := range holdings {
		rows = append(rows, holdingRow{
			UserID:   userID,
			Position: i,
			Symbol:   h.Symbol,
			Name:     h.Name,
			Quantity: h.Quantity,
			AvgCost:  h.AvgCost,
			Sector:   h.Sector,
		})
	}

	sql := `BEGIN TRANSACTION;
DELETE holding WHERE user_id = $user_id;
INSERT INTO holding $rows;
COMMIT TRANSACTION;`
	vars := map[string]any{"user_id": userID, "rows": rows}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[any](ctx, s.conn, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to replace holdings after retries: %w", err)
		}
	}
	return nil
}

// Compile-time check
var _ interfaces.HoldingStore = (*HoldingStore)(nil)
