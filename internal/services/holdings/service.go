// Package holdings manages holding records and their synchronization from a
// configured source into the store.
package holdings

import (
	"context"
	"fmt"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// Service implements the HoldingsService interface. Reads come from the
// store; SyncHoldings pulls the latest snapshot from the source and replaces
// the user's stored set in one operation.
type Service struct {
	source interfaces.HoldingsSource
	store  interfaces.HoldingStore
	logger *common.Logger
}

// NewService creates a holdings service
func NewService(source interfaces.HoldingsSource, store interfaces.HoldingStore, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		source: source,
		store:  store,
		logger: logger,
	}
}

// GetHoldings returns the user's stored holdings. An unsynced user has an
// empty set, not an error.
func (s *Service) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	if userID == "" {
		userID = common.DefaultUserID
	}

	holdings, err := s.store.GetHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings for %s: %w", userID, err)
	}
	if holdings == nil {
		holdings = []*models.HoldingRecord{}
	}
	return holdings, nil
}

// Origin reports where synced holdings come from
func (s *Service) Origin() string {
	return s.source.Origin()
}

// SyncHoldings replaces the user's stored holdings with the source snapshot
func (s *Service) SyncHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	if userID == "" {
		userID = common.DefaultUserID
	}

	records, err := s.source.GetHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings from %s: %w", s.source.Origin(), err)
	}

	for _, record := range records {
		record.Normalize()
	}

	if err := s.store.ReplaceHoldings(ctx, userID, records); err != nil {
		return nil, fmt.Errorf("failed to store holdings for %s: %w", userID, err)
	}

	s.logger.Info().
		Str("user", userID).
		Str("origin", s.source.Origin()).
		Int("holdings", len(records)).
		Msg("Holdings synced")

	return records, nil
}

// Ensure Service implements HoldingsService
var _ interfaces.HoldingsService = (*Service)(nil)
