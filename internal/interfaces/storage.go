// Package interfaces defines service contracts for Vantage
package interfaces

import (
	"context"

	"github.com/dkellaway/vantage/internal/models"
)

// StorageManager coordinates the storage backends.
type StorageManager interface {
	HoldingStore() HoldingStore
	SystemKV() SystemKVStore
	Close() error
}

// HoldingStore persists the per-user holdings snapshot.
type HoldingStore interface {
	// GetHoldings returns the last synced holding set for a user, in the
	// order it was written. An unsynced user yields an empty slice.
	GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error)

	// ReplaceHoldings atomically replaces the user's holding set.
	// Concurrent readers observe either the old or the new set in full.
	ReplaceHoldings(ctx context.Context, userID string, holdings []*models.HoldingRecord) error
}

// SystemKVStore holds system-level key-value settings (API keys etc.).
type SystemKVStore interface {
	GetSystemKV(ctx context.Context, key string) (string, error)
	SetSystemKV(ctx context.Context, key, value string) error
}
