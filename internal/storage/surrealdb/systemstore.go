package surrealdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
)

// SystemStore holds system-wide key/value settings, such as stored API keys
type SystemStore struct {
	conn   *surrealdb.DB
	logger *common.Logger
}

// NewSystemStore creates a system KV store
func NewSystemStore(db *surrealdb.DB, logger *common.Logger) *SystemStore {
	return &SystemStore{
		conn:   db,
		logger: logger,
	}
}

type systemKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetSystemKV returns the value for a key, or an error when unset
func (s *SystemStore) GetSystemKV(ctx context.Context, key string) (string, error) {
	kv, err := surrealdb.Select[systemKV](ctx, s.conn, surrealmodels.NewRecordID("system_kv", key))
	if err != nil || kv == nil {
		return "", errors.New("system KV not found")
	}
	return kv.Value, nil
}

// SetSystemKV stores a value under a key
func (s *SystemStore) SetSystemKV(ctx context.Context, key, value string) error {
	kv := systemKV{Key: key, Value: value}

	sql := "UPSERT type::record('system_kv', $id) CONTENT $kv"
	vars := map[string]any{"id": key, "kv": kv}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]systemKV](ctx, s.conn, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to set system KV after retries: %w", err)
		}
	}
	return nil
}

// Compile-time check
var _ interfaces.SystemKVStore = (*SystemStore)(nil)
