package cli

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsync/internal/models"
)

func TestCacheListCommand(t *testing.T) {
	now := time.Now()
	d := &DaemonMock{
		CacheEntriesFunc: func(ctx context.Context) ([]*models.CacheEntry, error) {
			return []*models.CacheEntry{
				{
					Key:       "/api/v1/dossiers/42",
					Data:      json.RawMessage(`{"name":"X"}`),
					Timestamp: now.Add(-time.Minute).UnixMilli(),
					ExpiresAt: now.Add(time.Hour).UnixMilli(),
				},
				{
					Key:       "/api/v1/notes?dossierId=42",
					Data:      json.RawMessage(`[]`),
					Timestamp: now.UnixMilli(),
				},
			}, nil
		},
	}
	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "cache", "list"))

	text := out.String()
	assert.Contains(t, text, "/api/v1/dossiers/42")
	assert.Contains(t, text, "12 B")
	assert.Contains(t, text, "from now")
	assert.Contains(t, text, "never")
	assert.Contains(t, text, "Total: 2 entries, 14 B")
}

func TestCacheListCommand_Empty(t *testing.T) {
	d := &DaemonMock{
		CacheEntriesFunc: func(ctx context.Context) ([]*models.CacheEntry, error) {
			return nil, nil
		},
	}
	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "cache", "list"))
	assert.Contains(t, out.String(), "Cache is empty.")
}

func TestCacheGetCommand(t *testing.T) {
	d := &DaemonMock{
		CacheEntryFunc: func(ctx context.Context, key string) (*models.CacheEntry, error) {
			return &models.CacheEntry{Key: key, Data: json.RawMessage(`{"name":"X"}`)}, nil
		},
	}
	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "cache", "get", "api/v1/dossiers/42"))

	assert.Equal(t, "/api/v1/dossiers/42", d.CacheEntryCalls()[0].Key)
	assert.Contains(t, out.String(), `"name": "X"`)
}

func TestCacheSweepAndClear(t *testing.T) {
	d := &DaemonMock{
		SweepCacheFunc: func(ctx context.Context) (int, error) { return 3, nil },
		ClearCacheFunc: func(ctx context.Context) error { return nil },
	}

	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "cache", "sweep"))
	assert.Contains(t, out.String(), "Removed 3 expired entries")

	cmd, _, out = newTestRoot(d, "")
	require.NoError(t, execute(cmd, "cache", "clear"))
	assert.Contains(t, out.String(), "Cache cleared")
	assert.Len(t, d.ClearCacheCalls(), 1)
}
