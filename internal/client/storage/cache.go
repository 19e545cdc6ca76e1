package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iudanet/gophsync/internal/models"
)

// CacheStorage defines interface for the read cache with expiry.
type CacheStorage interface {
	// PutCache stores data under key. ttl <= 0 means the entry never expires
	PutCache(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error

	// GetCache returns a live entry
	// Returns ErrCacheMiss if entry is absent or expired; expired entries are evicted
	GetCache(ctx context.Context, key string) (*models.CacheEntry, error)

	// DeleteCache removes an entry, missing key is not an error
	DeleteCache(ctx context.Context, key string) error

	// GetAllCache returns all live entries
	GetAllCache(ctx context.Context) ([]*models.CacheEntry, error)

	// SweepExpired deletes every expired entry and returns their number
	SweepExpired(ctx context.Context) (int, error)

	// ClearCache removes all entries
	ClearCache(ctx context.Context) error
}
