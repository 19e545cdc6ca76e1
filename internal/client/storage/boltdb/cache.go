package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/models"
)

// expiryKey ключ индекса cache_idx_expires: expiresAt (8 bytes BE) | key
func expiryKey(entry *models.CacheEntry) []byte {
	return timeKey(entry.ExpiresAt, entry.Key)
}

func getCacheTx(tx *bbolt.Tx, c *codec, key string) (*models.CacheEntry, error) {
	data := tx.Bucket(bucketCache).Get([]byte(key))
	if data == nil {
		return nil, storage.ErrCacheMiss
	}
	entry := &models.CacheEntry{}
	if err := c.decode(data, entry); err != nil {
		return nil, fmt.Errorf("cache entry %s: %w", key, err)
	}
	return entry, nil
}

// deleteCacheTx удаляет запись и ее индекс; отсутствующий ключ не ошибка
func deleteCacheTx(tx *bbolt.Tx, c *codec, key string) error {
	old, err := getCacheTx(tx, c, key)
	if errors.Is(err, storage.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		return err
	}
	if old.ExpiresAt != 0 {
		if err := tx.Bucket(bucketCacheByExpiry).Delete(expiryKey(old)); err != nil {
			return fmt.Errorf("failed to drop expiry index: %w", err)
		}
	}
	return tx.Bucket(bucketCache).Delete([]byte(key))
}

// PutCache stores data under key. ttl <= 0 means the entry never expires
func (s *Storage) PutCache(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	if key == "" {
		return fmt.Errorf("cache key cannot be empty")
	}

	now := s.now()
	entry := &models.CacheEntry{
		Key:       key,
		Data:      data,
		Timestamp: now.UnixMilli(),
	}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl).UnixMilli()
	}

	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		if err := deleteCacheTx(tx, c, key); err != nil {
			return err
		}

		encoded, err := c.encode(entry)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketCache).Put([]byte(key), encoded); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}
		if entry.ExpiresAt != 0 {
			if err := tx.Bucket(bucketCacheByExpiry).Put(expiryKey(entry), nil); err != nil {
				return fmt.Errorf("failed to index cache expiry: %w", err)
			}
		}
		return nil
	})
}

// GetCache returns a live entry. Expired entry is evicted and reported as ErrCacheMiss
func (s *Storage) GetCache(ctx context.Context, key string) (*models.CacheEntry, error) {
	var entry *models.CacheEntry

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		var err error
		entry, err = getCacheTx(tx, c, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !entry.IsExpired(s.now()) {
		return entry, nil
	}

	// Ленивое удаление: запись могла быть перезаписана между транзакциями, проверяем еще раз
	err = s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		current, err := getCacheTx(tx, c, key)
		if err != nil {
			return nil
		}
		if !current.IsExpired(s.now()) {
			entry = current
			return nil
		}
		entry = nil
		return deleteCacheTx(tx, c, key)
	})
	if err != nil {
		s.logger.Warn("failed to evict expired cache entry", "key", key, "error", err)
	}
	if entry == nil || entry.IsExpired(s.now()) {
		return nil, storage.ErrCacheMiss
	}

	return entry, nil
}

// DeleteCache removes an entry
func (s *Storage) DeleteCache(ctx context.Context, key string) error {
	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		return deleteCacheTx(tx, c, key)
	})
}

// GetAllCache returns all live entries
func (s *Storage) GetAllCache(ctx context.Context) ([]*models.CacheEntry, error) {
	var entries []*models.CacheEntry
	now := s.now()

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		return tx.Bucket(bucketCache).ForEach(func(k, v []byte) error {
			entry := &models.CacheEntry{}
			if err := c.decode(v, entry); err != nil {
				return fmt.Errorf("cache entry %s: %w", k, err)
			}
			if !entry.IsExpired(now) {
				entries = append(entries, entry)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entries: %w", err)
	}

	return entries, nil
}

// SweepExpired deletes every entry with ExpiresAt <= now using the expiry index
func (s *Storage) SweepExpired(ctx context.Context) (int, error) {
	var removed int
	now := s.now().UnixMilli()

	err := s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		idx := tx.Bucket(bucketCacheByExpiry)
		cache := tx.Bucket(bucketCache)

		// собираем ключи до удаления, курсор не переживает изменения bucket
		var expired [][]byte
		cur := idx.Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			if int64(binary.BigEndian.Uint64(k[:8])) > now {
				break
			}
			expired = append(expired, cloneBytes(k))
		}

		for _, k := range expired {
			if err := idx.Delete(k); err != nil {
				return fmt.Errorf("failed to drop expiry index: %w", err)
			}
			if err := cache.Delete(k[8:]); err != nil {
				return fmt.Errorf("failed to delete cache entry: %w", err)
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep cache: %w", err)
	}

	return removed, nil
}

// ClearCache removes all entries
func (s *Storage) ClearCache(ctx context.Context) error {
	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		return resetBuckets(tx, bucketCache, bucketCacheByExpiry)
	})
}
