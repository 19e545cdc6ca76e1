package boltdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/models"
)

// typeKey ключ индекса mapping_idx_type: entityType | 0x00 | localID
func typeKey(entityType, localID string) []byte {
	key := make([]byte, 0, len(entityType)+1+len(localID))
	key = append(key, entityType...)
	key = append(key, 0)
	return append(key, localID...)
}

func getMappingTx(tx *bbolt.Tx, c *codec, localID string) (*models.LocalIDMapping, error) {
	data := tx.Bucket(bucketMapping).Get([]byte(localID))
	if data == nil {
		return nil, storage.ErrMappingNotFound
	}
	m := &models.LocalIDMapping{}
	if err := c.decode(data, m); err != nil {
		return nil, fmt.Errorf("mapping %s: %w", localID, err)
	}
	return m, nil
}

// SaveMapping stores a mapping once. The same pair again is a no-op
func (s *Storage) SaveMapping(ctx context.Context, mapping *models.LocalIDMapping) error {
	if mapping == nil || mapping.LocalID == "" || mapping.ServerID == "" {
		return fmt.Errorf("mapping requires local id and server id")
	}
	if mapping.Timestamp == 0 {
		mapping.Timestamp = s.now().UnixMilli()
	}

	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		existing, err := getMappingTx(tx, c, mapping.LocalID)
		switch {
		case err == nil && existing.ServerID == mapping.ServerID:
			return nil
		case err == nil:
			return fmt.Errorf("%s -> %s: %w", mapping.LocalID, existing.ServerID, storage.ErrMappingExists)
		case !errors.Is(err, storage.ErrMappingNotFound):
			return err
		}

		byServer := tx.Bucket(bucketMappingServer)
		if owner := byServer.Get([]byte(mapping.ServerID)); owner != nil && string(owner) != mapping.LocalID {
			return fmt.Errorf("server id %s already mapped from %s: %w", mapping.ServerID, owner, storage.ErrMappingExists)
		}

		data, err := c.encode(mapping)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketMapping).Put([]byte(mapping.LocalID), data); err != nil {
			return fmt.Errorf("failed to save mapping: %w", err)
		}
		if err := byServer.Put([]byte(mapping.ServerID), []byte(mapping.LocalID)); err != nil {
			return fmt.Errorf("failed to index server id: %w", err)
		}
		if err := tx.Bucket(bucketMappingByType).Put(typeKey(mapping.EntityType, mapping.LocalID), nil); err != nil {
			return fmt.Errorf("failed to index entity type: %w", err)
		}
		return nil
	})
}

// GetServerID returns server id for local id
func (s *Storage) GetServerID(ctx context.Context, localID string) (string, error) {
	var serverID string

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		m, err := getMappingTx(tx, c, localID)
		if err != nil {
			return err
		}
		serverID = m.ServerID
		return nil
	})
	if err != nil {
		return "", err
	}

	return serverID, nil
}

// GetLocalID returns local id for server id
func (s *Storage) GetLocalID(ctx context.Context, serverID string) (string, error) {
	var localID string

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		v := tx.Bucket(bucketMappingServer).Get([]byte(serverID))
		if v == nil {
			return storage.ErrMappingNotFound
		}
		localID = string(v)
		return nil
	})
	if err != nil {
		return "", err
	}

	return localID, nil
}

// GetMappingsByEntityType returns all mappings of an entity type
func (s *Storage) GetMappingsByEntityType(ctx context.Context, entityType string) ([]*models.LocalIDMapping, error) {
	var mappings []*models.LocalIDMapping
	prefix := typeKey(entityType, "")

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		cur := tx.Bucket(bucketMappingByType).Cursor()
		for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
			m, err := getMappingTx(tx, c, string(k[len(prefix):]))
			if err != nil {
				return err
			}
			mappings = append(mappings, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s mappings: %w", entityType, err)
	}

	return mappings, nil
}

// GetAllMappings returns all mappings
func (s *Storage) GetAllMappings(ctx context.Context) ([]*models.LocalIDMapping, error) {
	var mappings []*models.LocalIDMapping

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		return tx.Bucket(bucketMapping).ForEach(func(k, v []byte) error {
			m := &models.LocalIDMapping{}
			if err := c.decode(v, m); err != nil {
				return fmt.Errorf("mapping %s: %w", k, err)
			}
			mappings = append(mappings, m)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mappings: %w", err)
	}

	return mappings, nil
}

// DeleteMapping removes a mapping and its index entries
func (s *Storage) DeleteMapping(ctx context.Context, localID string) error {
	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		m, err := getMappingTx(tx, c, localID)
		if errors.Is(err, storage.ErrMappingNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketMappingServer).Delete([]byte(m.ServerID)); err != nil {
			return err
		}
		if err := tx.Bucket(bucketMappingByType).Delete(typeKey(m.EntityType, m.LocalID)); err != nil {
			return err
		}
		return tx.Bucket(bucketMapping).Delete([]byte(localID))
	})
}
