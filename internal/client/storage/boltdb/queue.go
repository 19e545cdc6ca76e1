package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/models"
)

// Ключи индексов очереди:
//   queue_idx_status: status | 0x00 | timestamp (8 bytes BE) | id
//   queue_idx_ts:     timestamp (8 bytes BE) | id
// Big-endian метка дает обход по возрастанию времени обычным курсором.

func statusPrefix(status models.ActionStatus) []byte {
	prefix := make([]byte, 0, len(status)+1)
	prefix = append(prefix, status...)
	return append(prefix, 0)
}

func timeKey(ts int64, id string) []byte {
	key := make([]byte, 8, 8+len(id))
	binary.BigEndian.PutUint64(key, uint64(ts))
	return append(key, id...)
}

func statusKey(a *models.QueuedAction) []byte {
	return append(statusPrefix(a.Status), timeKey(a.Timestamp, a.ID)...)
}

// putActionTx пишет запись и ее индексы
func putActionTx(tx *bbolt.Tx, c *codec, action *models.QueuedAction) error {
	data, err := c.encode(action)
	if err != nil {
		return err
	}
	if err := tx.Bucket(bucketQueue).Put([]byte(action.ID), data); err != nil {
		return fmt.Errorf("failed to save action: %w", err)
	}
	if err := tx.Bucket(bucketQueueByStatus).Put(statusKey(action), nil); err != nil {
		return fmt.Errorf("failed to index action status: %w", err)
	}
	if err := tx.Bucket(bucketQueueByTime).Put(timeKey(action.Timestamp, action.ID), nil); err != nil {
		return fmt.Errorf("failed to index action timestamp: %w", err)
	}
	return nil
}

// deleteActionIndexesTx удаляет индексы старой версии записи
func deleteActionIndexesTx(tx *bbolt.Tx, action *models.QueuedAction) error {
	if err := tx.Bucket(bucketQueueByStatus).Delete(statusKey(action)); err != nil {
		return err
	}
	return tx.Bucket(bucketQueueByTime).Delete(timeKey(action.Timestamp, action.ID))
}

func getActionTx(tx *bbolt.Tx, c *codec, id string) (*models.QueuedAction, error) {
	data := tx.Bucket(bucketQueue).Get([]byte(id))
	if data == nil {
		return nil, storage.ErrActionNotFound
	}
	action := &models.QueuedAction{}
	if err := c.decode(data, action); err != nil {
		return nil, fmt.Errorf("action %s: %w", id, err)
	}
	return action, nil
}

// AddAction stores a new action
func (s *Storage) AddAction(ctx context.Context, action *models.QueuedAction) error {
	if action == nil || action.ID == "" {
		return fmt.Errorf("action id cannot be empty")
	}

	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		if tx.Bucket(bucketQueue).Get([]byte(action.ID)) != nil {
			return storage.ErrActionExists
		}
		return putActionTx(tx, c, action)
	})
}

// UpdateAction replaces a stored action and moves its index entries
func (s *Storage) UpdateAction(ctx context.Context, action *models.QueuedAction) error {
	if action == nil || action.ID == "" {
		return fmt.Errorf("action id cannot be empty")
	}

	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		old, err := getActionTx(tx, c, action.ID)
		if err != nil {
			return err
		}
		if err := deleteActionIndexesTx(tx, old); err != nil {
			return fmt.Errorf("failed to drop old index entries: %w", err)
		}
		return putActionTx(tx, c, action)
	})
}

// GetAction retrieves an action by ID
func (s *Storage) GetAction(ctx context.Context, id string) (*models.QueuedAction, error) {
	var action *models.QueuedAction

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		var err error
		action, err = getActionTx(tx, c, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// DeleteAction removes an action and its index entries
func (s *Storage) DeleteAction(ctx context.Context, id string) error {
	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		old, err := getActionTx(tx, c, id)
		if err != nil {
			return err
		}
		if err := deleteActionIndexesTx(tx, old); err != nil {
			return fmt.Errorf("failed to drop index entries: %w", err)
		}
		return tx.Bucket(bucketQueue).Delete([]byte(id))
	})
}

// GetAllActions returns every action ordered by timestamp ascending
func (s *Storage) GetAllActions(ctx context.Context) ([]*models.QueuedAction, error) {
	var actions []*models.QueuedAction

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		cur := tx.Bucket(bucketQueueByTime).Cursor()
		for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
			action, err := getActionTx(tx, c, string(k[8:]))
			if err != nil {
				return err
			}
			actions = append(actions, action)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all actions: %w", err)
	}

	return actions, nil
}

// GetActionsByStatus returns actions with the given status ordered by timestamp ascending
func (s *Storage) GetActionsByStatus(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error) {
	var actions []*models.QueuedAction
	prefix := statusPrefix(status)

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		cur := tx.Bucket(bucketQueueByStatus).Cursor()
		for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
			id := string(k[len(prefix)+8:])
			action, err := getActionTx(tx, c, id)
			if err != nil {
				return err
			}
			actions = append(actions, action)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s actions: %w", status, err)
	}

	return actions, nil
}

// GetPendingActions returns PENDING actions in drain order
func (s *Storage) GetPendingActions(ctx context.Context) ([]*models.QueuedAction, error) {
	return s.GetActionsByStatus(ctx, models.StatusPending)
}

// GetFailedActions returns FAILED actions
func (s *Storage) GetFailedActions(ctx context.Context) ([]*models.QueuedAction, error) {
	return s.GetActionsByStatus(ctx, models.StatusFailed)
}

// CountByStatus returns number of actions with the given status
func (s *Storage) CountByStatus(ctx context.Context, status models.ActionStatus) (int, error) {
	var count int
	prefix := statusPrefix(status)

	err := s.view(ctx, func(tx *bbolt.Tx, c *codec) error {
		cur := tx.Bucket(bucketQueueByStatus).Cursor()
		for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s actions: %w", status, err)
	}

	return count, nil
}

// ClearQueue removes all actions
func (s *Storage) ClearQueue(ctx context.Context) error {
	return s.update(ctx, func(tx *bbolt.Tx, c *codec) error {
		return resetBuckets(tx, bucketQueue, bucketQueueByStatus, bucketQueueByTime)
	})
}
