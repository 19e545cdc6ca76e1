package storage

import (
	"context"

	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for the durable queue of pending mutations.
// Record and index entries are written atomically.
type QueueStorage interface {
	// AddAction stores a new action
	// Returns ErrActionExists if action with the same ID exists
	AddAction(ctx context.Context, action *models.QueuedAction) error

	// UpdateAction replaces a stored action and moves its index entries
	// Returns ErrActionNotFound if action doesn't exist
	UpdateAction(ctx context.Context, action *models.QueuedAction) error

	// GetAction retrieves an action by ID
	// Returns ErrActionNotFound if action doesn't exist
	GetAction(ctx context.Context, id string) (*models.QueuedAction, error)

	// DeleteAction removes an action
	// Returns ErrActionNotFound if action doesn't exist
	DeleteAction(ctx context.Context, id string) error

	// GetAllActions returns every action ordered by timestamp ascending
	GetAllActions(ctx context.Context) ([]*models.QueuedAction, error)

	// GetActionsByStatus returns actions with the given status ordered by timestamp ascending
	GetActionsByStatus(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error)

	// GetPendingActions is GetActionsByStatus(PENDING)
	GetPendingActions(ctx context.Context) ([]*models.QueuedAction, error)

	// GetFailedActions is GetActionsByStatus(FAILED)
	GetFailedActions(ctx context.Context) ([]*models.QueuedAction, error)

	// CountByStatus returns number of actions with the given status
	CountByStatus(ctx context.Context, status models.ActionStatus) (int, error)

	// ClearQueue removes all actions
	ClearQueue(ctx context.Context) error
}
