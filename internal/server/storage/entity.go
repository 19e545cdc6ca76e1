package storage

import (
	"context"

	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out entity_mock.go . EntityStorage

// EntityStorage defines interface for entity persistence with optimistic concurrency
type EntityStorage interface {
	// CreateEntity stores a new entity with version 1.
	// If idempotencyKey was already used, the entity created by the first call is returned
	// and created is false.
	CreateEntity(ctx context.Context, kind string, data map[string]any, idempotencyKey string) (entity *models.Entity, created bool, err error)

	// GetEntity retrieves entity by kind and id
	// Returns ErrEntityNotFound if entity doesn't exist
	GetEntity(ctx context.Context, kind, id string) (*models.Entity, error)

	// ListEntities returns entities of a kind whose fields match every filter value
	// Returns empty slice if no entities found
	ListEntities(ctx context.Context, kind string, filter map[string]string) ([]*models.Entity, error)

	// UpdateEntity applies data to the entity and increments its version.
	// replace=false merges data into stored fields, replace=true substitutes them.
	// When expectedVersion is set and differs, the current entity is returned together
	// with ErrVersionMismatch.
	UpdateEntity(ctx context.Context, kind, id string, data map[string]any, expectedVersion *int64, replace bool) (*models.Entity, error)

	// Ping checks database availability
	Ping(ctx context.Context) error
}
