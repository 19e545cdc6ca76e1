package storage

import (
	"context"

	"github.com/iudanet/gophsync/internal/models"
)

// MappingStorage defines interface for the local id ⇄ server id table.
// Mappings are append-only.
type MappingStorage interface {
	// SaveMapping stores a mapping. Saving the same pair again is a no-op,
	// a different server id for a known local id returns ErrMappingExists
	SaveMapping(ctx context.Context, mapping *models.LocalIDMapping) error

	// GetServerID returns server id for local id
	// Returns ErrMappingNotFound if mapping doesn't exist
	GetServerID(ctx context.Context, localID string) (string, error)

	// GetLocalID returns local id for server id
	// Returns ErrMappingNotFound if mapping doesn't exist
	GetLocalID(ctx context.Context, serverID string) (string, error)

	// GetMappingsByEntityType returns all mappings of an entity type
	GetMappingsByEntityType(ctx context.Context, entityType string) ([]*models.LocalIDMapping, error)

	// GetAllMappings returns all mappings
	GetAllMappings(ctx context.Context) ([]*models.LocalIDMapping, error)

	// DeleteMapping removes a mapping, missing local id is not an error
	DeleteMapping(ctx context.Context, localID string) error
}
