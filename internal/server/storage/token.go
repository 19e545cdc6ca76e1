package storage

import (
	"context"

	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines interface for issued token registry
type TokenStorage interface {
	// SaveToken stores a newly issued token
	SaveToken(ctx context.Context, token *models.IssuedToken) error

	// GetToken retrieves token by id (jti)
	// Returns ErrTokenNotFound if token doesn't exist
	GetToken(ctx context.Context, id string) (*models.IssuedToken, error)

	// ListTokens returns all tokens, newest first
	ListTokens(ctx context.Context) ([]*models.IssuedToken, error)

	// RevokeToken marks token as revoked
	// Returns ErrTokenNotFound if token doesn't exist
	RevokeToken(ctx context.Context, id string) error

	// DeleteExpiredTokens removes all expired tokens
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
