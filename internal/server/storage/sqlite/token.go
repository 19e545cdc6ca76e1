package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/storage"
)

// SaveToken stores a newly issued token
func (s *Storage) SaveToken(ctx context.Context, token *models.IssuedToken) error {
	query := `
		INSERT INTO issued_tokens (id, subject, expires_at, created_at, revoked_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		token.Subject,
		token.ExpiresAt.UnixMilli(),
		token.CreatedAt.UnixMilli(),
		nullableMillis(token.RevokedAt),
	)

	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// GetToken retrieves token by id
func (s *Storage) GetToken(ctx context.Context, id string) (*models.IssuedToken, error) {
	query := `
		SELECT id, subject, expires_at, created_at, revoked_at
		FROM issued_tokens
		WHERE id = ?
	`

	token, err := scanToken(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// ListTokens returns all tokens, newest first
func (s *Storage) ListTokens(ctx context.Context) ([]*models.IssuedToken, error) {
	query := `
		SELECT id, subject, expires_at, created_at, revoked_at
		FROM issued_tokens
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tokens []*models.IssuedToken

	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}

// RevokeToken marks token as revoked; revoking twice keeps the first revocation time
func (s *Storage) RevokeToken(ctx context.Context, id string) error {
	query := `UPDATE issued_tokens SET revoked_at = COALESCE(revoked_at, ?) WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, time.Now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredTokens removes all expired tokens
func (s *Storage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	query := `DELETE FROM issued_tokens WHERE expires_at < ?`

	result, err := s.db.ExecContext(ctx, query, time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

func scanToken(row scanner) (*models.IssuedToken, error) {
	var (
		token                models.IssuedToken
		expiresAt, createdAt int64
		revokedAt            sql.NullInt64
	)

	if err := row.Scan(&token.ID, &token.Subject, &expiresAt, &createdAt, &revokedAt); err != nil {
		return nil, err
	}

	token.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	token.CreatedAt = time.UnixMilli(createdAt).UTC()
	if revokedAt.Valid {
		t := time.UnixMilli(revokedAt.Int64).UTC()
		token.RevokedAt = &t
	}

	return &token, nil
}

func nullableMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
