package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/storage"
)

// rowQuerier общий интерфейс *sql.DB и *sql.Tx для чтения одной строки
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateEntity stores a new entity with version 1 or returns the entity
// previously created with the same idempotency key
func (s *Storage) CreateEntity(ctx context.Context, kind string, data map[string]any, idempotencyKey string) (*models.Entity, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if idempotencyKey != "" {
		var existingKind, entityID string
		err := tx.QueryRowContext(ctx,
			`SELECT kind, entity_id FROM idempotency_keys WHERE key = ?`,
			idempotencyKey,
		).Scan(&existingKind, &entityID)

		switch {
		case err == nil:
			existing, err := getEntity(ctx, tx, existingKind, entityID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		case !errors.Is(err, sql.ErrNoRows):
			return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	entity := &models.Entity{
		ID:        uuid.NewString(),
		Kind:      kind,
		Data:      models.StripSystemFields(data),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	raw, err := json.Marshal(entity.Data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal entity data: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entities (kind, id, data, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entity.Kind,
		entity.ID,
		string(raw),
		entity.Version,
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert entity: %w", err)
	}

	if idempotencyKey != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO idempotency_keys (key, kind, entity_id, created_at)
			VALUES (?, ?, ?, ?)
		`, idempotencyKey, entity.Kind, entity.ID, now.UnixMilli())
		if err != nil {
			return nil, false, fmt.Errorf("failed to save idempotency key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit entity: %w", err)
	}

	return entity, true, nil
}

// GetEntity retrieves entity by kind and id
func (s *Storage) GetEntity(ctx context.Context, kind, id string) (*models.Entity, error) {
	return getEntity(ctx, s.db, kind, id)
}

// ListEntities returns entities of a kind in creation order, filtered by field values
func (s *Storage) ListEntities(ctx context.Context, kind string, filter map[string]string) ([]*models.Entity, error) {
	query := `
		SELECT kind, id, data, version, created_at, updated_at
		FROM entities
		WHERE kind = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entities := make([]*models.Entity, 0)
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		if matches(entity, filter) {
			entities = append(entities, entity)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entities, nil
}

// UpdateEntity applies data and increments the version
func (s *Storage) UpdateEntity(ctx context.Context, kind, id string, data map[string]any, expectedVersion *int64, replace bool) (*models.Entity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := getEntity(ctx, tx, kind, id)
	if err != nil {
		return nil, err
	}
	if expectedVersion != nil && *expectedVersion != current.Version {
		return current, fmt.Errorf("%w: %s/%s expected %d, current %d",
			storage.ErrVersionMismatch, kind, id, *expectedVersion, current.Version)
	}

	fields := models.StripSystemFields(data)
	if !replace {
		merged := maps.Clone(current.Data)
		if merged == nil {
			merged = make(map[string]any, len(fields))
		}
		maps.Copy(merged, fields)
		fields = merged
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity data: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	result, err := tx.ExecContext(ctx, `
		UPDATE entities
		SET data = ?, version = version + 1, updated_at = ?
		WHERE kind = ? AND id = ? AND version = ?
	`, string(raw), now.UnixMilli(), kind, id, current.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return current, fmt.Errorf("%w: %s/%s changed concurrently", storage.ErrVersionMismatch, kind, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit entity: %w", err)
	}

	updated := *current
	updated.Data = fields
	updated.Version = current.Version + 1
	updated.UpdatedAt = now
	return &updated, nil
}

func getEntity(ctx context.Context, q rowQuerier, kind, id string) (*models.Entity, error) {
	row := q.QueryRowContext(ctx, `
		SELECT kind, id, data, version, created_at, updated_at
		FROM entities
		WHERE kind = ? AND id = ?
	`, kind, id)

	entity, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", storage.ErrEntityNotFound, kind, id)
		}
		return nil, err
	}
	return entity, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(row scanner) (*models.Entity, error) {
	var (
		entity               models.Entity
		raw                  string
		createdAt, updatedAt int64
	)

	if err := row.Scan(&entity.Kind, &entity.ID, &raw, &entity.Version, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan entity: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &entity.Data); err != nil {
		return nil, fmt.Errorf("failed to decode entity %s/%s: %w", entity.Kind, entity.ID, err)
	}
	entity.CreatedAt = time.UnixMilli(createdAt).UTC()
	entity.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &entity, nil
}

// matches сравнивает строковое представление полей с фильтром; отсутствующее поле не совпадает
func matches(entity *models.Entity, filter map[string]string) bool {
	for field, want := range filter {
		v, ok := entity.Data[field]
		if !ok || fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
