package models

import (
	"encoding/json"
	"time"
)

// CacheEntry кешированный ответ для чтения в офлайне.
// Запись с истекшим ExpiresAt считается отсутствующей.
type CacheEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`            // unix ms записи
	ExpiresAt int64           `json:"expires_at,omitempty"` // unix ms, 0 = бессрочно
}

// IsExpired reports whether the entry is logically absent at now.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return e.ExpiresAt != 0 && e.ExpiresAt <= now.UnixMilli()
}

// LocalIDMapping связывает локальный id созданной офлайн сущности с id, выданным сервером.
// Запись создается один раз и никогда не перезаписывается.
type LocalIDMapping struct {
	LocalID    string `json:"local_id"`
	ServerID   string `json:"server_id"`
	EntityType string `json:"entity_type"`
	Timestamp  int64  `json:"timestamp"`
}
