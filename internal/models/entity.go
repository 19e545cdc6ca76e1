package models

import (
	"maps"
	"time"
)

// Entity сущность эталонного бэкенда. Data хранит поля предметной области,
// системные поля (id, version, createdAt, updatedAt) ведет сервер.
type Entity struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      map[string]any
	ID        string
	Kind      string
	Version   int64
}

// Fields returns the wire representation: domain fields plus server-managed fields.
// Server-managed fields always win over same-named keys in Data.
func (e *Entity) Fields() map[string]any {
	out := make(map[string]any, len(e.Data)+4)
	maps.Copy(out, e.Data)
	out["id"] = e.ID
	out["version"] = e.Version
	out["createdAt"] = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	out["updatedAt"] = e.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return out
}

// StripSystemFields removes server-managed keys from client supplied data.
func StripSystemFields(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case "id", "version", "createdAt", "updatedAt":
			continue
		}
		out[k] = v
	}
	return out
}
