package models

import (
	"encoding/json"
	"time"
)

// MaxRetries количество неудачных попыток, после которого действие переходит в FAILED
const MaxRetries = 3

// ActionType тип отложенной мутации
type ActionType string

// Known action types. Every type maps to exactly one payload shape (see payload.go).
const (
	ActionCreateMessage     ActionType = "CREATE_MESSAGE"
	ActionUpdateStatus      ActionType = "UPDATE_DOSSIER_STATUS"
	ActionCreateAppointment ActionType = "CREATE_APPOINTMENT"
	ActionUpdateAppointment ActionType = "UPDATE_APPOINTMENT"
	ActionCreateNote        ActionType = "CREATE_NOTE"
)

// AllActionTypes lists every supported action type.
var AllActionTypes = []ActionType{
	ActionCreateMessage,
	ActionUpdateStatus,
	ActionCreateAppointment,
	ActionUpdateAppointment,
	ActionCreateNote,
}

// IsValid reports whether t is one of the known action types.
func (t ActionType) IsValid() bool {
	for _, known := range AllActionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsCreation reports whether the action creates a new entity on the server.
// Creation actions carry a LocalID and never conflict.
func (t ActionType) IsCreation() bool {
	switch t {
	case ActionCreateMessage, ActionCreateAppointment, ActionCreateNote:
		return true
	}
	return false
}

// EntityType returns the server entity the action targets.
func (t ActionType) EntityType() string {
	switch t {
	case ActionCreateMessage:
		return EntityMessage
	case ActionUpdateStatus:
		return EntityDossier
	case ActionCreateAppointment, ActionUpdateAppointment:
		return EntityAppointment
	case ActionCreateNote:
		return EntityNote
	}
	return "default"
}

// Label returns a human readable label used in notifications.
func (t ActionType) Label() string {
	switch t {
	case ActionCreateMessage:
		return "Message creation"
	case ActionUpdateStatus:
		return "Status change"
	case ActionCreateAppointment:
		return "Appointment creation"
	case ActionUpdateAppointment:
		return "Appointment update"
	case ActionCreateNote:
		return "Note creation"
	}
	return string(t)
}

// Entity types
const (
	EntityMessage     = "message"
	EntityDossier     = "dossier"
	EntityAppointment = "appointment"
	EntityNote        = "note"
)

// ActionStatus состояние действия в очереди
type ActionStatus string

const (
	StatusPending  ActionStatus = "PENDING"
	StatusSyncing  ActionStatus = "SYNCING"
	StatusSuccess  ActionStatus = "SUCCESS"
	StatusFailed   ActionStatus = "FAILED"
	StatusConflict ActionStatus = "CONFLICT"
)

// AllStatuses lists every queue status.
var AllStatuses = []ActionStatus{StatusPending, StatusSyncing, StatusSuccess, StatusFailed, StatusConflict}

// IsValid reports whether s is a known status.
func (s ActionStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no automatic transition leaves this status.
func (s ActionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// ErrorKind classifies why the last attempt of an action failed.
type ErrorKind string

const (
	ErrorKindNone         ErrorKind = ""
	ErrorKindUnreachable  ErrorKind = "unreachable"
	ErrorKindRejected     ErrorKind = "remote_rejected"
	ErrorKindConflict     ErrorKind = "conflict"
	ErrorKindInvalidInput ErrorKind = "invalid_payload"
)

// QueuedAction представляет мутацию, записанную в очередь пока сервер недоступен.
// Создается в Enqueue, изменяется только координатором синхронизации.
type QueuedAction struct {
	ID             string          `json:"id"`
	Type           ActionType      `json:"type"`
	Payload        json.RawMessage `json:"payload"`
	Status         ActionStatus    `json:"status"`
	Error          string          `json:"error,omitempty"`
	ErrorKind      ErrorKind       `json:"error_kind,omitempty"`
	LocalID        string          `json:"local_id,omitempty"`
	ServerID       string          `json:"server_id,omitempty"`
	Resolution     string          `json:"resolution,omitempty"`     // стратегия, которой был разрешен конфликт
	ConflictFields []string        `json:"conflict_fields,omitempty"` // поля, требующие ручного разрешения
	Timestamp      int64           `json:"timestamp"`                 // unix ms, порядок дренажа
	RetryCount     int             `json:"retry_count"`
}

// EnqueuedAt returns the enqueue time.
func (a *QueuedAction) EnqueuedAt() time.Time {
	return time.UnixMilli(a.Timestamp)
}

// DecodePayload decodes the action payload into its typed form.
func (a *QueuedAction) DecodePayload() (Payload, error) {
	return DecodePayload(a.Type, a.Payload)
}

// Clone создает глубокую копию действия
func (a *QueuedAction) Clone() *QueuedAction {
	clone := *a
	if a.Payload != nil {
		clone.Payload = make(json.RawMessage, len(a.Payload))
		copy(clone.Payload, a.Payload)
	}
	if a.ConflictFields != nil {
		clone.ConflictFields = make([]string, len(a.ConflictFields))
		copy(clone.ConflictFields, a.ConflictFields)
	}
	return &clone
}
