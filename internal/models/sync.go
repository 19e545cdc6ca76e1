package models

import "time"

// ConnectionStatus tri-state network status
type ConnectionStatus string

const (
	ConnectionOnline  ConnectionStatus = "ONLINE"
	ConnectionOffline ConnectionStatus = "OFFLINE"
	ConnectionSlow    ConnectionStatus = "SLOW"
)

// ConnectivityState snapshot of the connectivity monitor.
// LastOnline changes only on edges into and out of OFFLINE.
type ConnectivityState struct {
	LastOnline    time.Time        `json:"lastOnline"`
	Status        ConnectionStatus `json:"status"`
	EffectiveType string           `json:"effectiveType,omitempty"`
	Downlink      float64          `json:"downlink,omitempty"` // Mbit/s
	RTT           int64            `json:"rtt,omitempty"`      // ms
}

// SyncProgress прогресс текущего прохода синхронизации
type SyncProgress struct {
	Total      int  `json:"total"`
	Completed  int  `json:"completed"`
	Failed     int  `json:"failed"`
	InProgress bool `json:"inProgress"`
}

// EventKind вид уведомления для внешнего слоя
type EventKind string

const (
	EventQueued      EventKind = "queued"
	EventSynced      EventKind = "synced"
	EventRetrying    EventKind = "retrying"
	EventFailed      EventKind = "failed"
	EventConflict    EventKind = "conflict"
	EventBatchSynced EventKind = "batch_synced"
)

// Event notification emitted by the sync coordinator. It carries enough structure
// for a presentation layer to render an actionable message with a retry control.
type Event struct {
	Time       time.Time  `json:"time"`
	Kind       EventKind  `json:"kind"`
	ActionID   string     `json:"actionId,omitempty"`
	ActionType ActionType `json:"actionType,omitempty"`
	ErrorKind  ErrorKind  `json:"errorKind,omitempty"`
	Message    string     `json:"message"`
	Count      int        `json:"count,omitempty"`
	Retryable  bool       `json:"retryable"`
}
