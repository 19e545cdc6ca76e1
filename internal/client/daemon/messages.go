package daemon

import (
	"github.com/iudanet/gophsync/internal/models"
)

// ControlPrefix префикс управляющих эндпоинтов; все остальные пути проксируются на сервер
const ControlPrefix = "/_sync"

// StatusResponse ответ GET /_sync/status
type StatusResponse struct {
	Counts       map[models.ActionStatus]int `json:"counts"`
	Connectivity models.ConnectivityState    `json:"connectivity"`
	Progress     models.SyncProgress         `json:"progress"`
	Draining     bool                        `json:"draining"`
}

// SweepResponse ответ POST /_sync/cache/sweep
type SweepResponse struct {
	Removed int `json:"removed"`
}

// OfflineResponse тело ответа прокси, когда запрос нельзя выполнить без сети.
// Status всегда 0: сервер не отвечал.
type OfflineResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
	Method string `json:"method"`
	URL    string `json:"url"`
	Status int    `json:"status"`
}

// StreamKind тип сообщения потока /_sync/events
type StreamKind string

const (
	StreamProgress     StreamKind = "progress"
	StreamEvent        StreamKind = "event"
	StreamConnectivity StreamKind = "connectivity"
)

// StreamMessage сообщение websocket потока; заполнено ровно одно поле по Kind
type StreamMessage struct {
	Progress     *models.SyncProgress      `json:"progress,omitempty"`
	Event        *models.Event             `json:"event,omitempty"`
	Connectivity *models.ConnectivityState `json:"connectivity,omitempty"`
	Kind         StreamKind                `json:"kind"`
}
