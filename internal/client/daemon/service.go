// Package daemon локальный HTTP процесс клиента: проксирует запросы приложения через
// перехватчик и дает управляющий API очереди синхронизации для CLI.
package daemon

import (
	"context"

	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out network_mock.go . Network

// Service операции координатора синхронизации, доступные через управляющий API
type Service interface {
	Counts(ctx context.Context) (map[models.ActionStatus]int, error)
	Actions(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error)
	Action(ctx context.Context, id string) (*models.QueuedAction, error)
	Retry(ctx context.Context, id string) error
	ResolveConflict(ctx context.Context, id string, strategy conflict.Strategy) (*conflict.MergeResult, error)
	ClearQueue(ctx context.Context) error
	Drain(ctx context.Context) error
	IsDraining() bool
	Progress() models.SyncProgress
	SubscribeProgress() (<-chan models.SyncProgress, func())
	SubscribeEvents() (<-chan models.Event, func())
}

// Network состояние сети
type Network interface {
	State() models.ConnectivityState
	Subscribe() (<-chan models.ConnectivityState, func())
	Check(ctx context.Context) bool
}
