package cli

import (
	"context"

	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/daemon"
	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out daemon_mock.go . Daemon

// Daemon управляющий API запущенного демона синхронизации
type Daemon interface {
	Status(ctx context.Context) (*daemon.StatusResponse, error)
	Check(ctx context.Context) (*models.ConnectivityState, error)
	Actions(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error)
	Action(ctx context.Context, id string) (*models.QueuedAction, error)
	Retry(ctx context.Context, id string) (*models.QueuedAction, error)
	Resolve(ctx context.Context, id string, strategy conflict.Strategy) (*conflict.MergeResult, error)
	ClearQueue(ctx context.Context) error
	Drain(ctx context.Context) (*models.SyncProgress, error)
	CacheEntries(ctx context.Context) ([]*models.CacheEntry, error)
	CacheEntry(ctx context.Context, key string) (*models.CacheEntry, error)
	ClearCache(ctx context.Context) error
	SweepCache(ctx context.Context) (int, error)
	Stream(ctx context.Context, fn func(daemon.StreamMessage) error) error
}

var _ Daemon = (*daemon.Client)(nil)

func connectDaemon(baseURL string) Daemon {
	return daemon.NewClient(baseURL)
}
