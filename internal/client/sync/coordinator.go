package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/iudanet/gophsync/internal/client/api"
	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/clock"
	"github.com/iudanet/gophsync/internal/events"
	"github.com/iudanet/gophsync/internal/models"
)

// Интервалы фоновых задач по умолчанию
const (
	DefaultDrainInterval = 30 * time.Second
	DefaultSweepInterval = 5 * time.Minute
)

// ActionSpec описание мутации, которую нужно поставить в очередь
type ActionSpec struct {
	Type    models.ActionType
	Payload json.RawMessage
	LocalID string // для создания генерируется, если пусто
}

// Options зависимости координатора
type Options struct {
	API      api.ClientAPI
	Queue    storage.QueueStorage
	Mappings storage.MappingStorage
	Cache    storage.CacheStorage
	Metadata storage.MetadataStorage
	Monitor  Monitor
	Resolver conflict.Resolver
	Clock    *clock.Clock
	Logger   *slog.Logger

	DrainInterval time.Duration
	SweepInterval time.Duration
}

// Coordinator переносит действия из локальной очереди на сервер.
// Одновременно выполняется не более одного дренажа.
type Coordinator struct {
	api      api.ClientAPI
	queue    storage.QueueStorage
	mappings storage.MappingStorage
	cache    storage.CacheStorage
	metadata storage.MetadataStorage
	monitor  Monitor
	resolver conflict.Resolver
	clock    *clock.Clock
	logger   *slog.Logger

	progress *events.Broker[models.SyncProgress]
	events   *events.Broker[models.Event]

	ctx    context.Context
	cancel context.CancelFunc
	cron   *cron.Cron

	drainInterval time.Duration
	sweepInterval time.Duration

	wg       gosync.WaitGroup
	mu       gosync.Mutex
	draining atomic.Bool
	dirty    atomic.Bool
	started  bool
}

// NewCoordinator создает координатор. Фоновые задачи запускаются в Start.
func NewCoordinator(opts Options) (*Coordinator, error) {
	switch {
	case opts.API == nil:
		return nil, errors.New("api client is required")
	case opts.Queue == nil:
		return nil, errors.New("queue storage is required")
	case opts.Mappings == nil:
		return nil, errors.New("mapping storage is required")
	case opts.Monitor == nil:
		return nil, errors.New("connectivity monitor is required")
	case opts.Resolver == nil:
		return nil, errors.New("conflict resolver is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	drainInterval := opts.DrainInterval
	if drainInterval <= 0 {
		drainInterval = DefaultDrainInterval
	}
	sweepInterval := opts.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Coordinator{
		api:           opts.API,
		queue:         opts.Queue,
		mappings:      opts.Mappings,
		cache:         opts.Cache,
		metadata:      opts.Metadata,
		monitor:       opts.Monitor,
		resolver:      opts.Resolver,
		clock:         clk,
		logger:        logger,
		progress:      events.NewLatestBroker(models.SyncProgress{}),
		events:        events.NewBroker[models.Event](events.DefaultBufferSize),
		ctx:           ctx,
		cancel:        cancel,
		drainInterval: drainInterval,
		sweepInterval: sweepInterval,
	}, nil
}

// Enqueue сохраняет действие и, если сеть доступна, запускает дренаж.
// Возвращает id действия только после успешной записи в хранилище.
func (c *Coordinator) Enqueue(ctx context.Context, spec ActionSpec) (string, error) {
	if _, err := models.DecodePayload(spec.Type, spec.Payload); err != nil {
		return "", err
	}

	action := &models.QueuedAction{
		ID:        uuid.NewString(),
		Type:      spec.Type,
		Payload:   append(json.RawMessage(nil), spec.Payload...),
		Status:    models.StatusPending,
		LocalID:   spec.LocalID,
		Timestamp: c.clock.Tick(),
	}
	if action.LocalID == "" && action.Type.IsCreation() {
		action.LocalID = NewLocalID()
	}

	if err := c.queue.AddAction(ctx, action); err != nil {
		c.logger.Error("Failed to persist queued action",
			"type", action.Type,
			"error", err)
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	c.logger.Info("Action queued",
		"action_id", action.ID,
		"type", action.Type,
		"local_id", action.LocalID)

	c.emit(models.Event{
		Kind:       models.EventQueued,
		ActionID:   action.ID,
		ActionType: action.Type,
		Message:    "Queued: " + action.Type.Label(),
	})

	c.dirty.Store(true)
	if c.monitor.IsOnline() {
		c.kick()
	}

	return action.ID, nil
}

// NewLocalID генерирует локальный id для сущности, созданной офлайн
func NewLocalID() string {
	return "local-" + uuid.NewString()
}

// Retry возвращает FAILED или CONFLICT действие в PENDING со сброшенным счетчиком попыток.
// SYNCING действие без идущего дренажа тоже можно повторить.
func (c *Coordinator) Retry(ctx context.Context, id string) error {
	action, err := c.queue.GetAction(ctx, id)
	if err != nil {
		return err
	}
	locked := false
	switch action.Status {
	case models.StatusFailed, models.StatusConflict:
	case models.StatusSyncing:
		if !c.draining.CompareAndSwap(false, true) {
			return fmt.Errorf("%w: %s is being synced", ErrNotRetryable, id)
		}
		locked = true
	default:
		return fmt.Errorf("%w: %s is %s", ErrNotRetryable, id, action.Status)
	}

	action.Status = models.StatusPending
	action.RetryCount = 0
	action.Error = ""
	action.ErrorKind = models.ErrorKindNone
	action.ConflictFields = nil

	err = c.queue.UpdateAction(ctx, action)
	if locked {
		c.draining.Store(false)
	}
	if err != nil {
		return fmt.Errorf("failed to reset action: %w", err)
	}

	c.logger.Info("Action scheduled for retry", "action_id", id, "type", action.Type)

	c.dirty.Store(true)
	if c.monitor.IsOnline() {
		c.kick()
	}
	return nil
}

// ResolveConflict разрешает действие в статусе CONFLICT заданной стратегией.
// Серверная версия загружается заново; если расхождения больше нет, действие повторяется как есть.
func (c *Coordinator) ResolveConflict(ctx context.Context, id string, strategy conflict.Strategy) (*conflict.MergeResult, error) {
	action, err := c.queue.GetAction(ctx, id)
	if err != nil {
		return nil, err
	}
	if action.Status != models.StatusConflict {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotConflicted, id, action.Status)
	}

	info, err := c.resolver.DetectConflict(ctx, action)
	if err != nil {
		return nil, err
	}

	var result *conflict.MergeResult
	if info == nil {
		action.Status = models.StatusPending
		action.ConflictFields = nil
		action.Error = ""
		action.ErrorKind = models.ErrorKindNone
		action.RetryCount = 0
	} else {
		result, err = c.resolver.Resolve(info, strategy)
		if err != nil {
			return nil, err
		}
		action.RetryCount = 0
		if err := c.applyResolution(action, info, result, false); err != nil {
			return nil, err
		}
	}

	if err := c.queue.UpdateAction(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to update action: %w", err)
	}

	if action.Status == models.StatusPending {
		c.dirty.Store(true)
		if c.monitor.IsOnline() {
			c.kick()
		}
	}
	return result, nil
}

// ClearQueue удаляет все действия и сбрасывает прогресс
func (c *Coordinator) ClearQueue(ctx context.Context) error {
	if err := c.queue.ClearQueue(ctx); err != nil {
		return err
	}
	c.progress.Publish(models.SyncProgress{})
	c.logger.Info("Queue cleared")
	return nil
}

// PendingCount количество действий, ожидающих отправки
func (c *Coordinator) PendingCount(ctx context.Context) (int, error) {
	return c.queue.CountByStatus(ctx, models.StatusPending)
}

// Counts количество действий по статусам
func (c *Coordinator) Counts(ctx context.Context) (map[models.ActionStatus]int, error) {
	counts := make(map[models.ActionStatus]int, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		n, err := c.queue.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

func (c *Coordinator) FailedActions(ctx context.Context) ([]*models.QueuedAction, error) {
	return c.queue.GetFailedActions(ctx)
}

func (c *Coordinator) ConflictedActions(ctx context.Context) ([]*models.QueuedAction, error) {
	return c.queue.GetActionsByStatus(ctx, models.StatusConflict)
}

// Actions возвращает действия с заданным статусом или все, если статус пуст
func (c *Coordinator) Actions(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error) {
	if status == "" {
		return c.queue.GetAllActions(ctx)
	}
	return c.queue.GetActionsByStatus(ctx, status)
}

// Action возвращает действие по id
func (c *Coordinator) Action(ctx context.Context, id string) (*models.QueuedAction, error) {
	return c.queue.GetAction(ctx, id)
}

// Progress последнее опубликованное состояние дренажа
func (c *Coordinator) Progress() models.SyncProgress {
	p, _ := c.progress.Last()
	return p
}

// SubscribeProgress подписка на прогресс; текущее значение приходит сразу
func (c *Coordinator) SubscribeProgress() (<-chan models.SyncProgress, func()) {
	return c.progress.Subscribe()
}

// SubscribeEvents подписка на уведомления о действиях
func (c *Coordinator) SubscribeEvents() (<-chan models.Event, func()) {
	return c.events.Subscribe()
}

// kick запускает дренаж в фоне на контексте координатора
func (c *Coordinator) kick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Drain(c.ctx); err != nil {
			c.logger.Error("Background drain failed", "error", err)
		}
	}()
}

func (c *Coordinator) emit(e models.Event) {
	if e.Time.IsZero() {
		e.Time = c.clock.Now()
	}
	c.events.Publish(e)
}
