package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	gosync "sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsync/internal/client/api"
	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/client/storage/boltdb"
	"github.com/iudanet/gophsync/internal/clock"
	"github.com/iudanet/gophsync/internal/events"
	"github.com/iudanet/gophsync/internal/models"
)

// testNetwork управляемое состояние сети для тестов
type testNetwork struct {
	online atomic.Bool
	states *events.Broker[models.ConnectivityState]
}

func newTestNetwork(online bool) (*testNetwork, *MonitorMock) {
	status := models.ConnectionOffline
	if online {
		status = models.ConnectionOnline
	}
	n := &testNetwork{
		states: events.NewLatestBroker(models.ConnectivityState{Status: status}),
	}
	n.online.Store(online)

	mock := &MonitorMock{
		IsOnlineFunc: func() bool {
			return n.online.Load()
		},
		SubscribeFunc: func() (<-chan models.ConnectivityState, func()) {
			return n.states.Subscribe()
		},
		ReportUnreachableFunc: func() {},
	}
	return n, mock
}

func (n *testNetwork) set(online bool) {
	n.online.Store(online)
	status := models.ConnectionOffline
	if online {
		status = models.ConnectionOnline
	}
	n.states.Publish(models.ConnectivityState{Status: status})
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(filepath.Join(t.TempDir(), "sync.db"), boltdb.Options{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

type testEnv struct {
	coord    *Coordinator
	store    *boltdb.Storage
	api      *api.ClientAPIMock
	monitor  *MonitorMock
	network  *testNetwork
	fetcher  *conflict.EntityFetcherMock
	resolver conflict.Resolver
}

func newTestEnv(t *testing.T, online bool, apply func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error)) *testEnv {
	t.Helper()

	store := createTestStore(t)
	network, monitor := newTestNetwork(online)
	apiMock := &api.ClientAPIMock{ApplyFunc: apply}
	fetcher := &conflict.EntityFetcherMock{
		FetchEntityFunc: func(ctx context.Context, action *models.QueuedAction) (map[string]any, error) {
			return nil, nil
		},
	}
	resolver := conflict.NewResolver(fetcher, newTestLogger())

	fixed := time.UnixMilli(1_700_000_000_000)
	coord, err := NewCoordinator(Options{
		API:      apiMock,
		Queue:    store,
		Mappings: store,
		Cache:    store,
		Metadata: store,
		Monitor:  monitor,
		Resolver: resolver,
		Clock:    clock.NewWithSource(func() time.Time { return fixed }),
		Logger:   newTestLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(coord.Stop)

	return &testEnv{
		coord:    coord,
		store:    store,
		api:      apiMock,
		monitor:  monitor,
		network:  network,
		fetcher:  fetcher,
		resolver: resolver,
	}
}

func okApply(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
	return &api.ApplyResult{ServerID: "srv-" + action.ID, StatusCode: 200}, nil
}

func enqueueNote(t *testing.T, c *Coordinator, content string) string {
	t.Helper()
	id, err := c.Enqueue(context.Background(), ActionSpec{
		Type:    models.ActionCreateNote,
		Payload: json.RawMessage(fmt.Sprintf(`{"content":%q}`, content)),
	})
	require.NoError(t, err)
	return id
}

func getAction(t *testing.T, env *testEnv, id string) *models.QueuedAction {
	t.Helper()
	action, err := env.store.GetAction(context.Background(), id)
	require.NoError(t, err)
	return action
}

func TestNewCoordinator_RequiresDependencies(t *testing.T) {
	_, monitor := newTestNetwork(true)
	store := createTestStore(t)

	_, err := NewCoordinator(Options{Queue: store, Mappings: store, Monitor: monitor})
	assert.Error(t, err)

	_, err = NewCoordinator(Options{API: &api.ClientAPIMock{}, Mappings: store, Monitor: monitor})
	assert.Error(t, err)

	_, err = NewCoordinator(Options{
		API:      &api.ClientAPIMock{},
		Queue:    store,
		Mappings: store,
		Monitor:  monitor,
		Resolver: conflict.NewResolver(nil, newTestLogger()),
	})
	require.NoError(t, err)
}

func TestEnqueue_Offline(t *testing.T) {
	env := newTestEnv(t, false, okApply)
	ctx := context.Background()

	eventsCh, cancel := env.coord.SubscribeEvents()
	defer cancel()

	id, err := env.coord.Enqueue(ctx, ActionSpec{
		Type:    models.ActionCreateMessage,
		Payload: json.RawMessage(`{"text":"hi"}`),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, models.ActionCreateMessage, action.Type)
	assert.Regexp(t, `^local-`, action.LocalID)
	assert.Equal(t, 0, action.RetryCount)
	assert.JSONEq(t, `{"text":"hi"}`, string(action.Payload))

	select {
	case e := <-eventsCh:
		assert.Equal(t, models.EventQueued, e.Kind)
		assert.Equal(t, id, e.ActionID)
	case <-time.After(time.Second):
		t.Fatal("queued event not emitted")
	}

	env.coord.Stop()
	assert.Empty(t, env.api.ApplyCalls())

	count, err := env.coord.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnqueue_KeepsProvidedLocalID(t *testing.T) {
	env := newTestEnv(t, false, okApply)

	id, err := env.coord.Enqueue(context.Background(), ActionSpec{
		Type:    models.ActionCreateAppointment,
		Payload: json.RawMessage(`{"title":"Visit"}`),
		LocalID: "local-fixed",
	})
	require.NoError(t, err)
	assert.Equal(t, "local-fixed", getAction(t, env, id).LocalID)

	// обновления не получают локальный id
	id, err = env.coord.Enqueue(context.Background(), ActionSpec{
		Type:    models.ActionUpdateStatus,
		Payload: json.RawMessage(`{"id":"d1","status":"OPEN"}`),
	})
	require.NoError(t, err)
	assert.Empty(t, getAction(t, env, id).LocalID)
}

func TestEnqueue_InvalidPayload(t *testing.T) {
	env := newTestEnv(t, true, okApply)
	ctx := context.Background()

	_, err := env.coord.Enqueue(ctx, ActionSpec{
		Type:    models.ActionCreateMessage,
		Payload: json.RawMessage(`{"dossierId":"d1"}`),
	})
	assert.ErrorIs(t, err, models.ErrInvalidPayload)

	all, err := env.coord.Actions(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEnqueue_StorageUnavailable(t *testing.T) {
	_, monitor := newTestNetwork(true)
	store := createTestStore(t)
	queue := &storage.QueueStorageMock{
		AddActionFunc: func(ctx context.Context, action *models.QueuedAction) error {
			return errors.New("disk quota exceeded")
		},
	}
	apiMock := &api.ClientAPIMock{}

	coord, err := NewCoordinator(Options{
		API:      apiMock,
		Queue:    queue,
		Mappings: store,
		Monitor:  monitor,
		Resolver: conflict.NewResolver(nil, newTestLogger()),
		Logger:   newTestLogger(),
	})
	require.NoError(t, err)
	defer coord.Stop()

	id, err := coord.Enqueue(context.Background(), ActionSpec{
		Type:    models.ActionCreateNote,
		Payload: json.RawMessage(`{"content":"x"}`),
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Empty(t, id)
	assert.Len(t, queue.AddActionCalls(), 1)
}

func TestOfflineQueueingScenario(t *testing.T) {
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return &api.ApplyResult{ServerID: "msg-100", StatusCode: 201}, nil
	})
	ctx := context.Background()
	require.NoError(t, env.coord.Start(ctx))

	id, err := env.coord.Enqueue(ctx, ActionSpec{
		Type:    models.ActionCreateMessage,
		Payload: json.RawMessage(`{"text":"hi"}`),
	})
	require.NoError(t, err)

	action := getAction(t, env, id)
	require.Equal(t, models.StatusPending, action.Status)
	localID := action.LocalID
	require.NotEmpty(t, localID)

	env.network.set(true)

	require.Eventually(t, func() bool {
		a, err := env.store.GetAction(ctx, id)
		return err == nil && a.Status == models.StatusSuccess
	}, 2*time.Second, 10*time.Millisecond)

	serverID, err := env.store.GetServerID(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, "msg-100", serverID)

	mappedLocal, err := env.store.GetLocalID(ctx, "msg-100")
	require.NoError(t, err)
	assert.Equal(t, localID, mappedLocal)

	synced := getAction(t, env, id)
	assert.Equal(t, "msg-100", synced.ServerID)

	last, err := env.store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.NotZero(t, last)
}

func TestDrain_FIFO(t *testing.T) {
	var (
		mu    gosync.Mutex
		order []string
	)
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		mu.Lock()
		order = append(order, action.ID)
		mu.Unlock()
		return okApply(ctx, action)
	})

	// одна и та же миллисекунда: порядок задают часы
	ids := []string{
		enqueueNote(t, env.coord, "first"),
		enqueueNote(t, env.coord, "second"),
		enqueueNote(t, env.coord, "third"),
	}

	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(context.Background()))

	assert.Equal(t, ids, order)
	for _, id := range ids {
		assert.Equal(t, models.StatusSuccess, getAction(t, env, id).Status)
	}
}

func TestDrain_SingleFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return okApply(ctx, action)
	})

	first := enqueueNote(t, env.coord, "a")
	second := enqueueNote(t, env.coord, "b")
	env.network.online.Store(true)

	done := make(chan error, 1)
	go func() {
		done <- env.coord.Drain(context.Background())
	}()

	<-entered
	assert.True(t, env.coord.IsDraining())

	// повторные вызовы во время прохода ничего не делают
	require.NoError(t, env.coord.Drain(context.Background()))
	require.NoError(t, env.coord.Drain(context.Background()))

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, env.api.ApplyCalls(), 2)
	assert.False(t, env.coord.IsDraining())
	assert.Equal(t, models.StatusSuccess, getAction(t, env, first).Status)
	assert.Equal(t, models.StatusSuccess, getAction(t, env, second).Status)
}

func TestDrain_RetryBound(t *testing.T) {
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return nil, &api.Error{Kind: api.KindUnreachable, StatusCode: 503}
	})
	ctx := context.Background()

	id := enqueueNote(t, env.coord, "never lands")
	env.network.online.Store(true)

	for attempt := 1; attempt <= 2; attempt++ {
		require.NoError(t, env.coord.Drain(ctx))
		action := getAction(t, env, id)
		assert.Equal(t, models.StatusPending, action.Status)
		assert.Equal(t, attempt, action.RetryCount)
		assert.Equal(t, models.ErrorKindUnreachable, action.ErrorKind)
	}

	require.NoError(t, env.coord.Drain(ctx))
	action := getAction(t, env, id)
	assert.Equal(t, models.StatusFailed, action.Status)
	assert.Equal(t, models.MaxRetries, action.RetryCount)

	// FAILED терминален, новые проходы его не трогают
	require.NoError(t, env.coord.Drain(ctx))
	require.NoError(t, env.coord.Drain(ctx))
	assert.Len(t, env.api.ApplyCalls(), models.MaxRetries)

	failed, err := env.coord.FailedActions(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, id, failed[0].ID)

	// HTTP ответ 503 не транспортная ошибка
	assert.Empty(t, env.monitor.ReportUnreachableCalls())
}

func TestDrain_RejectedIsTerminal(t *testing.T) {
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return nil, &api.Error{Kind: api.KindRejected, StatusCode: 422, Message: "content too long"}
	})
	ctx := context.Background()

	eventsCh, cancel := env.coord.SubscribeEvents()
	defer cancel()

	id := enqueueNote(t, env.coord, "x")
	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusFailed, action.Status)
	assert.Equal(t, models.ErrorKindRejected, action.ErrorKind)
	assert.Equal(t, models.MaxRetries, action.RetryCount)
	assert.Contains(t, action.Error, "content too long")
	assert.Len(t, env.api.ApplyCalls(), 1)

	var failedEvent *models.Event
	for failedEvent == nil {
		select {
		case e := <-eventsCh:
			if e.Kind == models.EventFailed {
				failedEvent = &e
			}
		case <-time.After(time.Second):
			t.Fatal("failed event not emitted")
		}
	}
	assert.Equal(t, id, failedEvent.ActionID)
	assert.Equal(t, models.ActionCreateNote, failedEvent.ActionType)
	assert.Equal(t, models.ErrorKindRejected, failedEvent.ErrorKind)
	assert.True(t, failedEvent.Retryable)
}

func TestDrain_AbortsWhenOffline(t *testing.T) {
	var env *testEnv
	env = newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		// сеть пропадает сразу после первого успешного вызова
		env.network.online.Store(false)
		return okApply(ctx, action)
	})
	ctx := context.Background()

	ids := []string{
		enqueueNote(t, env.coord, "1"),
		enqueueNote(t, env.coord, "2"),
		enqueueNote(t, env.coord, "3"),
	}
	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))

	assert.Len(t, env.api.ApplyCalls(), 1)
	assert.Equal(t, models.StatusSuccess, getAction(t, env, ids[0]).Status)
	for _, id := range ids[1:] {
		action := getAction(t, env, id)
		assert.Equal(t, models.StatusPending, action.Status)
		assert.Equal(t, 0, action.RetryCount)
	}

	progress := env.coord.Progress()
	assert.Equal(t, models.SyncProgress{Total: 3, Completed: 1}, progress)
}

func TestDrain_TransportErrorReportsUnreachable(t *testing.T) {
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return nil, &api.Error{Kind: api.KindUnreachable, Err: errors.New("connection refused")}
	})

	id := enqueueNote(t, env.coord, "x")
	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(context.Background()))

	assert.Len(t, env.monitor.ReportUnreachableCalls(), 1)
	action := getAction(t, env, id)
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, 1, action.RetryCount)
}

func TestDrain_Progress(t *testing.T) {
	var env *testEnv
	var seen []models.SyncProgress
	env = newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		seen = append(seen, env.coord.Progress())
		return okApply(ctx, action)
	})

	enqueueNote(t, env.coord, "a")
	enqueueNote(t, env.coord, "b")
	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(context.Background()))

	// прогресс публикуется до каждого вызова и после каждого действия
	assert.Equal(t, []models.SyncProgress{
		{Total: 2, InProgress: true},
		{Total: 2, Completed: 1, InProgress: true},
	}, seen)
	assert.Equal(t, models.SyncProgress{Total: 2, Completed: 2}, env.coord.Progress())
}

func TestDrain_MappingIsNeverOverwritten(t *testing.T) {
	env := newTestEnv(t, false, okApply)
	ctx := context.Background()

	// соответствие уже записано предыдущей синхронизацией
	require.NoError(t, env.store.SaveMapping(ctx, &models.LocalIDMapping{
		LocalID:    "local-X",
		ServerID:   "srv-original",
		EntityType: models.EntityNote,
	}))

	id, err := env.coord.Enqueue(ctx, ActionSpec{
		Type:    models.ActionCreateNote,
		Payload: json.RawMessage(`{"content":"replayed"}`),
		LocalID: "local-X",
	})
	require.NoError(t, err)
	other := enqueueNote(t, env.coord, "unrelated")

	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))

	assert.Equal(t, models.StatusSuccess, getAction(t, env, id).Status)
	assert.Equal(t, models.StatusSuccess, getAction(t, env, other).Status)

	serverID, err := env.store.GetServerID(ctx, "local-X")
	require.NoError(t, err)
	assert.Equal(t, "srv-original", serverID)

	otherLocal := getAction(t, env, other).LocalID
	serverID, err = env.store.GetServerID(ctx, otherLocal)
	require.NoError(t, err)
	assert.Equal(t, "srv-"+other, serverID)
}

func TestRetry(t *testing.T) {
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return nil, &api.Error{Kind: api.KindRejected, StatusCode: 400}
	})
	ctx := context.Background()

	id := enqueueNote(t, env.coord, "x")

	err := env.coord.Retry(ctx, id)
	assert.ErrorIs(t, err, ErrNotRetryable)

	err = env.coord.Retry(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrActionNotFound)

	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))
	require.Equal(t, models.StatusFailed, getAction(t, env, id).Status)

	env.network.online.Store(false)
	require.NoError(t, env.coord.Retry(ctx, id))

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, 0, action.RetryCount)
	assert.Empty(t, action.Error)
	assert.Equal(t, models.ErrorKindNone, action.ErrorKind)
}

func TestRetry_DrainsWhenOnline(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		if fail.Load() {
			return nil, &api.Error{Kind: api.KindRejected, StatusCode: 400}
		}
		return okApply(ctx, action)
	})
	ctx := context.Background()

	id := enqueueNote(t, env.coord, "x")
	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))

	fail.Store(false)
	require.NoError(t, env.coord.Retry(ctx, id))

	require.Eventually(t, func() bool {
		a, err := env.store.GetAction(ctx, id)
		return err == nil && a.Status == models.StatusSuccess
	}, 2*time.Second, 10*time.Millisecond)
}

func conflictEnv(t *testing.T, strategy conflict.Strategy) (*testEnv, string) {
	t.Helper()

	env := newTestEnv(t, false, func(ctx context.Context, action *models.QueuedAction) (*api.ApplyResult, error) {
		return nil, &api.Error{Kind: api.KindConflict, StatusCode: 409, Version: 4}
	})
	env.fetcher.FetchEntityFunc = func(ctx context.Context, action *models.QueuedAction) (map[string]any, error) {
		return map[string]any{
			"id":        "ap1",
			"title":     "Server title",
			"attendees": []any{"a"},
			"version":   float64(4),
		}, nil
	}
	require.NoError(t, env.resolver.SetDefaultStrategy(strategy))

	id, err := env.coord.Enqueue(context.Background(), ActionSpec{
		Type:    models.ActionUpdateAppointment,
		Payload: json.RawMessage(`{"id":"ap1","version":3,"title":"Client title","attendees":["a"]}`),
	})
	require.NoError(t, err)

	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(context.Background()))
	env.network.online.Store(false)

	return env, id
}

func TestDrain_Conflict_ServerWins(t *testing.T) {
	env, id := conflictEnv(t, conflict.StrategyServerWins)

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusSuccess, action.Status)
	assert.Equal(t, string(conflict.StrategyServerWins), action.Resolution)
	assert.Equal(t, []string{"title"}, action.ConflictFields)
	assert.Len(t, env.fetcher.FetchEntityCalls(), 1)

	// payload клиента не переписан серверными данными
	assert.JSONEq(t, `{"id":"ap1","version":3,"title":"Client title","attendees":["a"]}`, string(action.Payload))
	assert.Equal(t, models.SyncProgress{Total: 1, Completed: 1}, env.coord.Progress())
}

func TestDrain_Conflict_ClientWins(t *testing.T) {
	env, id := conflictEnv(t, conflict.StrategyClientWins)

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, 1, action.RetryCount)
	assert.Equal(t, models.ErrorKindConflict, action.ErrorKind)
	assert.Equal(t, string(conflict.StrategyClientWins), action.Resolution)

	payload, err := action.DecodePayload()
	require.NoError(t, err)
	update := payload.(*models.UpdateAppointmentPayload)
	assert.Equal(t, "ap1", update.ID)
	assert.Equal(t, "Client title", update.Title)
	require.NotNil(t, update.Version)
	assert.Equal(t, int64(4), *update.Version)
}

func TestDrain_Conflict_MergeUnresolved(t *testing.T) {
	env, id := conflictEnv(t, conflict.StrategyMerge)

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusConflict, action.Status)
	assert.Equal(t, []string{"title"}, action.ConflictFields)
	assert.Equal(t, models.ErrorKindConflict, action.ErrorKind)

	conflicted, err := env.coord.ConflictedActions(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicted, 1)
	assert.Equal(t, id, conflicted[0].ID)
}

func TestResolveConflict(t *testing.T) {
	env, id := conflictEnv(t, conflict.StrategyManual)
	ctx := context.Background()

	require.Equal(t, models.StatusConflict, getAction(t, env, id).Status)

	result, err := env.coord.ResolveConflict(ctx, id, conflict.StrategyClientWins)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Resolved)

	action := getAction(t, env, id)
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, 0, action.RetryCount)
	assert.Empty(t, action.ConflictFields)

	payload, err := action.DecodePayload()
	require.NoError(t, err)
	update := payload.(*models.UpdateAppointmentPayload)
	require.NotNil(t, update.Version)
	assert.Equal(t, int64(4), *update.Version)

	_, err = env.coord.ResolveConflict(ctx, id, conflict.StrategyClientWins)
	assert.ErrorIs(t, err, ErrNotConflicted)
}

func TestClearQueue(t *testing.T) {
	env := newTestEnv(t, false, okApply)
	ctx := context.Background()

	enqueueNote(t, env.coord, "a")
	enqueueNote(t, env.coord, "b")

	require.NoError(t, env.coord.ClearQueue(ctx))

	all, err := env.coord.Actions(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, models.SyncProgress{}, env.coord.Progress())

	counts, err := env.coord.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[models.StatusPending])
}

func TestStart_PeriodicDrain(t *testing.T) {
	store := createTestStore(t)
	network, monitor := newTestNetwork(false)
	apiMock := &api.ClientAPIMock{ApplyFunc: okApply}

	coord, err := NewCoordinator(Options{
		API:           apiMock,
		Queue:         store,
		Mappings:      store,
		Cache:         store,
		Monitor:       monitor,
		Resolver:      conflict.NewResolver(nil, newTestLogger()),
		Logger:        newTestLogger(),
		DrainInterval: time.Second,
	})
	require.NoError(t, err)
	defer coord.Stop()

	ctx := context.Background()
	id := enqueueNote(t, coord, "x")

	require.NoError(t, coord.Start(ctx))
	assert.ErrorIs(t, coord.Start(ctx), ErrAlreadyStarted)

	// сеть появилась без события: сработает только таймер
	network.online.Store(true)

	require.Eventually(t, func() bool {
		a, err := store.GetAction(ctx, id)
		return err == nil && a.Status == models.StatusSuccess
	}, 3*time.Second, 20*time.Millisecond)

	coord.Stop()
	coord.Stop()
}

// seedSyncing записывает действие, оставшееся в SYNCING после прерванного прохода
func seedSyncing(t *testing.T, env *testEnv, id string, attempts int) {
	t.Helper()
	require.NoError(t, env.store.AddAction(context.Background(), &models.QueuedAction{
		ID:         id,
		Type:       models.ActionCreateNote,
		Payload:    json.RawMessage(`{"content":"interrupted"}`),
		Status:     models.StatusSyncing,
		LocalID:    "local-" + id,
		Timestamp:  1_600_000_000_000,
		RetryCount: attempts,
	}))
}

func TestStart_RecoversInterruptedActions(t *testing.T) {
	env := newTestEnv(t, true, okApply)
	ctx := context.Background()

	seedSyncing(t, env, "a1", 1)

	require.NoError(t, env.coord.Start(ctx))

	require.Eventually(t, func() bool {
		a, err := env.store.GetAction(ctx, "a1")
		return err == nil && a.Status == models.StatusSuccess
	}, 3*time.Second, 20*time.Millisecond)

	action := getAction(t, env, "a1")
	// прерванная попытка не засчитывается
	assert.Equal(t, 1, action.RetryCount)
	assert.Len(t, env.api.ApplyCalls(), 1)

	serverID, err := env.store.GetServerID(ctx, "local-a1")
	require.NoError(t, err)
	assert.Equal(t, "srv-a1", serverID)
}

func TestDrain_RecoversInterruptedActions(t *testing.T) {
	env := newTestEnv(t, false, okApply)
	ctx := context.Background()

	seedSyncing(t, env, "a1", 0)
	later := enqueueNote(t, env.coord, "later")

	env.network.online.Store(true)
	require.NoError(t, env.coord.Drain(ctx))

	assert.Equal(t, models.StatusSuccess, getAction(t, env, "a1").Status)
	assert.Equal(t, models.StatusSuccess, getAction(t, env, later).Status)

	calls := env.api.ApplyCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "a1", calls[0].Action.ID)
}

func TestRetry_InterruptedAction(t *testing.T) {
	env := newTestEnv(t, false, okApply)
	ctx := context.Background()

	seedSyncing(t, env, "a1", 2)

	// во время дренажа SYNCING означает действие в работе
	env.coord.draining.Store(true)
	err := env.coord.Retry(ctx, "a1")
	assert.ErrorIs(t, err, ErrNotRetryable)
	env.coord.draining.Store(false)

	require.NoError(t, env.coord.Retry(ctx, "a1"))

	action := getAction(t, env, "a1")
	assert.Equal(t, models.StatusPending, action.Status)
	assert.Equal(t, 0, action.RetryCount)
	assert.False(t, env.coord.IsDraining())
}

// failingMappings отказывает в записи соответствий, пока fail установлен
type failingMappings struct {
	storage.MappingStorage
	fail atomic.Bool
}

func (m *failingMappings) SaveMapping(ctx context.Context, mapping *models.LocalIDMapping) error {
	if m.fail.Load() {
		return errors.New("disk full")
	}
	return m.MappingStorage.SaveMapping(ctx, mapping)
}

func TestDrain_MappingFailureKeepsActionRetryable(t *testing.T) {
	store := createTestStore(t)
	network, monitor := newTestNetwork(false)
	apiMock := &api.ClientAPIMock{ApplyFunc: okApply}
	mappings := &failingMappings{MappingStorage: store}
	mappings.fail.Store(true)

	coord, err := NewCoordinator(Options{
		API:      apiMock,
		Queue:    store,
		Mappings: mappings,
		Monitor:  monitor,
		Resolver: conflict.NewResolver(nil, newTestLogger()),
		Logger:   newTestLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(coord.Stop)

	ctx := context.Background()
	id := enqueueNote(t, coord, "x")
	network.online.Store(true)

	err = coord.Drain(ctx)
	assert.ErrorContains(t, err, "disk full")

	action, err := store.GetAction(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, models.StatusSuccess, action.Status)
	_, err = store.GetServerID(ctx, action.LocalID)
	assert.ErrorIs(t, err, storage.ErrMappingNotFound)

	mappings.fail.Store(false)
	require.NoError(t, coord.Drain(ctx))

	action, err = store.GetAction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, action.Status)
	assert.Equal(t, 0, action.RetryCount)

	serverID, err := store.GetServerID(ctx, action.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "srv-"+id, serverID)
	assert.Len(t, apiMock.ApplyCalls(), 2)
}

func TestServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		want    int64
		wantErr bool
	}{
		{"missing", map[string]any{}, 0, false},
		{"null", map[string]any{"version": nil}, 0, false},
		{"float", map[string]any{"version": float64(4)}, 4, false},
		{"number", map[string]any{"version": json.Number("7")}, 7, false},
		{"fractional", map[string]any{"version": 2.5}, 0, true},
		{"bad number", map[string]any{"version": json.Number("7.5")}, 0, true},
		{"string", map[string]any{"version": "4"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serverVersion(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadServerVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
