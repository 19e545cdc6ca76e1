package conflict

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsync/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFetcher(data map[string]any, err error) *EntityFetcherMock {
	return &EntityFetcherMock{
		FetchEntityFunc: func(ctx context.Context, action *models.QueuedAction) (map[string]any, error) {
			return data, err
		},
	}
}

func updateAction(payload string) *models.QueuedAction {
	return &models.QueuedAction{
		ID:      "a1",
		Type:    models.ActionUpdateAppointment,
		Payload: json.RawMessage(payload),
		Status:  models.StatusSyncing,
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"SERVER_WINS", StrategyServerWins, false},
		{"client_wins", StrategyClientWins, false},
		{" merge ", StrategyMerge, false},
		{"Manual", StrategyManual, false},
		{"LAST_WRITE_WINS", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("creation never conflicts", func(t *testing.T) {
		fetcher := newFetcher(map[string]any{"text": "other"}, nil)
		r := NewResolver(fetcher, newTestLogger())

		info, err := r.DetectConflict(ctx, &models.QueuedAction{
			Type:    models.ActionCreateMessage,
			Payload: json.RawMessage(`{"text":"hi"}`),
		})
		require.NoError(t, err)
		assert.Nil(t, info)
		assert.Empty(t, fetcher.FetchEntityCalls())
	})

	t.Run("entity not found", func(t *testing.T) {
		r := NewResolver(newFetcher(nil, nil), newTestLogger())

		info, err := r.DetectConflict(ctx, updateAction(`{"id":"ap1","title":"A"}`))
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("system fields ignored", func(t *testing.T) {
		server := map[string]any{
			"id":        "ap1",
			"title":     "A",
			"version":   float64(7),
			"updatedAt": "2024-01-01T00:00:00Z",
			"updatedBy": "someone",
		}
		r := NewResolver(newFetcher(server, nil), newTestLogger())

		info, err := r.DetectConflict(ctx, updateAction(`{"id":"ap1","title":"A","version":3}`))
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("differing fields reported sorted", func(t *testing.T) {
		server := map[string]any{
			"id":        "ap1",
			"title":     "Server title",
			"location":  "office",
			"attendees": []any{"a"},
		}
		r := NewResolver(newFetcher(server, nil), newTestLogger())

		info, err := r.DetectConflict(ctx, updateAction(`{"id":"ap1","title":"Client title","attendees":["a"],"notes":"bring docs"}`))
		require.NoError(t, err)
		require.NotNil(t, info)

		// location отсутствует у клиента, notes отсутствует у сервера
		assert.Equal(t, []string{"location", "notes", "title"}, info.Fields)
		assert.Equal(t, "Client title", info.ClientData["title"])
		assert.Equal(t, "Server title", info.ServerData["title"])
	})

	t.Run("fetch error", func(t *testing.T) {
		r := NewResolver(newFetcher(nil, errors.New("connection refused")), newTestLogger())

		info, err := r.DetectConflict(ctx, updateAction(`{"id":"ap1"}`))
		require.Error(t, err)
		assert.Nil(t, info)
	})
}

func TestResolve_Strategies(t *testing.T) {
	conflict := &ConflictInfo{
		Action: updateAction(`{}`),
		ServerData: map[string]any{
			"id":     "d1",
			"status": "CLOSED",
			"name":   "Dossier",
		},
		ClientData: map[string]any{
			"id":     "d1",
			"status": "OPEN",
		},
		Fields: []string{"name", "status"},
	}

	r := NewResolver(nil, newTestLogger())

	t.Run("server wins", func(t *testing.T) {
		res, err := r.Resolve(conflict, StrategyServerWins)
		require.NoError(t, err)
		assert.True(t, res.Resolved)
		assert.Equal(t, conflict.ServerData, res.MergedData)

		// результат не разделяет память с входными данными
		res.MergedData["status"] = "X"
		assert.Equal(t, "CLOSED", conflict.ServerData["status"])
	})

	t.Run("client wins", func(t *testing.T) {
		res, err := r.Resolve(conflict, StrategyClientWins)
		require.NoError(t, err)
		assert.True(t, res.Resolved)
		assert.Equal(t, conflict.ClientData, res.MergedData)
		assert.NotContains(t, res.MergedData, "name")
	})

	t.Run("manual", func(t *testing.T) {
		res, err := r.Resolve(conflict, StrategyManual)
		require.NoError(t, err)
		assert.False(t, res.Resolved)
		assert.Nil(t, res.MergedData)
		assert.Equal(t, []string{"name", "status"}, res.UnresolvedFields)
		require.Len(t, res.Conflicts, 1)
		assert.Same(t, conflict, res.Conflicts[0])
	})

	t.Run("default strategy", func(t *testing.T) {
		res, err := r.Resolve(conflict, "")
		require.NoError(t, err)
		assert.Equal(t, StrategyServerWins, res.Strategy)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := r.Resolve(conflict, Strategy("LWW"))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("nil conflict", func(t *testing.T) {
		_, err := r.Resolve(nil, StrategyMerge)
		assert.Error(t, err)
	})
}

func TestResolve_Merge(t *testing.T) {
	tests := []struct {
		name           string
		server         map[string]any
		client         map[string]any
		fields         []string
		wantMerged     map[string]any
		wantUnresolved []string
		wantResolved   bool
	}{
		{
			name:         "client string extends server",
			server:       map[string]any{"notes": "call"},
			client:       map[string]any{"notes": "call back tomorrow"},
			fields:       []string{"notes"},
			wantMerged:   map[string]any{"notes": "call back tomorrow"},
			wantResolved: true,
		},
		{
			name:         "server string extends client",
			server:       map[string]any{"notes": "call back tomorrow"},
			client:       map[string]any{"notes": "back"},
			fields:       []string{"notes"},
			wantMerged:   map[string]any{"notes": "call back tomorrow"},
			wantResolved: true,
		},
		{
			name:           "unrelated strings",
			server:         map[string]any{"status": "CLOSED"},
			client:         map[string]any{"status": "OPEN"},
			fields:         []string{"status"},
			wantMerged:     map[string]any{"status": "CLOSED"},
			wantUnresolved: []string{"status"},
		},
		{
			name:           "numbers never merge",
			server:         map[string]any{"priority": float64(1)},
			client:         map[string]any{"priority": float64(2)},
			fields:         []string{"priority"},
			wantMerged:     map[string]any{"priority": float64(1)},
			wantUnresolved: []string{"priority"},
		},
		{
			name:           "type mismatch",
			server:         map[string]any{"tags": []any{"a"}},
			client:         map[string]any{"tags": "a"},
			fields:         []string{"tags"},
			wantMerged:     map[string]any{"tags": []any{"a"}},
			wantUnresolved: []string{"tags"},
		},
		{
			name:           "field missing on client",
			server:         map[string]any{"location": "office", "title": "A"},
			client:         map[string]any{"title": "AB"},
			fields:         []string{"location", "title"},
			wantMerged:     map[string]any{"location": "office", "title": "AB"},
			wantUnresolved: []string{"location"},
		},
		{
			name:         "arrays unioned",
			server:       map[string]any{"attendees": []any{"a", "b"}},
			client:       map[string]any{"attendees": []any{"b", "c"}},
			fields:       []string{"attendees"},
			wantMerged:   map[string]any{"attendees": []any{"a", "b", "c"}},
			wantResolved: true,
		},
	}

	r := NewResolver(nil, newTestLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(&ConflictInfo{
				ServerData: tt.server,
				ClientData: tt.client,
				Fields:     tt.fields,
			}, StrategyMerge)
			require.NoError(t, err)

			assert.Equal(t, tt.wantResolved, res.Resolved)
			assert.Equal(t, tt.wantMerged, res.MergedData)
			assert.Equal(t, tt.wantUnresolved, res.UnresolvedFields)
			if tt.wantResolved {
				assert.Empty(t, res.Conflicts)
			} else {
				assert.Len(t, res.Conflicts, 1)
			}
		})
	}
}

func TestResolve_MergeArraysNoDuplicates(t *testing.T) {
	server := []any{"a", "a", map[string]any{"k": float64(1)}, float64(3)}
	client := []any{map[string]any{"k": float64(1)}, "b", "b", float64(3), "c"}

	r := NewResolver(nil, newTestLogger())
	res, err := r.Resolve(&ConflictInfo{
		ServerData: map[string]any{"items": server},
		ClientData: map[string]any{"items": client},
		Fields:     []string{"items"},
	}, StrategyMerge)
	require.NoError(t, err)
	require.True(t, res.Resolved)

	merged, ok := res.MergedData["items"].([]any)
	require.True(t, ok)

	uniqueServer, uniqueClient := 3, 4
	assert.GreaterOrEqual(t, len(merged), max(uniqueServer, uniqueClient))
	for i := range merged {
		for j := i + 1; j < len(merged); j++ {
			assert.NotEqual(t, merged[i], merged[j], "duplicate at %d and %d", i, j)
		}
	}
	assert.Equal(t, []any{"a", map[string]any{"k": float64(1)}, float64(3), "b", "c"}, merged)
}

func TestResolveBatch(t *testing.T) {
	r := NewResolver(nil, newTestLogger())
	conflicts := []*ConflictInfo{
		{ServerData: map[string]any{"a": "x"}, ClientData: map[string]any{"a": "xy"}, Fields: []string{"a"}},
		{ServerData: map[string]any{"b": "x"}, ClientData: map[string]any{"b": "z"}, Fields: []string{"b"}},
	}

	results, err := r.ResolveBatch(conflicts, StrategyMerge)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Resolved)
	assert.False(t, results[1].Resolved)

	_, err = r.ResolveBatch(conflicts, Strategy("nope"))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestDefaultStrategy(t *testing.T) {
	r := NewResolver(nil, newTestLogger())
	assert.Equal(t, StrategyServerWins, r.DefaultStrategy())

	require.NoError(t, r.SetDefaultStrategy(StrategyMerge))
	assert.Equal(t, StrategyMerge, r.DefaultStrategy())

	err := r.SetDefaultStrategy("WHATEVER")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, StrategyMerge, r.DefaultStrategy())
}
