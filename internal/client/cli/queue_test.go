package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/daemon"
	"github.com/iudanet/gophsync/internal/models"
)

func testActions() []*models.QueuedAction {
	return []*models.QueuedAction{
		{
			ID:         "act-1",
			Type:       models.ActionCreateNote,
			Status:     models.StatusFailed,
			Error:      "validation failed",
			ErrorKind:  models.ErrorKindRejected,
			RetryCount: 3,
			Timestamp:  time.Now().Add(-5 * time.Minute).UnixMilli(),
			Payload:    json.RawMessage(`{"dossierId":"7","content":"x"}`),
		},
		{
			ID:        "act-2",
			Type:      models.ActionUpdateStatus,
			Status:    models.StatusPending,
			Timestamp: time.Now().UnixMilli(),
			Payload:   json.RawMessage(`{"id":"7","status":"CLOSED"}`),
		},
	}
}

func TestQueueCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		actions    []*models.QueuedAction
		wantStatus models.ActionStatus
		wantOut    []string
		wantErr    string
	}{
		{
			name:    "all actions",
			args:    []string{"queue"},
			actions: testActions(),
			wantOut: []string{"ID", "act-1", "CREATE_NOTE", "validation failed", "act-2", "Total: 2 action(s)"},
		},
		{
			name:       "status filter is case insensitive",
			args:       []string{"queue", "--status", "failed"},
			actions:    testActions()[:1],
			wantStatus: models.StatusFailed,
			wantOut:    []string{"act-1"},
		},
		{
			name:       "failed shortcut",
			args:       []string{"failed"},
			wantStatus: models.StatusFailed,
			wantOut:    []string{"No FAILED actions."},
		},
		{
			name:       "conflicts shortcut",
			args:       []string{"conflicts"},
			wantStatus: models.StatusConflict,
			wantOut:    []string{"No CONFLICT actions."},
		},
		{
			name:    "empty queue",
			args:    []string{"queue"},
			wantOut: []string{"Queue is empty."},
		},
		{
			name:    "unknown status",
			args:    []string{"queue", "--status", "DONE"},
			wantErr: "unknown status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DaemonMock{
				ActionsFunc: func(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error) {
					return tt.actions, nil
				},
			}
			cmd, _, out := newTestRoot(d, "")

			err := execute(cmd, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, d.ActionsCalls())
				return
			}
			require.NoError(t, err)

			require.Len(t, d.ActionsCalls(), 1)
			assert.Equal(t, tt.wantStatus, d.ActionsCalls()[0].Status)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestQueueCommand_JSON(t *testing.T) {
	d := &DaemonMock{
		ActionsFunc: func(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error) {
			return testActions(), nil
		},
	}
	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "queue", "--format", "json"))

	var got []*models.QueuedAction
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "act-1", got[0].ID)
}

func TestShowCommand(t *testing.T) {
	d := &DaemonMock{
		ActionFunc: func(ctx context.Context, id string) (*models.QueuedAction, error) {
			a := testActions()[0]
			a.Status = models.StatusConflict
			a.ConflictFields = []string{"content", "title"}
			return a, nil
		},
	}
	cmd, _, out := newTestRoot(d, "")
	require.NoError(t, execute(cmd, "show", "act-1"))

	assert.Equal(t, "act-1", d.ActionCalls()[0].ID)
	text := out.String()
	assert.Contains(t, text, "Note creation")
	assert.Contains(t, text, "Retries:   3/3")
	assert.Contains(t, text, "Conflicts: content, title")
	assert.Contains(t, text, `"dossierId": "7"`)
}

func TestShowCommand_RequiresID(t *testing.T) {
	cmd, _, _ := newTestRoot(&DaemonMock{}, "")
	require.Error(t, execute(cmd, "show"))
}

func TestRetryCommand(t *testing.T) {
	d := &DaemonMock{
		RetryFunc: func(ctx context.Context, id string) (*models.QueuedAction, error) {
			if id == "act-2" {
				return nil, &daemon.ControlError{StatusCode: 409, Message: "action is not retryable"}
			}
			return &models.QueuedAction{ID: id, Status: models.StatusPending}, nil
		},
	}
	cmd, _, out := newTestRoot(d, "")

	err := execute(cmd, "retry", "act-1", "act-2", "act-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "act-2")
	var ctrlErr *daemon.ControlError
	assert.True(t, errors.As(err, &ctrlErr))

	assert.Len(t, d.RetryCalls(), 3)
	assert.Contains(t, out.String(), "act-1 re-queued (PENDING)")
	assert.Contains(t, out.String(), "act-3 re-queued")
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		result       *conflict.MergeResult
		wantStrategy conflict.Strategy
		wantOut      string
		wantErr      bool
	}{
		{
			name:         "merge resolved",
			args:         []string{"resolve", "act-1", "--strategy", "merge"},
			wantStrategy: conflict.StrategyMerge,
			result: &conflict.MergeResult{
				Strategy:  conflict.StrategyMerge,
				Conflicts: []*conflict.ConflictInfo{{Fields: []string{"tags"}}},
				Resolved:  true,
			},
			wantOut: "Conflicting fields: tags",
		},
		{
			name:    "default strategy",
			args:    []string{"resolve", "act-1"},
			result:  &conflict.MergeResult{Strategy: conflict.StrategyServerWins, Resolved: true},
			wantOut: "Conflict resolved",
		},
		{
			name:         "manual leaves conflict",
			args:         []string{"resolve", "act-1", "--strategy", "MANUAL"},
			wantStrategy: conflict.StrategyManual,
			result: &conflict.MergeResult{
				Strategy:         conflict.StrategyManual,
				UnresolvedFields: []string{"content"},
			},
			wantOut: "Unresolved fields: content",
		},
		{
			name:         "no divergence left",
			args:         []string{"resolve", "act-1", "--strategy", "CLIENT_WINS"},
			wantStrategy: conflict.StrategyClientWins,
			wantOut:      "no longer diverges",
		},
		{
			name:    "unknown strategy",
			args:    []string{"resolve", "act-1", "--strategy", "LAST_WRITE"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DaemonMock{
				ResolveFunc: func(ctx context.Context, id string, strategy conflict.Strategy) (*conflict.MergeResult, error) {
					return tt.result, nil
				},
			}
			cmd, _, out := newTestRoot(d, "")

			err := execute(cmd, tt.args...)
			if tt.wantErr {
				require.ErrorIs(t, err, conflict.ErrUnknownStrategy)
				assert.Empty(t, d.ResolveCalls())
				return
			}
			require.NoError(t, err)

			require.Len(t, d.ResolveCalls(), 1)
			assert.Equal(t, "act-1", d.ResolveCalls()[0].ID)
			assert.Equal(t, tt.wantStrategy, d.ResolveCalls()[0].Strategy)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestClearCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		input     string
		wantClear bool
		wantOut   string
	}{
		{name: "confirmed", args: []string{"clear"}, input: "y\n", wantClear: true, wantOut: "Queue cleared"},
		{name: "declined", args: []string{"clear"}, input: "n\n", wantOut: "Cancelled."},
		{name: "empty answer", args: []string{"clear"}, input: "\n", wantOut: "Cancelled."},
		{name: "skip confirmation", args: []string{"clear", "--yes"}, wantClear: true, wantOut: "Queue cleared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DaemonMock{
				ClearQueueFunc: func(ctx context.Context) error { return nil },
			}
			cmd, _, out := newTestRoot(d, tt.input)

			require.NoError(t, execute(cmd, tt.args...))
			assert.Equal(t, tt.wantClear, len(d.ClearQueueCalls()) == 1)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}
