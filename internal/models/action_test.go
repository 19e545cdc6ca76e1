package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionType_Classification(t *testing.T) {
	tests := []struct {
		name       string
		actionType ActionType
		creation   bool
		entity     string
	}{
		{"create message", ActionCreateMessage, true, EntityMessage},
		{"update status", ActionUpdateStatus, false, EntityDossier},
		{"create appointment", ActionCreateAppointment, true, EntityAppointment},
		{"update appointment", ActionUpdateAppointment, false, EntityAppointment},
		{"create note", ActionCreateNote, true, EntityNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.actionType.IsValid())
			assert.Equal(t, tt.creation, tt.actionType.IsCreation())
			assert.Equal(t, tt.entity, tt.actionType.EntityType())
			assert.NotEmpty(t, tt.actionType.Label())
		})
	}

	assert.False(t, ActionType("DELETE_EVERYTHING").IsValid())
	assert.Equal(t, "default", ActionType("unknown").EntityType())
}

func TestActionStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusSuccess.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusSyncing.IsTerminal())
	assert.False(t, StatusConflict.IsTerminal())
}

func TestActionStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, ActionStatus("pending").IsValid())
	assert.False(t, ActionStatus("").IsValid())
}

func TestQueuedAction_Clone(t *testing.T) {
	original := &QueuedAction{
		ID:             "a1",
		Type:           ActionUpdateStatus,
		Payload:        json.RawMessage(`{"id":"d1","status":"OPEN"}`),
		Status:         StatusConflict,
		ConflictFields: []string{"status"},
		Timestamp:      1000,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// изменение копии не влияет на оригинал
	clone.Payload[0] = '['
	clone.ConflictFields[0] = "title"
	assert.Equal(t, byte('{'), original.Payload[0])
	assert.Equal(t, "status", original.ConflictFields[0])
}

func TestQueuedAction_DecodePayload(t *testing.T) {
	action := &QueuedAction{
		Type:    ActionUpdateStatus,
		Payload: json.RawMessage(`{"id":"d1","status":"CLOSED"}`),
	}

	p, err := action.DecodePayload()
	require.NoError(t, err)

	status, ok := p.(*UpdateStatusPayload)
	require.True(t, ok)
	assert.Equal(t, "d1", status.ID)
	assert.Equal(t, "CLOSED", status.Status)
	assert.Nil(t, status.Version)
}
