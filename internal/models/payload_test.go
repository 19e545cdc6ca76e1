package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name       string
		actionType ActionType
		raw        string
		wantErr    bool
	}{
		{"valid message", ActionCreateMessage, `{"text":"hello","dossierId":"d1"}`, false},
		{"message without text", ActionCreateMessage, `{"dossierId":"d1"}`, true},
		{"valid status", ActionUpdateStatus, `{"id":"d1","status":"OPEN","version":3}`, false},
		{"status without id", ActionUpdateStatus, `{"status":"OPEN"}`, true},
		{"valid appointment", ActionCreateAppointment, `{"title":"Visit","attendees":["a","b"]}`, false},
		{"appointment without title", ActionCreateAppointment, `{"location":"office"}`, true},
		{"valid appointment update", ActionUpdateAppointment, `{"id":"ap1","title":"Moved"}`, false},
		{"appointment update without id", ActionUpdateAppointment, `{"title":"Moved"}`, true},
		{"valid note", ActionCreateNote, `{"content":"call back","tags":["x"]}`, false},
		{"empty note", ActionCreateNote, `{"content":""}`, true},
		{"unknown type", ActionType("NOPE"), `{}`, true},
		{"empty payload", ActionCreateNote, ``, true},
		{"broken json", ActionCreateNote, `{"content":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePayload(tt.actionType, json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.actionType, p.ActionType())
		})
	}
}

func TestEncodePayload(t *testing.T) {
	raw, err := EncodePayload(&UpdateAppointmentPayload{
		ID:                "ap1",
		AppointmentFields: AppointmentFields{Title: "Review", Attendees: []string{"x"}},
	})
	require.NoError(t, err)

	// встроенные поля сериализуются на верхнем уровне
	fields, err := PayloadFields(raw)
	require.NoError(t, err)
	assert.Equal(t, "ap1", fields["id"])
	assert.Equal(t, "Review", fields["title"])
	assert.Equal(t, []any{"x"}, fields["attendees"])

	_, err = EncodePayload(&CreateNotePayload{})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = EncodePayload(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPayloadFields_Empty(t *testing.T) {
	fields, err := PayloadFields(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = PayloadFields(json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestCacheEntry_IsExpired(t *testing.T) {
	now := time.UnixMilli(10_000)

	assert.False(t, (&CacheEntry{ExpiresAt: 0}).IsExpired(now))
	assert.False(t, (&CacheEntry{ExpiresAt: 10_001}).IsExpired(now))
	assert.True(t, (&CacheEntry{ExpiresAt: 10_000}).IsExpired(now))
	assert.True(t, (&CacheEntry{ExpiresAt: 5}).IsExpired(now))
}
