package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL + "/")

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)

	client = NewClient(baseURL, WithTimeout(5*time.Second), WithToken("tkn"))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "tkn", client.token)
}

func newAction(id string, actionType models.ActionType, payload string) *models.QueuedAction {
	return &models.QueuedAction{
		ID:      id,
		Type:    actionType,
		Payload: json.RawMessage(payload),
		Status:  models.StatusSyncing,
	}
}

// TestClient_Apply_Routes проверяет отображение типов действий на HTTP вызовы
func TestClient_Apply_Routes(t *testing.T) {
	tests := []struct {
		name       string
		action     *models.QueuedAction
		wantMethod string
		wantPath   string
		response   string
		wantID     string
	}{
		{
			name:       "create message",
			action:     newAction("a1", models.ActionCreateMessage, `{"text":"hi"}`),
			wantMethod: "POST",
			wantPath:   "/api/v1/messages",
			response:   `{"id":"srv-1","version":1}`,
			wantID:     "srv-1",
		},
		{
			name:       "update status",
			action:     newAction("a2", models.ActionUpdateStatus, `{"id":"42","status":"CLOSED"}`),
			wantMethod: "PATCH",
			wantPath:   "/api/v1/dossiers/42/status",
			response:   `{"id":42,"version":3}`,
			wantID:     "42",
		},
		{
			name:       "create appointment",
			action:     newAction("a3", models.ActionCreateAppointment, `{"title":"Visit"}`),
			wantMethod: "POST",
			wantPath:   "/api/v1/appointments",
			response:   `{"id":1001}`,
			wantID:     "1001",
		},
		{
			name:       "update appointment",
			action:     newAction("a4", models.ActionUpdateAppointment, `{"id":"ap 7","title":"Moved"}`),
			wantMethod: "PUT",
			wantPath:   "/api/v1/appointments/ap 7",
			response:   `{"id":"ap 7","version":2}`,
			wantID:     "ap 7",
		},
		{
			name:       "create note without id in response",
			action:     newAction("a5", models.ActionCreateNote, `{"content":"remember"}`),
			wantMethod: "POST",
			wantPath:   "/api/v1/notes",
			response:   ``,
			wantID:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, tt.action.ID, r.Header.Get(api.IdempotencyHeader))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, string(tt.action.Payload), string(body))

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewClient(server.URL, WithToken("secret"))
			res, err := client.Apply(context.Background(), tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ServerID)
			assert.Equal(t, http.StatusOK, res.StatusCode)
		})
	}
}

// TestClient_Apply_Errors проверяет классификацию ошибок
func TestClient_Apply_Errors(t *testing.T) {
	tests := []struct {
		responseBody   any
		name           string
		expectedErrMsg string
		wantKind       ErrorKind
		statusCode     int
		wantVersion    int64
	}{
		{
			name:       "Version conflict",
			statusCode: http.StatusConflict,
			responseBody: api.ErrorResponse{
				Error:   "conflict",
				Message: "version mismatch",
				Version: 5,
			},
			expectedErrMsg: "server error (409): version mismatch",
			wantKind:       KindConflict,
			wantVersion:    5,
		},
		{
			name:       "Validation error",
			statusCode: http.StatusBadRequest,
			responseBody: api.ErrorResponse{
				Message: "text is required",
			},
			expectedErrMsg: "server error (400): text is required",
			wantKind:       KindRejected,
		},
		{
			name:           "Unauthorized",
			statusCode:     http.StatusUnauthorized,
			responseBody:   "nope",
			expectedErrMsg: "server error (401): nope",
			wantKind:       KindRejected,
		},
		{
			name:           "Rate limited",
			statusCode:     http.StatusTooManyRequests,
			responseBody:   api.ErrorResponse{Error: "too many requests"},
			expectedErrMsg: "server error (429): too many requests",
			wantKind:       KindUnreachable,
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "",
			expectedErrMsg: "request failed with status 500",
			wantKind:       KindUnreachable,
		},
		{
			name:           "Gateway timeout",
			statusCode:     http.StatusGatewayTimeout,
			responseBody:   "upstream timed out",
			expectedErrMsg: "server error (504): upstream timed out",
			wantKind:       KindUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)
			res, err := client.Apply(context.Background(), newAction("a1", models.ActionCreateMessage, `{"text":"hi"}`))

			require.Error(t, err)
			assert.Nil(t, res)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			assert.Equal(t, tt.wantKind, KindOf(err))

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantVersion, apiErr.Version)
		})
	}
}

func TestClient_Apply_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.Apply(context.Background(), newAction("a1", models.ActionCreateNote, `{"content":"x"}`))

	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
	assert.False(t, IsRejected(err))
	assert.False(t, IsConflict(err))
}

func TestClient_Apply_InvalidAction(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Apply(context.Background(), newAction("a1", models.ActionCreateMessage, `{"dossierId":"d1"}`))
	assert.ErrorIs(t, err, models.ErrInvalidPayload)

	_, err = client.Apply(context.Background(), newAction("a2", models.ActionType("DROP"), `{}`))
	assert.ErrorIs(t, err, ErrNoRoute)
}

// TestClient_FetchEntity проверяет загрузку серверной версии сущности
func TestClient_FetchEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		switch r.URL.Path {
		case "/api/v1/dossiers/42":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "42", "status": "OPEN", "version": 2})
		case "/api/v1/appointments/missing":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not found"})
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	entity, err := client.FetchEntity(ctx, newAction("a1", models.ActionUpdateStatus, `{"id":"42","status":"CLOSED"}`))
	require.NoError(t, err)
	assert.Equal(t, "OPEN", entity["status"])
	assert.Equal(t, float64(2), entity["version"])

	entity, err = client.FetchEntity(ctx, newAction("a2", models.ActionUpdateAppointment, `{"id":"missing"}`))
	require.NoError(t, err)
	assert.Nil(t, entity)

	// создание не имеет серверной версии, запроса нет
	entity, err = client.FetchEntity(ctx, newAction("a3", models.ActionCreateNote, `{"content":"x"}`))
	require.NoError(t, err)
	assert.Nil(t, entity)

	_, err = client.FetchEntity(ctx, newAction("a4", models.ActionUpdateAppointment, `{"id":"broken"}`))
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{`"abc"`, "abc", false},
		{`123`, "123", false},
		{`12.5`, "12.5", false},
		{`null`, "", false},
		{``, "", false},
		{`true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseID(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
