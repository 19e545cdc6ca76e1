package daemon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/pkg/api"
)

var (
	// ErrDaemonUnavailable демон не запущен или не отвечает
	ErrDaemonUnavailable = errors.New("sync daemon is not reachable")

	// ErrStopStream возвращается из обработчика Stream для штатного завершения
	ErrStopStream = errors.New("stop stream")
)

// ControlError ошибка управляющего API
type ControlError struct {
	Message    string
	StatusCode int
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("daemon error (%d): %s", e.StatusCode, e.Message)
}

// Client клиент управляющего API демона
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает клиент для демона по адресу baseURL (например http://127.0.0.1:8787)
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Status состояние очереди, сети и прогресса
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Check немедленная проверка доступности сервера
func (c *Client) Check(ctx context.Context) (*models.ConnectivityState, error) {
	var state models.ConnectivityState
	if err := c.do(ctx, http.MethodPost, "/check", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Actions действия очереди; пустой статус означает все
func (c *Client) Actions(ctx context.Context, status models.ActionStatus) ([]*models.QueuedAction, error) {
	path := "/actions"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var actions []*models.QueuedAction
	if err := c.do(ctx, http.MethodGet, path, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// Action действие по id
func (c *Client) Action(ctx context.Context, id string) (*models.QueuedAction, error) {
	var action models.QueuedAction
	if err := c.do(ctx, http.MethodGet, "/actions/"+url.PathEscape(id), &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// Retry возвращает FAILED или CONFLICT действие в очередь
func (c *Client) Retry(ctx context.Context, id string) (*models.QueuedAction, error) {
	var action models.QueuedAction
	if err := c.do(ctx, http.MethodPost, "/actions/"+url.PathEscape(id)+"/retry", &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// Resolve разрешает конфликт. Возвращает nil, если расхождения на сервере больше нет.
func (c *Client) Resolve(ctx context.Context, id string, strategy conflict.Strategy) (*conflict.MergeResult, error) {
	path := "/actions/" + url.PathEscape(id) + "/resolve"
	if strategy != "" {
		path += "?strategy=" + url.QueryEscape(string(strategy))
	}
	var result *conflict.MergeResult
	if err := c.do(ctx, http.MethodPost, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearQueue удаляет все действия
func (c *Client) ClearQueue(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/actions", nil)
}

// Drain запускает синхронный проход и возвращает итоговый прогресс
func (c *Client) Drain(ctx context.Context) (*models.SyncProgress, error) {
	var progress models.SyncProgress
	if err := c.do(ctx, http.MethodPost, "/drain", &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CacheEntries живые записи кеша
func (c *Client) CacheEntries(ctx context.Context) ([]*models.CacheEntry, error) {
	var entries []*models.CacheEntry
	if err := c.do(ctx, http.MethodGet, "/cache", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CacheEntry запись кеша по ключу
func (c *Client) CacheEntry(ctx context.Context, key string) (*models.CacheEntry, error) {
	var entry models.CacheEntry
	if err := c.do(ctx, http.MethodGet, "/cache?key="+url.QueryEscape(key), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ClearCache удаляет все записи кеша
func (c *Client) ClearCache(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cache", nil)
}

// SweepCache удаляет просроченные записи и возвращает их количество
func (c *Client) SweepCache(ctx context.Context) (int, error) {
	var resp SweepResponse
	if err := c.do(ctx, http.MethodPost, "/cache/sweep", &resp); err != nil {
		return 0, err
	}
	return resp.Removed, nil
}

// Stream читает поток /_sync/events и передает сообщения в fn до отмены ctx.
// fn может вернуть ErrStopStream, чтобы завершить чтение без ошибки.
func (c *Client) Stream(ctx context.Context, fn func(StreamMessage) error) error {
	conn, _, err := websocket.Dial(ctx, c.baseURL+ControlPrefix+"/events", nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrDaemonUnavailable, err)
	}
	defer conn.CloseNow()

	for {
		var msg StreamMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if status := websocket.CloseStatus(err); status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return nil
			}
			return fmt.Errorf("event stream: %w", err)
		}
		if err := fn(msg); err != nil {
			if errors.Is(err, ErrStopStream) {
				conn.Close(websocket.StatusNormalClosure, "")
				return nil
			}
			return err
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ControlPrefix+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDaemonUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		ctrlErr := &ControlError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		var errResp api.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			ctrlErr.Message = errResp.Error
		}
		return ctrlErr
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
