package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// ClientAPI определяет удаленные операции, которые использует движок синхронизации
type ClientAPI interface {
	// Apply отправляет действие очереди на сервер
	Apply(ctx context.Context, action *models.QueuedAction) (*ApplyResult, error)

	// FetchEntity возвращает текущую серверную версию сущности, которую изменяет действие.
	// (nil, nil), если сущность не найдена или действие ничего не изменяет.
	FetchEntity(ctx context.Context, action *models.QueuedAction) (map[string]any, error)
}

// ApplyResult результат успешного применения действия
type ApplyResult struct {
	ServerID   string
	Version    int64
	StatusCode int
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ ClientAPI = (*Client)(nil)

// Option настройка клиента
type Option func(*Client)

// WithToken задает bearer token для всех запросов
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout задает таймаут запросов
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithTransport подменяет транспорт HTTP клиента
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply применяет действие через маршрут его типа.
// id из ответа (строка или число) возвращается как ServerID.
func (c *Client) Apply(ctx context.Context, action *models.QueuedAction) (*ApplyResult, error) {
	route, err := RouteFor(action.Type)
	if err != nil {
		return nil, err
	}
	payload, err := action.DecodePayload()
	if err != nil {
		return nil, err
	}
	path, err := expandPath(route.Path, payload)
	if err != nil {
		return nil, err
	}

	// повтор того же действия сервер распознает по id действия
	headers := map[string]string{api.IdempotencyHeader: action.ID}

	var resp struct {
		ID      json.RawMessage `json:"id"`
		Version int64           `json:"version"`
	}
	status, err := c.doRequest(ctx, route.Method, path, headers, action.Payload, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", route.Method, path, err)
	}

	serverID, err := parseID(resp.ID)
	if err != nil {
		return nil, err
	}

	return &ApplyResult{
		ServerID:   serverID,
		Version:    resp.Version,
		StatusCode: status,
	}, nil
}

// FetchEntity загружает текущую версию сущности для проверки конфликта
func (c *Client) FetchEntity(ctx context.Context, action *models.QueuedAction) (map[string]any, error) {
	route, err := RouteFor(action.Type)
	if err != nil {
		return nil, err
	}
	if route.FetchPath == "" {
		return nil, nil
	}
	payload, err := action.DecodePayload()
	if err != nil {
		return nil, err
	}
	path, err := expandPath(route.FetchPath, payload)
	if err != nil {
		return nil, err
	}

	var entity map[string]any
	if _, err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &entity); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return entity, nil
}

// parseID приводит id из ответа к строке
func parseID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("failed to decode id: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("unexpected id format %s: %w", trimmed, err)
	}
	return n.String(), nil
}

// doRequest выполняет HTTP запрос и возвращает код ответа.
// Ошибки транспорта и не-2xx ответы возвращаются как *Error.
func (c *Client) doRequest(ctx context.Context, method, path string, headers map[string]string, body, result any) (int, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &Error{Kind: KindUnreachable, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &Error{Kind: KindUnreachable, StatusCode: resp.StatusCode, Err: err}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Message = errResp.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Error
			}
			apiErr.Version = errResp.Version
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return resp.StatusCode, apiErr
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
