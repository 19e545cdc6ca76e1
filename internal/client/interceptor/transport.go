// Package interceptor реализует границу между приложением и сервером:
// запросы проходят напрямую, пока сеть есть, и обслуживаются из кеша или очереди, когда ее нет.
package interceptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/iudanet/gophsync/internal/client/storage"
	clientsync "github.com/iudanet/gophsync/internal/client/sync"
	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out queue_mock.go . Queue
//go:generate moq -out connectivity_mock.go . Connectivity

// Заголовки синтетических ответов
const (
	HeaderOfflineCache  = "X-Offline-Cache"
	HeaderOfflineQueued = "X-Offline-Queued"
)

// DefaultCacheTTL время жизни закешированного ответа
const DefaultCacheTTL = 60 * time.Minute

// Queue принимает мутации для отложенной отправки
type Queue interface {
	Enqueue(ctx context.Context, spec clientsync.ActionSpec) (string, error)
}

// Connectivity состояние сети
type Connectivity interface {
	IsOnline() bool
	ReportUnreachable()
}

// Options параметры перехватчика
type Options struct {
	Base     http.RoundTripper
	Queue    Queue
	Cache    storage.CacheStorage
	Monitor  Connectivity
	Logger   *slog.Logger
	Bypass   []*regexp.Regexp // nil означает DefaultBypass
	Rules    []QueueRule      // nil означает DefaultRules
	CacheTTL time.Duration
}

// QueuedResponse тело синтетического ответа на поставленную в очередь мутацию
type QueuedResponse struct {
	ID       string `json:"id"`
	LocalID  string `json:"localId,omitempty"`
	ActionID string `json:"actionId"`
	Status   string `json:"status"`
	Queued   bool   `json:"queued"`
}

// Transport http.RoundTripper с офлайн-обработкой
type Transport struct {
	base    http.RoundTripper
	queue   Queue
	cache   storage.CacheStorage
	monitor Connectivity
	logger  *slog.Logger
	bypass  []*regexp.Regexp
	rules   []QueueRule
	ttl     time.Duration
}

var _ http.RoundTripper = (*Transport)(nil)

// New создает перехватчик
func New(opts Options) (*Transport, error) {
	if opts.Queue == nil || opts.Cache == nil || opts.Monitor == nil {
		return nil, errors.New("queue, cache and monitor are required")
	}
	t := &Transport{
		base:    opts.Base,
		queue:   opts.Queue,
		cache:   opts.Cache,
		monitor: opts.Monitor,
		logger:  opts.Logger,
		bypass:  opts.Bypass,
		rules:   opts.Rules,
		ttl:     opts.CacheTTL,
	}
	if t.base == nil {
		t.base = http.DefaultTransport
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.bypass == nil {
		t.bypass = DefaultBypass()
	}
	if t.rules == nil {
		t.rules = DefaultRules()
	}
	if t.ttl <= 0 {
		t.ttl = DefaultCacheTTL
	}
	return t, nil
}

// CacheKey канонический ключ запроса: путь и отсортированные параметры
func CacheKey(u *url.URL) string {
	query := u.Query()
	if len(query) == 0 {
		return u.Path
	}
	return u.Path + "?" + query.Encode()
}

// RoundTrip классифицирует запрос: bypass, онлайн, офлайн.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if bypassed(t.bypass, req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	if t.monitor.IsOnline() {
		resp, err := t.forward(req, body)
		if err == nil {
			return resp, nil
		}
		if req.Context().Err() != nil {
			return nil, err
		}
		t.logger.Warn("Upstream unreachable, switching to offline handling",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err)
	}

	return t.offline(req, body)
}

// errUpstream ответ 502/503/504 считается транспортной ошибкой
type errUpstream struct {
	code int
}

func (e *errUpstream) Error() string {
	return "upstream status " + strconv.Itoa(e.code)
}

// forward отправляет запрос на сервер; для успешного GET кеширует ответ
func (t *Transport) forward(req *http.Request, body []byte) (*http.Response, error) {
	out := req.Clone(req.Context())
	if body != nil {
		out.Body = io.NopCloser(bytes.NewReader(body))
		out.ContentLength = int64(len(body))
		out.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		if req.Context().Err() == nil {
			t.monitor.ReportUnreachable()
		}
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		t.monitor.ReportUnreachable()
		return nil, &errUpstream{code: resp.StatusCode}
	}

	if req.Method == http.MethodGet && resp.StatusCode == http.StatusOK {
		t.store(req, resp)
	}
	return resp, nil
}

// store кеширует JSON тело ответа, оставляя его доступным вызывающему
func (t *Transport) store(req *http.Request, resp *http.Response) {
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.logger.Warn("Failed to read response for cache", "path", req.URL.Path, "error", err)
		resp.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), errReader{err}))
		return
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if !json.Valid(data) {
		return
	}

	key := CacheKey(req.URL)
	if err := t.cache.PutCache(req.Context(), key, data, t.ttl); err != nil {
		t.logger.Warn("Failed to cache response", "key", key, "error", err)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// offline обслуживает запрос без сервера
func (t *Transport) offline(req *http.Request, body []byte) (*http.Response, error) {
	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		return t.fromCache(req)
	}

	rule, entityID, ok := match(t.rules, req.Method, req.URL.Path)
	if !ok {
		return nil, &OfflineError{
			Reason: ReasonCannotQueue,
			Method: req.Method,
			URL:    req.URL.String(),
		}
	}

	payload, err := buildPayload(body, entityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidPayload, err)
	}

	spec := clientsync.ActionSpec{
		Type:    rule.Type,
		Payload: payload,
	}
	if rule.Type.IsCreation() {
		spec.LocalID = clientsync.NewLocalID()
	}

	actionID, err := t.queue.Enqueue(req.Context(), spec)
	if err != nil {
		return nil, fmt.Errorf("failed to queue %s %s: %w", req.Method, req.URL.Path, err)
	}

	t.logger.Info("Request queued for sync",
		"method", req.Method,
		"path", req.URL.Path,
		"action_id", actionID,
		"type", rule.Type)

	id := entityID
	if spec.LocalID != "" {
		id = spec.LocalID
	}
	data, err := json.Marshal(QueuedResponse{
		ID:       id,
		LocalID:  spec.LocalID,
		ActionID: actionID,
		Status:   string(models.StatusPending),
		Queued:   true,
	})
	if err != nil {
		return nil, err
	}

	resp := syntheticResponse(req, http.StatusAccepted, data)
	resp.Header.Set(HeaderOfflineQueued, actionID)
	return resp, nil
}

func (t *Transport) fromCache(req *http.Request) (*http.Response, error) {
	key := CacheKey(req.URL)
	entry, err := t.cache.GetCache(req.Context(), key)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			t.logger.Warn("Cache read failed", "key", key, "error", err)
		}
		return nil, &OfflineError{
			Reason: ReasonDataUnavailable,
			Method: req.Method,
			URL:    req.URL.String(),
		}
	}

	resp := syntheticResponse(req, http.StatusOK, entry.Data)
	resp.Header.Set(HeaderOfflineCache, "HIT")
	if req.Method == http.MethodHead {
		resp.Body = http.NoBody
	}
	return resp, nil
}

// buildPayload добавляет id из пути, если в теле его нет
func buildPayload(body []byte, entityID string) (json.RawMessage, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, err
		}
	}
	if entityID != "" {
		if _, ok := fields["id"]; !ok {
			fields["id"] = entityID
		}
	}
	return json.Marshal(fields)
}

func syntheticResponse(req *http.Request, status int, body []byte) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
