// Package connectivity отслеживает доступность сервера и качество канала.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/gophsync/internal/events"
	"github.com/iudanet/gophsync/internal/models"
)

// Пороги классификации медленного канала
const (
	SlowRTTThreshold = 2000 // ms
	DefaultDebounce  = 100 * time.Millisecond
	probeTimeout     = 5 * time.Second
)

var slowEffectiveTypes = map[string]struct{}{
	"slow-2g": {},
	"2g":      {},
}

// LinkInfo характеристики канала, если платформа их сообщает
type LinkInfo struct {
	EffectiveType string  `json:"effectiveType"`
	Downlink      float64 `json:"downlink"`
	RTT           int64   `json:"rtt"` // ms
}

// Options параметры монитора
type Options struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Now        func() time.Time
	ProbeURL   string        // пустой URL отключает активную проверку
	Debounce   time.Duration // 0 применяет сигналы синхронно
}

// Monitor классифицирует сеть как ONLINE, OFFLINE или SLOW.
// Пропажа сети применяется сразу; появление сети и смена характеристик канала
// проходят через окно debounce, поэтому дребезг дает одно изменение состояния.
type Monitor struct {
	client  *http.Client
	logger  *slog.Logger
	now     func() time.Time
	timer   *time.Timer
	link    *LinkInfo
	broker  *events.Broker[models.ConnectivityState]
	probes  singleflight.Group
	state   models.ConnectivityState
	url     string
	window  time.Duration
	mu      sync.Mutex
	online  bool // последний сырой сигнал
	stopped bool
}

// New создает монитор. Начальное состояние ONLINE.
func New(opts Options) *Monitor {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: probeTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}

	initial := models.ConnectivityState{
		Status:     models.ConnectionOnline,
		LastOnline: opts.Now(),
	}

	return &Monitor{
		client: opts.HTTPClient,
		logger: opts.Logger,
		now:    opts.Now,
		url:    opts.ProbeURL,
		window: opts.Debounce,
		online: true,
		state:  initial,
		broker: events.NewLatestBroker(initial),
	}
}

// IsOnline reports whether status is not OFFLINE.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Status != models.ConnectionOffline
}

// IsSlow reports whether status is SLOW.
func (m *Monitor) IsSlow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Status == models.ConnectionSlow
}

// State возвращает снимок текущего состояния
func (m *Monitor) State() models.ConnectivityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe возвращает поток состояний. Новый подписчик сразу получает текущее состояние.
func (m *Monitor) Subscribe() (<-chan models.ConnectivityState, func()) {
	return m.broker.Subscribe()
}

// NotifyOnline сырой сигнал о появлении сети
func (m *Monitor) NotifyOnline() {
	m.signal(func() { m.online = true })
}

// NotifyOffline сырой сигнал о пропаже сети. Применяется сразу и отменяет
// отложенные сигналы.
func (m *Monitor) NotifyOffline() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.online = false
	if m.timer != nil {
		m.timer.Stop()
	}
	m.applyLocked()
}

// NotifyLinkChange сырой сигнал об изменении характеристик канала
func (m *Monitor) NotifyLinkChange(info LinkInfo) {
	m.signal(func() {
		link := info
		m.link = &link
	})
}

// ReportUnreachable вызывается транспортом, когда запрос к серверу не дошел.
func (m *Monitor) ReportUnreachable() {
	m.NotifyOffline()
}

// signal применяет изменение сырого состояния и откладывает пересчет на окно debounce.
func (m *Monitor) signal(mutate func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	mutate()

	if m.window == 0 {
		m.applyLocked()
		return
	}

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.window, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if !m.stopped {
			m.applyLocked()
		}
	})
}

// applyLocked пересчитывает состояние по сырым сигналам. Вызывается под m.mu.
func (m *Monitor) applyLocked() {
	next := m.state
	next.Status = classify(m.online, m.link)
	if m.link != nil {
		next.EffectiveType = m.link.EffectiveType
		next.Downlink = m.link.Downlink
		next.RTT = m.link.RTT
	}

	if next == m.state {
		return
	}

	wasOffline := m.state.Status == models.ConnectionOffline
	isOffline := next.Status == models.ConnectionOffline
	if wasOffline != isOffline {
		next.LastOnline = m.now()
	}

	if next.Status != m.state.Status {
		m.logger.Info("connectivity changed", "from", m.state.Status, "to", next.Status)
	}
	m.state = next
	m.broker.Publish(next)
}

func classify(online bool, link *LinkInfo) models.ConnectionStatus {
	if !online {
		return models.ConnectionOffline
	}
	if link == nil {
		return models.ConnectionOnline
	}
	if _, slow := slowEffectiveTypes[link.EffectiveType]; slow || link.RTT > SlowRTTThreshold {
		return models.ConnectionSlow
	}
	return models.ConnectionOnline
}

// Check выполняет активную проверку доступности сервера (HEAD на ProbeURL).
// Параллельные вызовы объединяются в одну проверку. Результат применяется сразу,
// минуя окно debounce. Без ProbeURL возвращает текущее состояние.
func (m *Monitor) Check(ctx context.Context) bool {
	if m.url == "" {
		return m.IsOnline()
	}

	v, _, _ := m.probes.Do("probe", func() (any, error) {
		return m.probe(ctx), nil
	})
	reachable, _ := v.(bool)
	if ctx.Err() != nil {
		// проверка прервана вызывающим, результат недостоверен
		return m.IsOnline()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return reachable
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.online = reachable
	m.applyLocked()

	return reachable
}

func (m *Monitor) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.url, nil)
	if err != nil {
		m.logger.Warn("invalid probe url", "url", m.url, "error", err)
		return false
	}

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Debug("probe failed", "url", m.url, "error", err)
		return false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		m.logger.Debug("probe reached gateway only", "status", resp.StatusCode)
		return false
	}
	return true
}

// Watch периодически проверяет доступность сервера до отмены ctx.
func (m *Monitor) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	m.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Stop отменяет отложенные сигналы и закрывает поток состояний.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.stopped = true
	if m.timer != nil {
		m.timer.Stop()
	}
	m.broker.Close()
}
