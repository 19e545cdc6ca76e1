package clock

import (
	"sync"
	"time"
)

// Clock выдает строго возрастающие метки времени в миллисекундах.
// Два действия, поставленные в очередь в одну миллисекунду, получают разные метки,
// поэтому порядок дренажа совпадает с порядком постановки.
type Clock struct {
	now  func() time.Time // источник физического времени
	last int64            // последняя выданная метка
	mu   sync.Mutex
}

// New создает часы поверх системного времени.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithSource создает часы с заданным источником времени. Используется в тестах.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick возвращает следующую метку: max(now, last+1).
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Observe продвигает часы до ts, если ts больше последней метки.
// Вызывается при открытии хранилища, чтобы новые действия шли после уже сохраненных.
func (c *Clock) Observe(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last {
		c.last = ts
	}
}

// Last возвращает последнюю выданную метку без ее изменения.
func (c *Clock) Last() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// Now returns the current physical time of the clock source.
func (c *Clock) Now() time.Time {
	return c.now()
}
