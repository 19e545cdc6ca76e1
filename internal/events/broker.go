// Package events содержит обобщенный брокер push-потоков (прогресс, события, состояние сети).
package events

import "sync"

// DefaultBufferSize размер буфера подписки по умолчанию
const DefaultBufferSize = 64

// Broker рассылает значения всем подписчикам. Медленный подписчик никогда не блокирует
// публикацию: в обычном режиме значение для него отбрасывается, в режиме latest
// старое непрочитанное значение заменяется новым.
type Broker[T any] struct {
	subs    map[uint64]chan T
	last    T
	nextID  uint64
	buffer  int
	mu      sync.Mutex
	latest  bool
	hasLast bool
	closed  bool
}

// NewBroker создает брокер потока событий с буфером size на подписчика.
func NewBroker[T any](size int) *Broker[T] {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Broker[T]{
		subs:   make(map[uint64]chan T),
		buffer: size,
	}
}

// NewLatestBroker создает брокер последнего значения: новый подписчик сразу получает
// текущее значение, а подписчик, не успевший прочитать, видит только самое свежее.
func NewLatestBroker[T any](initial T) *Broker[T] {
	return &Broker[T]{
		subs:    make(map[uint64]chan T),
		buffer:  1,
		latest:  true,
		last:    initial,
		hasLast: true,
	}
}

// Subscribe регистрирует подписчика. Возвращаемая функция отменяет подписку и закрывает канал;
// ее можно вызывать повторно.
func (b *Broker[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextID++
	id := b.nextID
	b.subs[id] = ch

	if b.latest && b.hasLast {
		ch <- b.last
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish отправляет значение всем подписчикам.
func (b *Broker[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.last = v
	b.hasLast = true

	for _, ch := range b.subs {
		select {
		case ch <- v:
			continue
		default:
		}

		if !b.latest {
			// буфер полон, событие отбрасывается
			continue
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Last возвращает последнее опубликованное значение.
func (b *Broker[T]) Last() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.hasLast
}

// Count returns the number of active subscribers.
func (b *Broker[T]) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close закрывает все подписки. Последующие Publish игнорируются.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
