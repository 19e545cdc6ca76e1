package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iudanet/gophsync/internal/models"
)

// Start запускает фоновые триггеры дренажа:
//   - переход сети в состояние, отличное от OFFLINE;
//   - периодический таймер, срабатывающий только онлайн и без идущего дренажа;
//   - периодическая очистка просроченного кеша.
//
// Перед запуском часы продвигаются за последнюю сохраненную метку очереди,
// а действия, оставшиеся в SYNCING после падения, возвращаются в PENDING.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}
	if c.ctx.Err() != nil {
		return ErrStopped
	}

	if actions, err := c.queue.GetAllActions(ctx); err != nil {
		c.logger.Warn("Failed to read queue on start", "error", err)
	} else if n := len(actions); n > 0 {
		c.clock.Observe(actions[n-1].Timestamp)
	}

	if c.draining.CompareAndSwap(false, true) {
		n, err := c.recoverInterrupted(ctx)
		c.draining.Store(false)
		if err != nil {
			c.logger.Warn("Failed to recover interrupted actions", "error", err)
		} else if n > 0 {
			c.dirty.Store(true)
		}
	}

	sched := cron.New(cron.WithLogger(cronLogger{logger: c.logger}))
	if _, err := sched.AddFunc(every(c.drainInterval), c.periodicDrain); err != nil {
		return fmt.Errorf("failed to schedule drain: %w", err)
	}
	if c.cache != nil {
		if _, err := sched.AddFunc(every(c.sweepInterval), c.sweepCache); err != nil {
			return fmt.Errorf("failed to schedule cache sweep: %w", err)
		}
	}

	states, unsubscribe := c.monitor.Subscribe()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer unsubscribe()
		c.watchConnectivity(ctx, states)
	}()

	sched.Start()
	c.cron = sched
	c.started = true

	c.logger.Info("Sync coordinator started",
		"drain_interval", c.drainInterval,
		"sweep_interval", c.sweepInterval)
	return nil
}

// Stop останавливает таймеры и ждет завершения фоновых дренажей.
// Повторный вызов безопасен.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	sched := c.cron
	c.cron = nil
	c.cancel()
	c.mu.Unlock()

	if sched != nil {
		<-sched.Stop().Done()
	}
	c.wg.Wait()

	c.events.Close()
	c.progress.Close()
}

func (c *Coordinator) watchConnectivity(ctx context.Context, states <-chan models.ConnectivityState) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if state.Status == models.ConnectionOffline {
				continue
			}
			c.logger.Debug("Connectivity restored, draining", "status", state.Status)
			c.kick()
		}
	}
}

func (c *Coordinator) periodicDrain() {
	if !c.monitor.IsOnline() || c.draining.Load() {
		return
	}
	if err := c.Drain(c.ctx); err != nil {
		c.logger.Error("Periodic drain failed", "error", err)
	}
}

func (c *Coordinator) sweepCache() {
	n, err := c.cache.SweepExpired(c.ctx)
	if err != nil {
		c.logger.Error("Cache sweep failed", "error", err)
		return
	}
	if n > 0 {
		c.logger.Info("Expired cache entries removed", "count", n)
	}
}

func every(d time.Duration) string {
	return "@every " + d.String()
}

// cronLogger направляет журнал планировщика в slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
