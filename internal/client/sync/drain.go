package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/gophsync/internal/client/api"
	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/storage"
	"github.com/iudanet/gophsync/internal/models"
)

// outcome итог обработки одного действия в проходе
type outcome int

const (
	outcomeSynced outcome = iota
	outcomeFailed
	outcomeAborted // попытка не состоялась, действие осталось PENDING
)

// Drain отправляет все PENDING действия в порядке постановки.
// Вызов во время уже идущего дренажа ничего не делает; действия, поставленные
// в очередь во время прохода, обрабатываются следующим проходом того же вызова.
func (c *Coordinator) Drain(ctx context.Context) error {
	for {
		if !c.draining.CompareAndSwap(false, true) {
			return nil
		}
		c.dirty.Store(false)

		err := c.drainPass(ctx)

		c.draining.Store(false)
		if err != nil || ctx.Err() != nil || !c.dirty.Load() || !c.monitor.IsOnline() {
			return err
		}
	}
}

// IsDraining reports whether a drain pass is in flight.
func (c *Coordinator) IsDraining() bool {
	return c.draining.Load()
}

func (c *Coordinator) drainPass(ctx context.Context) error {
	if !c.monitor.IsOnline() {
		return nil
	}

	// флаг draining удерживается, значит SYNCING остался от прерванного прохода
	if _, err := c.recoverInterrupted(ctx); err != nil {
		return err
	}

	actions, err := c.queue.GetPendingActions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending actions: %w", err)
	}
	if len(actions) == 0 {
		return nil
	}

	c.logger.Info("Starting drain", "pending", len(actions))

	progress := models.SyncProgress{Total: len(actions), InProgress: true}
	c.progress.Publish(progress)

	var passErr error
	for _, action := range actions {
		if ctx.Err() != nil {
			break
		}
		// без сети оставшиеся действия не трогаем, чтобы не тратить попытки
		if !c.monitor.IsOnline() {
			c.logger.Info("Connectivity lost, aborting drain pass",
				"remaining", progress.Total-progress.Completed-progress.Failed)
			break
		}

		result, err := c.process(ctx, action)
		if err != nil {
			passErr = err
			break
		}
		switch result {
		case outcomeSynced:
			progress.Completed++
		case outcomeFailed:
			progress.Failed++
		}
		c.progress.Publish(progress)
	}

	progress.InProgress = false
	c.progress.Publish(progress)

	if progress.Completed > 0 {
		if c.metadata != nil {
			if err := c.metadata.SaveLastSyncTimestamp(ctx, c.clock.Now().UnixMilli()); err != nil {
				c.logger.Warn("Failed to save last sync timestamp", "error", err)
			}
		}
		c.emit(models.Event{
			Kind:    models.EventBatchSynced,
			Count:   progress.Completed,
			Message: fmt.Sprintf("%d action(s) synced", progress.Completed),
		})
	}

	c.logger.Info("Drain finished",
		"total", progress.Total,
		"completed", progress.Completed,
		"failed", progress.Failed)

	return passErr
}

// recoverInterrupted возвращает в PENDING действия, застрявшие в SYNCING после
// падения процесса или сбоя записи. Попытка не засчитывается.
// Вызывается только при удержанном флаге draining.
func (c *Coordinator) recoverInterrupted(ctx context.Context) (int, error) {
	stuck, err := c.queue.GetActionsByStatus(ctx, models.StatusSyncing)
	if err != nil {
		return 0, fmt.Errorf("failed to get interrupted actions: %w", err)
	}
	for _, action := range stuck {
		action.Status = models.StatusPending
		if err := c.save(ctx, action); err != nil {
			return 0, err
		}
	}
	if len(stuck) > 0 {
		c.logger.Warn("Interrupted actions returned to queue", "count", len(stuck))
	}
	return len(stuck), nil
}

// process выполняет одно действие. Ошибка возвращается только при сбое хранилища.
func (c *Coordinator) process(ctx context.Context, action *models.QueuedAction) (outcome, error) {
	action.Status = models.StatusSyncing
	if err := c.queue.UpdateAction(ctx, action); err != nil {
		return outcomeAborted, fmt.Errorf("failed to mark action syncing: %w", err)
	}

	res, applyErr := c.api.Apply(ctx, action)
	if applyErr == nil {
		return outcomeSynced, c.markSynced(ctx, action, res)
	}

	// отмена контекста не считается попыткой
	if ctx.Err() != nil {
		action.Status = models.StatusPending
		return outcomeAborted, c.save(context.WithoutCancel(ctx), action)
	}

	switch {
	case errors.Is(applyErr, models.ErrInvalidPayload), errors.Is(applyErr, api.ErrNoRoute):
		c.terminate(action, models.ErrorKindInvalidInput, applyErr)

	case api.IsConflict(applyErr):
		return c.handleConflict(ctx, action, applyErr)

	case api.IsRejected(applyErr):
		c.terminate(action, models.ErrorKindRejected, applyErr)

	default:
		var apiErr *api.Error
		if errors.As(applyErr, &apiErr) && apiErr.StatusCode == 0 {
			c.monitor.ReportUnreachable()
		}
		c.failAttempt(action, models.ErrorKindUnreachable, applyErr)
	}

	return outcomeFailed, c.save(ctx, action)
}

// markSynced переводит действие в SUCCESS и записывает соответствие id для созданной сущности
func (c *Coordinator) markSynced(ctx context.Context, action *models.QueuedAction, res *api.ApplyResult) error {
	if res != nil && res.ServerID != "" {
		action.ServerID = res.ServerID
	}

	// соответствие пишется до SUCCESS: при сбое действие остается SYNCING
	// и следующий проход повторит его с тем же ключом идемпотентности
	if action.Type.IsCreation() && action.LocalID != "" && action.ServerID != "" {
		err := c.mappings.SaveMapping(ctx, &models.LocalIDMapping{
			LocalID:    action.LocalID,
			ServerID:   action.ServerID,
			EntityType: action.Type.EntityType(),
		})
		switch {
		case errors.Is(err, storage.ErrMappingExists):
			c.logger.Warn("Local id already mapped, keeping existing mapping",
				"local_id", action.LocalID,
				"server_id", action.ServerID)
		case err != nil:
			return fmt.Errorf("failed to save id mapping: %w", err)
		}
	}

	action.Status = models.StatusSuccess
	action.Error = ""
	action.ErrorKind = models.ErrorKindNone
	if err := c.queue.UpdateAction(ctx, action); err != nil {
		return fmt.Errorf("failed to mark action synced: %w", err)
	}

	c.logger.Info("Action synced",
		"action_id", action.ID,
		"type", action.Type,
		"server_id", action.ServerID)

	c.emit(models.Event{
		Kind:       models.EventSynced,
		ActionID:   action.ID,
		ActionType: action.Type,
		Message:    "Synced: " + action.Type.Label(),
	})
	return nil
}

// failAttempt засчитывает неудачную попытку: PENDING до MaxRetries, затем FAILED
func (c *Coordinator) failAttempt(action *models.QueuedAction, kind models.ErrorKind, err error) {
	action.RetryCount++
	action.Error = err.Error()
	action.ErrorKind = kind

	if action.RetryCount >= models.MaxRetries {
		action.Status = models.StatusFailed
		c.logger.Warn("Action failed permanently",
			"action_id", action.ID,
			"type", action.Type,
			"attempts", action.RetryCount,
			"error", err)
		c.emit(models.Event{
			Kind:       models.EventFailed,
			ActionID:   action.ID,
			ActionType: action.Type,
			ErrorKind:  kind,
			Message:    "Sync failed: " + action.Type.Label(),
			Retryable:  true,
		})
		return
	}

	action.Status = models.StatusPending
	c.logger.Info("Action will be retried",
		"action_id", action.ID,
		"type", action.Type,
		"attempt", action.RetryCount,
		"error", err)
	c.emit(models.Event{
		Kind:       models.EventRetrying,
		ActionID:   action.ID,
		ActionType: action.Type,
		ErrorKind:  kind,
		Message:    fmt.Sprintf("Retrying %s (%d/%d)", action.Type.Label(), action.RetryCount, models.MaxRetries),
	})
}

// terminate сразу переводит действие в FAILED: повтор с тем же телом не поможет
func (c *Coordinator) terminate(action *models.QueuedAction, kind models.ErrorKind, err error) {
	action.RetryCount++
	if action.RetryCount < models.MaxRetries {
		action.RetryCount = models.MaxRetries
	}
	action.Status = models.StatusFailed
	action.Error = err.Error()
	action.ErrorKind = kind

	c.logger.Warn("Action rejected",
		"action_id", action.ID,
		"type", action.Type,
		"kind", kind,
		"error", err)
	c.emit(models.Event{
		Kind:       models.EventFailed,
		ActionID:   action.ID,
		ActionType: action.Type,
		ErrorKind:  kind,
		Message:    "Rejected by server: " + action.Type.Label(),
		Retryable:  true,
	})
}

// handleConflict сверяет действие с серверной версией и применяет стратегию по умолчанию
func (c *Coordinator) handleConflict(ctx context.Context, action *models.QueuedAction, applyErr error) (outcome, error) {
	info, err := c.resolver.DetectConflict(ctx, action)
	if err != nil {
		c.failAttempt(action, models.ErrorKindUnreachable, err)
		return outcomeFailed, c.save(ctx, action)
	}

	if info == nil {
		// поля совпадают, устарела только версия
		var apiErr *api.Error
		if errors.As(applyErr, &apiErr) && apiErr.Version > 0 {
			if err := setPayloadVersion(action, apiErr.Version); err != nil {
				c.terminate(action, models.ErrorKindInvalidInput, err)
				return outcomeFailed, c.save(ctx, action)
			}
		}
		c.failAttempt(action, models.ErrorKindConflict, applyErr)
		return outcomeFailed, c.save(ctx, action)
	}

	result, err := c.resolver.Resolve(info, "")
	if err != nil {
		return outcomeFailed, err
	}
	if err := c.applyResolution(action, info, result, true); err != nil {
		c.terminate(action, models.ErrorKindInvalidInput, err)
		return outcomeFailed, c.save(ctx, action)
	}
	if err := c.save(ctx, action); err != nil {
		return outcomeFailed, err
	}

	if action.Status == models.StatusSuccess {
		return outcomeSynced, nil
	}
	return outcomeFailed, nil
}

// applyResolution переносит результат стратегии на действие без записи в хранилище.
//
//	SERVER_WINS              -> SUCCESS, серверная версия остается
//	CLIENT_WINS, MERGE ok    -> payload переписан, PENDING со свежей версией
//	MANUAL, MERGE частичный  -> CONFLICT с полями для ручного разрешения
func (c *Coordinator) applyResolution(action *models.QueuedAction, info *conflict.ConflictInfo, result *conflict.MergeResult, countAttempt bool) error {
	action.Resolution = string(result.Strategy)

	switch {
	case result.Strategy == conflict.StrategyServerWins:
		action.Status = models.StatusSuccess
		action.ConflictFields = info.Fields
		action.Error = ""
		action.ErrorKind = models.ErrorKindNone
		c.logger.Info("Conflict resolved in favour of server",
			"action_id", action.ID,
			"fields", info.Fields)
		c.emit(models.Event{
			Kind:       models.EventConflict,
			ActionID:   action.ID,
			ActionType: action.Type,
			ErrorKind:  models.ErrorKindConflict,
			Message:    "Server version kept: " + action.Type.Label(),
		})
		return nil

	case result.Resolved:
		version, err := serverVersion(info.ServerData)
		if err != nil {
			return err
		}
		if err := rewritePayload(action, result.MergedData, version); err != nil {
			return err
		}
		action.ConflictFields = nil
		if countAttempt {
			c.failAttempt(action, models.ErrorKindConflict, fmt.Errorf("conflict on %v resolved with %s", info.Fields, result.Strategy))
			return nil
		}
		action.Status = models.StatusPending
		action.Error = ""
		action.ErrorKind = models.ErrorKindNone
		return nil
	}

	action.Status = models.StatusConflict
	action.ConflictFields = result.UnresolvedFields
	action.ErrorKind = models.ErrorKindConflict
	action.Error = fmt.Sprintf("manual resolution required for %v", result.UnresolvedFields)

	c.logger.Warn("Conflict requires manual resolution",
		"action_id", action.ID,
		"strategy", result.Strategy,
		"fields", result.UnresolvedFields)
	c.emit(models.Event{
		Kind:       models.EventConflict,
		ActionID:   action.ID,
		ActionType: action.Type,
		ErrorKind:  models.ErrorKindConflict,
		Message:    "Conflict needs attention: " + action.Type.Label(),
		Retryable:  true,
	})
	return nil
}

func (c *Coordinator) save(ctx context.Context, action *models.QueuedAction) error {
	if err := c.queue.UpdateAction(ctx, action); err != nil {
		return fmt.Errorf("failed to update action %s: %w", action.ID, err)
	}
	return nil
}

// rewritePayload заменяет payload данными разрешения, приведенными к форме типа действия
func rewritePayload(action *models.QueuedAction, data map[string]any, version int64) error {
	fields := make(map[string]any, len(data)+1)
	for k, v := range data {
		fields[k] = v
	}
	// id сущности берется из исходного payload
	original, err := models.PayloadFields(action.Payload)
	if err != nil {
		return err
	}
	if id, ok := original["id"]; ok {
		fields["id"] = id
	}
	if version > 0 {
		fields["version"] = version
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode resolved payload: %w", err)
	}
	payload, err := models.DecodePayload(action.Type, raw)
	if err != nil {
		return err
	}
	encoded, err := models.EncodePayload(payload)
	if err != nil {
		return err
	}
	action.Payload = encoded
	return nil
}

func setPayloadVersion(action *models.QueuedAction, version int64) error {
	fields, err := models.PayloadFields(action.Payload)
	if err != nil {
		return err
	}
	return rewritePayload(action, fields, version)
}

// serverVersion извлекает version из серверных данных; 0, если поля нет
func serverVersion(data map[string]any) (int64, error) {
	raw, ok := data["version"]
	if !ok || raw == nil {
		return 0, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) || v < 0 {
			return 0, fmt.Errorf("%w: %v", errBadServerVersion, v)
		}
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", errBadServerVersion, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %v", errBadServerVersion, raw)
}
