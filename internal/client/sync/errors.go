package sync

import "errors"

var (
	// ErrStorageUnavailable означает, что действие не удалось сохранить и оно не поставлено в очередь
	ErrStorageUnavailable = errors.New("durable store unavailable")
	// ErrNotRetryable возвращается при попытке повторить нетерминальное или успешное действие
	ErrNotRetryable = errors.New("action is not in a retryable state")
	// ErrNotConflicted возвращается при разрешении действия, которое не находится в CONFLICT
	ErrNotConflicted = errors.New("action is not in conflict")
	// ErrAlreadyStarted возвращается при повторном Start
	ErrAlreadyStarted = errors.New("coordinator already started")
	// ErrStopped возвращается при запуске остановленного координатора
	ErrStopped = errors.New("coordinator stopped")

	errBadServerVersion = errors.New("invalid server version")
)
