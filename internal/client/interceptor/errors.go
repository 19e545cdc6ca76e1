package interceptor

import (
	"errors"
	"fmt"
)

// Причины отказа в офлайн-режиме
const (
	ReasonDataUnavailable = "data_unavailable"
	ReasonCannotQueue     = "cannot_queue"
)

// OfflineError ошибка офлайн-режима, отличная от обычных HTTP ошибок.
// StatusCode всегда 0: ответа от сервера не было.
type OfflineError struct {
	Reason     string `json:"reason"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	StatusCode int    `json:"status"`
}

func (e *OfflineError) Error() string {
	switch e.Reason {
	case ReasonDataUnavailable:
		return fmt.Sprintf("data unavailable offline: %s %s", e.Method, e.URL)
	case ReasonCannotQueue:
		return fmt.Sprintf("cannot perform this action offline: %s %s", e.Method, e.URL)
	}
	return fmt.Sprintf("offline: %s %s: %s", e.Method, e.URL, e.Reason)
}

// IsOffline reports whether err carries an *OfflineError.
func IsOffline(err error) bool {
	var offlineErr *OfflineError
	return errors.As(err, &offlineErr)
}
