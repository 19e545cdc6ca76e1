package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind класс ошибки удаленного вызова
type ErrorKind string

const (
	// KindUnreachable сеть недоступна, таймаут или временная ошибка сервера; повторяется
	KindUnreachable ErrorKind = "unreachable"
	// KindConflict сервер сообщил о расхождении версий (409)
	KindConflict ErrorKind = "conflict"
	// KindRejected сервер отклонил запрос; повтор с тем же телом бессмысленен
	KindRejected ErrorKind = "rejected"
)

// ErrNoRoute is returned for action types without a remote mapping.
var ErrNoRoute = errors.New("no remote route for action type")

// Error ошибка удаленного вызова с классификацией
type Error struct {
	Err        error
	Kind       ErrorKind
	Message    string
	StatusCode int   // 0 для транспортных ошибок
	Version    int64 // текущая версия сущности, если сервер ее сообщил
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-2xx status code to an error kind.
func classifyStatus(code int) ErrorKind {
	switch {
	case code == http.StatusConflict:
		return KindConflict
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests, code >= 500:
		return KindUnreachable
	}
	return KindRejected
}

// KindOf returns the kind of a remote error, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsUnreachable(err error) bool { return KindOf(err) == KindUnreachable }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }

func IsRejected(err error) bool { return KindOf(err) == KindRejected }
