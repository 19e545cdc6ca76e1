package daemon

import (
	"encoding/json"
	"errors"
	"net/http"

	clientapi "github.com/iudanet/gophsync/internal/client/api"
	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/client/storage"
	clientsync "github.com/iudanet/gophsync/internal/client/sync"
	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/pkg/api"
)

// handleStatus обрабатывает GET /_sync/status
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := s.service.Counts(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.sendJSON(w, StatusResponse{
		Counts:       counts,
		Connectivity: s.network.State(),
		Progress:     s.service.Progress(),
		Draining:     s.service.IsDraining(),
	}, http.StatusOK)
}

// handleCheck обрабатывает POST /_sync/check: немедленная проверка доступности сервера
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	s.network.Check(r.Context())
	s.sendJSON(w, s.network.State(), http.StatusOK)
}

// handleListActions обрабатывает GET /_sync/actions?status=FAILED
func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	status := models.ActionStatus(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		s.sendError(w, "unknown status "+string(status), http.StatusBadRequest)
		return
	}

	actions, err := s.service.Actions(r.Context(), status)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if actions == nil {
		actions = []*models.QueuedAction{}
	}
	s.sendJSON(w, actions, http.StatusOK)
}

// handleGetAction обрабатывает GET /_sync/actions/{id}
func (s *Server) handleGetAction(w http.ResponseWriter, r *http.Request) {
	action, err := s.service.Action(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.sendJSON(w, action, http.StatusOK)
}

// handleClearActions обрабатывает DELETE /_sync/actions
func (s *Server) handleClearActions(w http.ResponseWriter, r *http.Request) {
	if err := s.service.ClearQueue(r.Context()); err != nil {
		s.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRetry обрабатывает POST /_sync/actions/{id}/retry
func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.service.Retry(r.Context(), id); err != nil {
		s.serviceError(w, r, err)
		return
	}

	action, err := s.service.Action(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.sendJSON(w, action, http.StatusOK)
}

// handleResolve обрабатывает POST /_sync/actions/{id}/resolve?strategy=MERGE.
// Пустая стратегия означает стратегию по умолчанию.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var strategy conflict.Strategy
	if name := r.URL.Query().Get("strategy"); name != "" {
		parsed, err := conflict.ParseStrategy(name)
		if err != nil {
			s.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		strategy = parsed
	}

	result, err := s.service.ResolveConflict(r.Context(), r.PathValue("id"), strategy)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.sendJSON(w, result, http.StatusOK)
}

// handleDrain обрабатывает POST /_sync/drain: синхронный проход, ответ содержит итоговый прогресс
func (s *Server) handleDrain(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Drain(r.Context()); err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.sendJSON(w, s.service.Progress(), http.StatusOK)
}

// handleGetCache обрабатывает GET /_sync/cache и GET /_sync/cache?key=/api/v1/...
func (s *Server) handleGetCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if key := r.URL.Query().Get("key"); key != "" {
		entry, err := s.cache.GetCache(ctx, key)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}
		s.sendJSON(w, entry, http.StatusOK)
		return
	}

	entries, err := s.cache.GetAllCache(ctx)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*models.CacheEntry{}
	}
	s.sendJSON(w, entries, http.StatusOK)
}

// handleClearCache обрабатывает DELETE /_sync/cache
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.cache.ClearCache(r.Context()); err != nil {
		s.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSweepCache обрабатывает POST /_sync/cache/sweep
func (s *Server) handleSweepCache(w http.ResponseWriter, r *http.Request) {
	n, err := s.cache.SweepExpired(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.sendJSON(w, SweepResponse{Removed: n}, http.StatusOK)
}

// serviceError переводит ошибку координатора или хранилища в HTTP статус
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrActionNotFound), errors.Is(err, storage.ErrCacheMiss):
		s.sendError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, clientsync.ErrNotRetryable), errors.Is(err, clientsync.ErrNotConflicted):
		s.sendError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, conflict.ErrUnknownStrategy), errors.Is(err, models.ErrInvalidPayload):
		s.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, clientsync.ErrStopped), clientapi.IsUnreachable(err):
		s.sendError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		s.logger.ErrorContext(r.Context(), "Control request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		s.sendError(w, "internal error", http.StatusInternalServerError)
	}
}

// sendJSON отправляет JSON ответ
func (s *Server) sendJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

// sendError отправляет JSON ответ с ошибкой
func (s *Server) sendError(w http.ResponseWriter, message string, status int) {
	s.sendJSON(w, api.ErrorResponse{Error: message}, status)
}
