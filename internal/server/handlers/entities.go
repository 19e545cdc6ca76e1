package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/storage"
	"github.com/iudanet/gophsync/pkg/api"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

// DefaultDossierStatus статус нового досье, если клиент его не передал
const DefaultDossierStatus = "open"

var errMissingField = errors.New("missing required field")

// collection описывает ресурс /api/v1/{name}
type collection struct {
	// validate проверяет поля при создании и полной замене
	validate func(data map[string]any) error
	kind     string
	// replaceable разрешает PUT /api/v1/{name}/{id}
	replaceable bool
}

var collections = map[string]collection{
	"messages": {
		kind:     models.EntityMessage,
		validate: payloadValidator(models.ActionCreateMessage),
	},
	"dossiers": {
		kind:        models.EntityDossier,
		validate:    validateDossier,
		replaceable: true,
	},
	"appointments": {
		kind:        models.EntityAppointment,
		validate:    payloadValidator(models.ActionCreateAppointment),
		replaceable: true,
	},
	"notes": {
		kind:     models.EntityNote,
		validate: payloadValidator(models.ActionCreateNote),
	},
}

// payloadValidator проверяет тело по схеме payload соответствующего действия
func payloadValidator(t models.ActionType) func(map[string]any) error {
	return func(data map[string]any) error {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		_, err = models.DecodePayload(t, raw)
		return err
	}
}

func validateDossier(data map[string]any) error {
	name, _ := data["name"].(string)
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", errMissingField)
	}
	if _, ok := data["status"]; !ok {
		data["status"] = DefaultDossierStatus
	}
	return nil
}

// EntityHandler обслуживает REST ресурсы эталонного бэкенда
type EntityHandler struct {
	logger  *slog.Logger
	storage storage.EntityStorage
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(logger *slog.Logger, storage storage.EntityStorage) *EntityHandler {
	return &EntityHandler{
		logger:  logger,
		storage: storage,
	}
}

// Register добавляет маршруты ресурсов в mux
func (h *EntityHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/{collection}", h.Create)
	mux.HandleFunc("GET /api/v1/{collection}", h.List)
	mux.HandleFunc("GET /api/v1/{collection}/{id}", h.Get)
	mux.HandleFunc("PUT /api/v1/{collection}/{id}", h.Replace)
	mux.HandleFunc("PATCH /api/v1/dossiers/{id}/status", h.UpdateStatus)
}

// Create обрабатывает POST /api/v1/{collection}.
// Повтор с тем же Idempotency-Key возвращает ранее созданную сущность с кодом 200.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	data, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	data = models.StripSystemFields(data)
	if err := coll.validate(data); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	key := r.Header.Get(api.IdempotencyHeader)
	entity, created, err := h.storage.CreateEntity(r.Context(), coll.kind, data, key)
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	status := http.StatusCreated
	if !created {
		h.logger.Info("Idempotent replay", "kind", coll.kind, "id", entity.ID, "idempotency_key", key)
		status = http.StatusOK
	} else {
		h.logger.Info("Entity created", "kind", coll.kind, "id", entity.ID)
	}

	sendJSON(w, h.logger, entity.Fields(), status)
}

// List обрабатывает GET /api/v1/{collection}?field=value
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	filter := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	entities, err := h.storage.ListEntities(r.Context(), coll.kind, filter)
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	out := make([]map[string]any, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Fields())
	}
	sendJSON(w, h.logger, out, http.StatusOK)
}

// Get обрабатывает GET /api/v1/{collection}/{id}
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}

	entity, err := h.storage.GetEntity(r.Context(), coll.kind, r.PathValue("id"))
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	sendJSON(w, h.logger, entity.Fields(), http.StatusOK)
}

// Replace обрабатывает PUT /api/v1/{collection}/{id}: полная замена полей.
// Если тело содержит version и она отличается от текущей, ответ 409.
func (h *EntityHandler) Replace(w http.ResponseWriter, r *http.Request) {
	coll, ok := h.collection(w, r)
	if !ok {
		return
	}
	if !coll.replaceable {
		w.Header().Set("Allow", "GET, POST")
		sendError(w, h.logger, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	expected, err := expectedVersion(data)
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}
	data = models.StripSystemFields(data)
	if err := coll.validate(data); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	h.update(w, r, coll.kind, data, expected, true)
}

// UpdateStatus обрабатывает PATCH /api/v1/dossiers/{id}/status
func (h *EntityHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req api.StatusUpdate
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		sendError(w, h.logger, fmt.Sprintf("%v: status", errMissingField), http.StatusBadRequest)
		return
	}

	h.update(w, r, models.EntityDossier, map[string]any{"status": req.Status}, req.Version, false)
}

func (h *EntityHandler) update(w http.ResponseWriter, r *http.Request, kind string, data map[string]any, expected *int64, replace bool) {
	id := r.PathValue("id")
	entity, err := h.storage.UpdateEntity(r.Context(), kind, id, data, expected, replace)
	if errors.Is(err, storage.ErrVersionMismatch) && entity != nil {
		h.logger.Info("Version conflict",
			"kind", kind,
			"id", id,
			"current", entity.Version)
		sendJSON(w, h.logger, api.ErrorResponse{
			Error:   "version conflict",
			Message: fmt.Sprintf("%s %s was modified, current version is %d", kind, id, entity.Version),
			Version: entity.Version,
		}, http.StatusConflict)
		return
	}
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.Info("Entity updated", "kind", kind, "id", id, "version", entity.Version)
	sendJSON(w, h.logger, entity.Fields(), http.StatusOK)
}

func (h *EntityHandler) collection(w http.ResponseWriter, r *http.Request) (collection, bool) {
	coll, ok := collections[r.PathValue("collection")]
	if !ok {
		sendError(w, h.logger, "unknown collection", http.StatusNotFound)
	}
	return coll, ok
}

func (h *EntityHandler) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || data == nil {
		h.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

// expectedVersion извлекает необязательное поле version из тела
func expectedVersion(data map[string]any) (*int64, error) {
	raw, ok := data["version"]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int64(f)) || f < 1 {
		return nil, fmt.Errorf("invalid version %v", raw)
	}
	v := int64(f)
	return &v, nil
}

func (h *EntityHandler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrEntityNotFound):
		sendError(w, h.logger, "not found", http.StatusNotFound)
	case errors.Is(err, context.Canceled):
		h.logger.Warn("Request cancelled", "path", r.URL.Path)
	default:
		h.logger.Error("Storage request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
	}
}
