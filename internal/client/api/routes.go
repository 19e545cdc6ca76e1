package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/pkg/api"
)

// Route HTTP отображение типа действия
type Route struct {
	Method    string
	Path      string // шаблон, {id} берется из payload
	FetchPath string // путь текущей версии сущности, пусто для создания
}

var routes = map[models.ActionType]Route{
	models.ActionCreateMessage: {
		Method: "POST",
		Path:   api.PathMessages,
	},
	models.ActionUpdateStatus: {
		Method:    "PATCH",
		Path:      api.PathDossiers + "/{id}/status",
		FetchPath: api.PathDossiers + "/{id}",
	},
	models.ActionCreateAppointment: {
		Method: "POST",
		Path:   api.PathAppointments,
	},
	models.ActionUpdateAppointment: {
		Method:    "PUT",
		Path:      api.PathAppointments + "/{id}",
		FetchPath: api.PathAppointments + "/{id}",
	},
	models.ActionCreateNote: {
		Method: "POST",
		Path:   api.PathNotes,
	},
}

// RouteFor returns the remote route of an action type.
func RouteFor(t models.ActionType) (Route, error) {
	r, ok := routes[t]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNoRoute, t)
	}
	return r, nil
}

// expandPath подставляет id сущности из payload в шаблон пути
func expandPath(template string, p models.Payload) (string, error) {
	if !strings.Contains(template, "{id}") {
		return template, nil
	}
	id := entityID(p)
	if id == "" {
		return "", fmt.Errorf("%w: entity id is required for %s", models.ErrInvalidPayload, p.ActionType())
	}
	return strings.ReplaceAll(template, "{id}", url.PathEscape(id)), nil
}

func entityID(p models.Payload) string {
	switch v := p.(type) {
	case *models.UpdateStatusPayload:
		return v.ID
	case *models.UpdateAppointmentPayload:
		return v.ID
	}
	return ""
}
