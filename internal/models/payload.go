package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPayload is returned when a payload does not match its action type.
var ErrInvalidPayload = errors.New("invalid payload")

// Payload is the tagged union of queued action payloads.
type Payload interface {
	ActionType() ActionType
	Validate() error
}

// CreateMessagePayload body of POST /api/v1/messages
type CreateMessagePayload struct {
	DossierID string `json:"dossierId,omitempty"`
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (p *CreateMessagePayload) ActionType() ActionType { return ActionCreateMessage }

func (p *CreateMessagePayload) Validate() error {
	if p.Text == "" {
		return fmt.Errorf("%w: message text is required", ErrInvalidPayload)
	}
	return nil
}

// UpdateStatusPayload body of PATCH /api/v1/dossiers/{id}/status
type UpdateStatusPayload struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Version *int64 `json:"version,omitempty"`
}

func (p *UpdateStatusPayload) ActionType() ActionType { return ActionUpdateStatus }

func (p *UpdateStatusPayload) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: dossier id is required", ErrInvalidPayload)
	}
	if p.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidPayload)
	}
	return nil
}

// AppointmentFields общие поля встречи
type AppointmentFields struct {
	DossierID string   `json:"dossierId,omitempty"`
	Title     string   `json:"title,omitempty"`
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
	Location  string   `json:"location,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
}

// CreateAppointmentPayload body of POST /api/v1/appointments
type CreateAppointmentPayload struct {
	AppointmentFields
}

func (p *CreateAppointmentPayload) ActionType() ActionType { return ActionCreateAppointment }

func (p *CreateAppointmentPayload) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: appointment title is required", ErrInvalidPayload)
	}
	return nil
}

// UpdateAppointmentPayload body of PUT /api/v1/appointments/{id}
type UpdateAppointmentPayload struct {
	ID      string `json:"id"`
	Version *int64 `json:"version,omitempty"`
	AppointmentFields
}

func (p *UpdateAppointmentPayload) ActionType() ActionType { return ActionUpdateAppointment }

func (p *UpdateAppointmentPayload) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidPayload)
	}
	return nil
}

// CreateNotePayload body of POST /api/v1/notes
type CreateNotePayload struct {
	DossierID string   `json:"dossierId,omitempty"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags,omitempty"`
}

func (p *CreateNotePayload) ActionType() ActionType { return ActionCreateNote }

func (p *CreateNotePayload) Validate() error {
	if p.Content == "" {
		return fmt.Errorf("%w: note content is required", ErrInvalidPayload)
	}
	return nil
}

// NewPayload returns an empty payload for the given action type.
func NewPayload(t ActionType) (Payload, error) {
	switch t {
	case ActionCreateMessage:
		return &CreateMessagePayload{}, nil
	case ActionUpdateStatus:
		return &UpdateStatusPayload{}, nil
	case ActionCreateAppointment:
		return &CreateAppointmentPayload{}, nil
	case ActionUpdateAppointment:
		return &UpdateAppointmentPayload{}, nil
	case ActionCreateNote:
		return &CreateNotePayload{}, nil
	}
	return nil, fmt.Errorf("%w: unknown action type %q", ErrInvalidPayload, t)
}

// DecodePayload unmarshals raw into the payload type of t and validates it.
func DecodePayload(t ActionType, raw json.RawMessage) (Payload, error) {
	p, err := NewPayload(t)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodePayload validates and marshals a payload.
func EncodePayload(p Payload) (json.RawMessage, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil payload", ErrInvalidPayload)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return data, nil
}

// PayloadFields decodes a raw payload into a generic field map.
// Used by field-level conflict detection.
func PayloadFields(raw json.RawMessage) (map[string]any, error) {
	fields := make(map[string]any)
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode payload fields: %w", err)
	}
	return fields, nil
}
