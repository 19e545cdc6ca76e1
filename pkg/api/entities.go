package api

import "time"

// Пути ресурсов, общие для клиента и сервера
const (
	PathMessages     = "/api/v1/messages"
	PathDossiers     = "/api/v1/dossiers"
	PathAppointments = "/api/v1/appointments"
	PathNotes        = "/api/v1/notes"
	PathHealth       = "/health"
)

// IdempotencyHeader carries the queued action id so that a replayed creation
// returns the entity created by the first attempt.
const IdempotencyHeader = "Idempotency-Key"

// CreatedResponse ответ на создание или изменение сущности
type CreatedResponse struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// Dossier досье
type Dossier struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Version   int64     `json:"version"`
}

// StatusUpdate тело PATCH /api/v1/dossiers/{id}/status
type StatusUpdate struct {
	Version *int64 `json:"version,omitempty"`
	Status  string `json:"status"`
}

// Message сообщение в досье
type Message struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	DossierID string    `json:"dossierId,omitempty"`
	Text      string    `json:"text"`
	Channel   string    `json:"channel,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Version   int64     `json:"version"`
}

// Appointment встреча
type Appointment struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	DossierID string    `json:"dossierId,omitempty"`
	Title     string    `json:"title"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Attendees []string  `json:"attendees,omitempty"`
	Version   int64     `json:"version"`
}

// AppointmentUpdate тело PUT /api/v1/appointments/{id}
type AppointmentUpdate struct {
	Version   *int64   `json:"version,omitempty"`
	DossierID string   `json:"dossierId,omitempty"`
	Title     string   `json:"title,omitempty"`
	StartTime string   `json:"startTime,omitempty"`
	EndTime   string   `json:"endTime,omitempty"`
	Location  string   `json:"location,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
}

// Note заметка
type Note struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	DossierID string    `json:"dossierId,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	Version   int64     `json:"version"`
}
