// Package events публикует события жизненного цикла инцидентов во внешние системы.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting/internal/models"
)

//go:generate mockgen -source=event.go -destination=mocks/mock_publisher.go -package=mocks

// Type - тип события
type Type string

const (
	TypeIncidentCreated       Type = "incident.created"
	TypeIncidentStatusChanged Type = "incident.status_changed"
)

// IncidentEvent - полезная нагрузка события
type IncidentEvent struct {
	ID             uuid.UUID        `json:"id"`
	Type           Type             `json:"type"`
	IncidentID     uuid.UUID        `json:"incident_id"`
	Incident       *models.Incident `json:"incident"`
	PreviousStatus models.Status    `json:"previous_status,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

// NewIncidentEvent создает событие с новым id
func NewIncidentEvent(t Type, incident *models.Incident, at time.Time) IncidentEvent {
	return IncidentEvent{
		ID:         uuid.New(),
		Type:       t,
		IncidentID: incident.ID,
		Incident:   incident,
		Timestamp:  at.UTC(),
	}
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// NopPublisher отбрасывает события, используется при EVENTS_BACKEND=none
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, IncidentEvent) error { return nil }
