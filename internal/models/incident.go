package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - степень серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities перечисляет допустимые значения в порядке возрастания
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Status - стадия обработки инцидента
type Status string

const (
	StatusOpen    Status = "open"
	StatusTriaged Status = "triaged"
	StatusClosed  Status = "closed"
)

var Statuses = []Status{StatusOpen, StatusTriaged, StatusClosed}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusTriaged, StatusClosed:
		return true
	}
	return false
}

type Incident struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	Description string    `json:"description"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncidentPage - одна страница результатов списка с курсором на следующую
type IncidentPage struct {
	Items []*Incident
	// NextCursor - created_at последнего элемента, nil для пустой страницы
	NextCursor *time.Time
	// NextCursorID - id последнего элемента, разрешает совпадения created_at на границе страницы
	NextCursorID *uuid.UUID
}
