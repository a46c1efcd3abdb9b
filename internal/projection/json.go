// Package projection превращает выборку инцидентов во внешние форматы: JSON, CSV и GeoJSON.
package projection

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting/internal/models"
)

// Item - JSON-представление инцидента в списке.
// Coords упорядочены как [долгота, широта].
type Item struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Severity  string     `json:"severity"`
	Status    string     `json:"status"`
	Coords    [2]float64 `json:"coords"`
	CreatedAt string     `json:"createdAt"`
}

// Detail - представление одного инцидента
type Detail struct {
	Item
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updatedAt"`
}

// Page - конверт ответа списка
type Page struct {
	Items        []Item     `json:"items"`
	NextCursor   *string    `json:"nextCursor"`
	NextCursorID *uuid.UUID `json:"nextCursorId"`
}

// FormatTimestamp форматирует время в ISO-8601 UTC, сохраняя дробную часть секунды,
// чтобы курсор точно совпадал с хранимым значением.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ToItem(inc *models.Incident) Item {
	return Item{
		ID:        inc.ID,
		Type:      inc.Type,
		Severity:  string(inc.Severity),
		Status:    string(inc.Status),
		Coords:    [2]float64{inc.Longitude, inc.Latitude},
		CreatedAt: FormatTimestamp(inc.CreatedAt),
	}
}

func ToDetail(inc *models.Incident) Detail {
	return Detail{
		Item:        ToItem(inc),
		Description: inc.Description,
		UpdatedAt:   FormatTimestamp(inc.UpdatedAt),
	}
}

// ToPage строит конверт; Items всегда не nil, чтобы пустой список сериализовался как [].
func ToPage(page *models.IncidentPage) Page {
	out := Page{Items: make([]Item, len(page.Items))}
	for i, inc := range page.Items {
		out.Items[i] = ToItem(inc)
	}
	if page.NextCursor != nil {
		cursor := FormatTimestamp(*page.NextCursor)
		out.NextCursor = &cursor
	}
	out.NextCursorID = page.NextCursorID
	return out
}
