package models

import (
	"time"

	"github.com/google/uuid"
)

// BBox - прямоугольник (minLon, minLat, maxLon, maxLat), границы включаются
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Contains сообщает, попадает ли точка в прямоугольник
func (b BBox) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// IncidentFilter - типизированный набор фильтров для выборки инцидентов.
// Пустые поля означают "фильтр не применяется".
type IncidentFilter struct {
	Statuses      []Status
	Severities    []Severity
	CreatedBefore *time.Time // строго меньше
	BeforeID      *uuid.UUID // только вместе с CreatedBefore
	CreatedAfter  *time.Time // больше или равно
	BBox          *BBox
	Limit         int
}

// Matches проверяет инцидент против всех предикатов фильтра, кроме лимита.
// Семантика совпадает с WHERE-частью запроса в repository.buildListQuery.
func (f IncidentFilter) Matches(inc *Incident) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, inc.Status) {
		return false
	}
	if len(f.Severities) > 0 && !containsSeverity(f.Severities, inc.Severity) {
		return false
	}
	if f.CreatedBefore != nil {
		if f.BeforeID != nil {
			if inc.CreatedAt.After(*f.CreatedBefore) {
				return false
			}
			if inc.CreatedAt.Equal(*f.CreatedBefore) && inc.ID.String() >= f.BeforeID.String() {
				return false
			}
		} else if !inc.CreatedAt.Before(*f.CreatedBefore) {
			return false
		}
	}
	if f.CreatedAfter != nil && inc.CreatedAt.Before(*f.CreatedAfter) {
		return false
	}
	if f.BBox != nil && !f.BBox.Contains(inc.Longitude, inc.Latitude) {
		return false
	}
	return true
}

func containsStatus(set []Status, s Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsSeverity(set []Severity, s Severity) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
