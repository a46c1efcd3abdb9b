package v1

import (
	"strings"

	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/shenikar/incident_reporting/internal/projection"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель.
// Вызывается после валидации, поэтому Location и координаты не nil.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:        strings.TrimSpace(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Description: dto.Description,
		Latitude:    *dto.Location.Lat,
		Longitude:   *dto.Location.Lon,
	}
}

// ModelToCreateResponse преобразует созданный инцидент в ответ
func ModelToCreateResponse(model *models.Incident) *CreateIncidentResponse {
	return &CreateIncidentResponse{
		ID:        model.ID,
		Status:    string(model.Status),
		CreatedAt: projection.FormatTimestamp(model.CreatedAt),
	}
}
