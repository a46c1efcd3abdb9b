package v1

import "github.com/google/uuid"

// LocationRequest - координаты инцидента
// @Description Координаты инцидента
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string           `json:"type" validate:"required"`
	Severity    string           `json:"severity" validate:"required,oneof=low medium high critical"`
	Description string           `json:"description,omitempty"`
	Location    *LocationRequest `json:"location" validate:"required"`
}

// CreateIncidentResponse DTO ответа на создание инцидента
// @Description DTO ответа на создание инцидента
type CreateIncidentResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SeedDemoRequest DTO для демо-наполнения
// @Description DTO для демо-наполнения
type SeedDemoRequest struct {
	Count int `json:"count"`
}

// SeedDemoResponse DTO ответа демо-наполнения
// @Description DTO ответа демо-наполнения
type SeedDemoResponse struct {
	Added int `json:"added"`
}

// ErrorResponse - тело ошибки в формате problem details
// @Description Тело ошибки в формате problem details
type ErrorResponse struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Code   string `json:"code"`
}
