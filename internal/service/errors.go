package service

import "errors"

var (
	// ErrIncidentNotFound - инцидента с таким id нет
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrInvalidStatus - статус вне набора open/triaged/closed
	ErrInvalidStatus = errors.New("invalid incident status")
	// ErrInvalidIncident - не заполнены обязательные поля или недопустимая severity
	ErrInvalidIncident = errors.New("invalid incident")
	// ErrDemoSeedDisabled - демо-наполнение выключено конфигурацией
	ErrDemoSeedDisabled = errors.New("demo seeding is disabled")
)
