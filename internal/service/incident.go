package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/events"
	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/shenikar/incident_reporting/internal/observability"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// maxDemoSeed - верхняя граница для одного вызова SeedDemoIncidents
const maxDemoSeed = 100

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	CreateBatch(ctx context.Context, incidents []*models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	Ping(ctx context.Context) error

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentPage, error)
	ExportIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	SeedDemoIncidents(ctx context.Context, count int) (int, error)
	CheckReadiness(ctx context.Context) error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher events.Publisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

func NewIncidentService(
	repo IncidentRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher events.Publisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
	}
}

// CreateIncident создает инцидент, статус всегда open
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"type":     incident.Type,
		"severity": incident.Severity,
	})
	log.Info("Attempting to create a new incident")

	if incident.Type == "" || !incident.Severity.IsValid() {
		log.Warn("Rejected incident with missing type or invalid severity")
		return fmt.Errorf("service: type and a known severity are required: %w", ErrInvalidIncident)
	}

	incident.Status = models.StatusOpen
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	s.metrics.IncidentsCreated.Inc()

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	s.publish(ctx, log, events.NewIncidentEvent(events.TypeIncidentCreated, incident, s.clock.Now()))
	return nil
}

// GetIncident получает инцидент по ID: сначала кэш, затем бд
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	switch {
	case err != nil:
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		log.WithError(err).Warn("Cache lookup failed, falling back to database")
	case cached != nil:
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// UpdateIncidentStatus меняет статус инцидента
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncidentStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if !status.IsValid() {
		log.Warn("Rejected unknown status")
		return nil, fmt.Errorf("service: status %q: %w", status, ErrInvalidStatus)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for update: %w", id, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}
	s.metrics.StatusChanges.WithLabelValues(string(status)).Inc()

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	event := events.NewIncidentEvent(events.TypeIncidentStatusChanged, updated, s.clock.Now())
	event.PreviousStatus = existing.Status
	s.publish(ctx, log, event)

	log.Info("Incident status updated successfully")
	return updated, nil
}

// ListIncidents возвращает страницу инцидентов и курсор на следующую
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"limit":   filter.Limit,
	})
	log.Debug("Listing incidents")

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	s.metrics.QueryResultSize.WithLabelValues("list").Observe(float64(len(incidents)))

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return newPage(incidents), nil
}

// ExportIncidents возвращает инциденты для выгрузки
func (s *incidentService) ExportIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ExportIncidents",
		"limit":   filter.Limit,
	})

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to export incidents from repository")
		return nil, fmt.Errorf("service: could not export incidents: %w", err)
	}
	s.metrics.QueryResultSize.WithLabelValues("export").Observe(float64(len(incidents)))

	log.WithField("count", len(incidents)).Info("Incidents exported")
	return incidents, nil
}

// SeedDemoIncidents добавляет count случайных инцидентов рядом с демо-городами
func (s *incidentService) SeedDemoIncidents(ctx context.Context, count int) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SeedDemoIncidents",
	})

	if !s.cfg.DemoSeedEnabled {
		return 0, ErrDemoSeedDisabled
	}
	if count < 1 {
		count = 1
	}
	if count > maxDemoSeed {
		count = maxDemoSeed
	}

	incidents := demoIncidents(count, s.clock.Now())
	if err := s.repo.CreateBatch(ctx, incidents); err != nil {
		log.WithError(err).Error("Failed to seed demo incidents")
		return 0, fmt.Errorf("service: could not seed demo incidents: %w", err)
	}
	s.metrics.IncidentsCreated.Add(float64(len(incidents)))

	log.WithField("count", len(incidents)).Info("Demo incidents seeded")
	return len(incidents), nil
}

// CheckReadiness проверяет, что хранилище отвечает
func (s *incidentService) CheckReadiness(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// publish отправляет событие; ошибка публикации не отменяет уже выполненную операцию
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, event events.IncidentEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.EventPublishFails.Inc()
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish incident event")
	}
}

// newPage строит страницу: курсор - created_at и id последнего (самого старого) элемента
func newPage(incidents []*models.Incident) *models.IncidentPage {
	page := &models.IncidentPage{Items: incidents}
	if len(incidents) == 0 {
		return page
	}
	last := incidents[len(incidents)-1]
	cursor := last.CreatedAt
	cursorID := last.ID
	page.NextCursor = &cursor
	page.NextCursorID = &cursorID
	return page
}

type demoLocation struct {
	lat, lon float64
}

// demoLocations - точки из исходного набора демо-данных
var demoLocations = []demoLocation{
	{lat: 37.7749, lon: -122.4194},
	{lat: 34.0522, lon: -118.2437},
	{lat: 35.6895, lon: 139.6917},
}

var demoTypes = []string{"fire", "flood", "earthquake", "landslide", "medical", "traffic"}

// demoIncidents генерирует инциденты с разбросом ~0.1° вокруг демо-точек и
// временем создания в пределах последних 24 часов
func demoIncidents(count int, now time.Time) []*models.Incident {
	incidents := make([]*models.Incident, count)
	for i := range incidents {
		loc := demoLocations[rand.IntN(len(demoLocations))]
		createdAt := now.Add(-time.Duration(rand.Int64N(int64(24 * time.Hour)))).UTC()
		incidents[i] = &models.Incident{
			Type:      demoTypes[rand.IntN(len(demoTypes))],
			Severity:  models.Severities[rand.IntN(len(models.Severities))],
			Status:    models.Statuses[rand.IntN(len(models.Statuses))],
			Latitude:  loc.lat + (rand.Float64()-0.5)*0.2,
			Longitude: loc.lon + (rand.Float64()-0.5)*0.2,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
	}
	return incidents
}
