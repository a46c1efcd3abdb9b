package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/filter"
	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/shenikar/incident_reporting/internal/projection"
	"github.com/shenikar/incident_reporting/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultDemoSeedCount = 10
	readinessTimeout     = 2 * time.Second
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	clock           clockwork.Clock
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		clock:           clock,
	}
}

// @Summary List incidents
// @Description Filtered, newest-first page of incidents with a keyset cursor.
// @Tags Incidents
// @Produce json
// @Param status query []string false "Status filter (repeatable)" collectionFormat(multi)
// @Param severity query []string false "Severity filter (repeatable)" collectionFormat(multi)
// @Param created_before query string false "Exclusive upper bound on createdAt (cursor)"
// @Param cursor_id query string false "Id tie-breaker for created_before"
// @Param created_after query string false "Inclusive lower bound on createdAt"
// @Param since query string false "Relative window: 1h, 24h or 7d"
// @Param bbox query string false "minLon,minLat,maxLon,maxLat"
// @Param limit query int false "Page size, 1..200" default(50)
// @Success 200 {object} projection.Page
// @Failure 500 {object} ErrorResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	f := filter.Parse(c.Request.URL.Query(), filter.ListLimits, h.clock.Now())

	page, err := h.incidentService.ListIncidents(c.Request.Context(), f)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}

	c.JSON(http.StatusOK, projection.ToPage(page))
}

// @Summary Export incidents as CSV
// @Description Same filters as the list endpoint, returned as a CSV attachment.
// @Tags Incidents
// @Produce text/csv
// @Param status query []string false "Status filter (repeatable)" collectionFormat(multi)
// @Param severity query []string false "Severity filter (repeatable)" collectionFormat(multi)
// @Param created_before query string false "Exclusive upper bound on createdAt"
// @Param created_after query string false "Inclusive lower bound on createdAt"
// @Param since query string false "Relative window: 1h, 24h or 7d"
// @Param bbox query string false "minLon,minLat,maxLon,maxLat"
// @Param limit query int false "Row limit, 1..1000" default(500)
// @Success 200 {string} string "CSV body"
// @Failure 500 {object} ErrorResponse
// @Router /incidents/export [get]
func (h *Handler) exportIncidentsCSV(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidentsCSV")

	incidents, ok := h.exportIncidents(c, log)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := projection.WriteCSV(&buf, incidents); err != nil {
		log.WithError(err).Error("Failed to render CSV")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+projection.CSVFilename+`"`)
	c.Data(http.StatusOK, projection.CSVContentType, buf.Bytes())
}

// @Summary Export incidents as GeoJSON
// @Description Same filters as the CSV export, returned as a GeoJSON FeatureCollection.
// @Tags Incidents
// @Produce application/geo+json
// @Param status query []string false "Status filter (repeatable)" collectionFormat(multi)
// @Param severity query []string false "Severity filter (repeatable)" collectionFormat(multi)
// @Param bbox query string false "minLon,minLat,maxLon,maxLat"
// @Param since query string false "Relative window: 1h, 24h or 7d"
// @Param limit query int false "Feature limit, 1..1000" default(500)
// @Success 200 {object} projection.FeatureCollection
// @Failure 500 {object} ErrorResponse
// @Router /incidents/export.geojson [get]
func (h *Handler) exportIncidentsGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidentsGeoJSON")

	incidents, ok := h.exportIncidents(c, log)
	if !ok {
		return
	}

	body, err := json.Marshal(projection.ToFeatureCollection(incidents))
	if err != nil {
		log.WithError(err).Error("Failed to render GeoJSON")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+projection.GeoJSONFilename+`"`)
	c.Data(http.StatusOK, projection.GeoJSONContentType, body)
}

func (h *Handler) exportIncidents(c *gin.Context, log *logrus.Entry) ([]*models.Incident, bool) {
	f := filter.Parse(c.Request.URL.Query(), filter.ExportLimits, h.clock.Now())

	incidents, err := h.incidentService.ExportIncidents(c.Request.Context(), f)
	if err != nil {
		log.WithError(err).Error("Failed to export incidents from service")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return nil, false
	}
	return incidents, true
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} projection.Detail
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithProblem(c, http.StatusBadRequest, CodeInvalidID, detailInvalidID)
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrIncidentNotFound) {
			log.WithError(err).Debug("Incident not found")
			abortWithProblem(c, http.StatusNotFound, CodeNotFound, detailNotFound)
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}
	c.JSON(http.StatusOK, projection.ToDetail(incident))
}

// @Summary Report a new incident
// @Description Create an incident. Status is always "open".
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} CreateIncidentResponse
// @Failure 400 {object} ErrorResponse "Malformed body or missing required fields"
// @Failure 500 {object} ErrorResponse
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		abortWithProblem(c, http.StatusBadRequest, CodeInvalidJSON, detailMalformedReq)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		abortWithProblem(c, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrInvalidIncident) {
			abortWithProblem(c, http.StatusBadRequest, CodeBadRequest, "Missing required fields")
			return
		}
		log.WithError(err).Error("Failed to create incident in service")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}
	c.JSON(http.StatusCreated, ModelToCreateResponse(model))
}

// @Summary Update incident status
// @Description Move an incident between open, triaged and closed.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} projection.Detail
// @Failure 400 {object} ErrorResponse "Invalid incident ID, body or status"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithProblem(c, http.StatusBadRequest, CodeInvalidID, detailInvalidID)
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		abortWithProblem(c, http.StatusBadRequest, CodeInvalidJSON, detailMalformedReq)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		abortWithProblem(c, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	incident, err := h.incidentService.UpdateIncidentStatus(c.Request.Context(), id, models.Status(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			abortWithProblem(c, http.StatusBadRequest, CodeInvalidStatus, "status must be one of open, triaged, closed")
		case errors.Is(err, service.ErrIncidentNotFound):
			abortWithProblem(c, http.StatusNotFound, CodeNotFound, detailNotFound)
		default:
			log.WithError(err).Error("Failed to update incident status in service")
			abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		}
		return
	}
	c.JSON(http.StatusOK, projection.ToDetail(incident))
}

// @Summary Seed demo incidents
// @Description Insert random incidents near the demo cities. Available only when DEMO_SEED_ENABLED=true.
// @Tags Demo
// @Accept json
// @Produce json
// @Param request body SeedDemoRequest false "Number of incidents, 1..100" default(10)
// @Success 201 {object} SeedDemoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse "Demo seeding disabled"
// @Router /incidents/_bulk_demo [post]
func (h *Handler) seedDemoIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "seedDemoIncidents")

	var input SeedDemoRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			abortWithProblem(c, http.StatusBadRequest, CodeInvalidJSON, detailMalformedReq)
			return
		}
	}
	if input.Count == 0 {
		input.Count = defaultDemoSeedCount
	}

	added, err := h.incidentService.SeedDemoIncidents(c.Request.Context(), input.Count)
	if err != nil {
		if errors.Is(err, service.ErrDemoSeedDisabled) {
			abortWithProblem(c, http.StatusNotImplemented, CodeDemoDisabled, "Seeding is only available in demo mode")
			return
		}
		log.WithError(err).Error("Failed to seed demo incidents")
		abortWithProblem(c, http.StatusInternalServerError, CodeInternal, detailInternal)
		return
	}
	c.JSON(http.StatusCreated, SeedDemoResponse{Added: added})
}

// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /healthz [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness probe
// @Description Reports whether PostgreSQL is reachable.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} ErrorResponse
// @Router /readyz [get]
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.incidentService.CheckReadiness(ctx); err != nil {
		h.logger.WithError(err).Warn("Readiness check failed")
		abortWithProblem(c, http.StatusServiceUnavailable, CodeNotReady, "database is not reachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}
