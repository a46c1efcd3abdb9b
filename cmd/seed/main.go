// Команда seed наполняет базу тремя образцовыми инцидентами для локальной разработки.
package main

import (
	"context"

	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/shenikar/incident_reporting/internal/repository"
	"github.com/shenikar/incident_reporting/pkg/logger"
	"github.com/shenikar/incident_reporting/pkg/postgres"
	"github.com/sirupsen/logrus"
)

func sampleIncidents() []*models.Incident {
	return []*models.Incident{
		{Type: "fire", Severity: models.SeverityHigh, Status: models.StatusOpen, Latitude: 37.7749, Longitude: -122.4194},
		{Type: "flood", Severity: models.SeverityMedium, Status: models.StatusTriaged, Latitude: 34.0522, Longitude: -118.2437},
		{Type: "earthquake", Severity: models.SeverityCritical, Status: models.StatusOpen, Latitude: 35.6895, Longitude: 139.6917},
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	// Кэш не нужен: seed только вставляет строки
	repo := repository.NewIncidentRepository(dbpool, nil, 0)

	incidents := sampleIncidents()
	if err := repo.CreateBatch(ctx, incidents); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.WithField("count", len(incidents)).Info("Seeded incidents")
}
