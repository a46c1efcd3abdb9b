package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/events"
	v1 "github.com/shenikar/incident_reporting/internal/handler/http/v1"
	"github.com/shenikar/incident_reporting/internal/observability"
	"github.com/shenikar/incident_reporting/internal/repository"
	"github.com/shenikar/incident_reporting/internal/service"
	"github.com/shenikar/incident_reporting/internal/webhook"
	"github.com/shenikar/incident_reporting/pkg/logger"
	"github.com/shenikar/incident_reporting/pkg/postgres"
	redisclient "github.com/shenikar/incident_reporting/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_reporting/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Reporting API
// @version 1.0
// @description Incident reporting service: create, triage and query incidents with keyset pagination and CSV export.
// @host localhost:4000
// @BasePath /api/v1

// newPublisher выбирает бэкенд событий по EVENTS_BACKEND.
// Возвращаемая функция закрывает ресурсы издателя.
func newPublisher(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (events.Publisher, func()) {
	switch cfg.EventsBackend {
	case config.EventsBackendKafka:
		p := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.WithField("topic", cfg.KafkaTopic).Info("Publishing incident events to Kafka")
		return p, func() {
			if err := p.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Kafka writer")
			}
		}
	case config.EventsBackendNone:
		log.Info("Incident events are disabled")
		return events.NopPublisher{}, func() {}
	default:
		log.WithField("queue", events.QueueKey).Info("Publishing incident events to Redis")
		return events.NewRedisPublisher(redisClient), func() {}
	}
}

func newRouter(cfg *config.Config, log *logrus.Logger, handler *v1.Handler, limiter *v1.RateLimiter, metrics *observability.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		v1.RequestLogger(log),
		v1.MetricsMiddleware(metrics),
		v1.CORS(cfg.CORSAllowedOrigins),
	)

	handler.RegisterSystemRoutes(router)

	api := router.Group("/api/v1")
	api.Use(limiter.Middleware())
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	publisher, closePublisher := newPublisher(cfg, redisClient, log)
	defer closePublisher()

	// Воркер вебхуков читает очередь Redis, поэтому нужен только для этого бэкенда
	var workerDone <-chan struct{}
	if cfg.EventsBackend == config.EventsBackendRedis && cfg.WebhookURL != "" {
		workerDone = webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.CacheTTL)
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, publisher, metrics, clock)
	handler := v1.NewHandler(incidentService, log, cfg, clock)

	limiter := v1.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, clock, metrics)
	go limiter.Cleanup(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           newRouter(cfg, log, handler, limiter, metrics),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		os.Exit(1)
	}

	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
