// Package webhook доставляет события инцидентов на внешний HTTP-адрес.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/events"
	"github.com/sirupsen/logrus"
)

const (
	SignatureHeader = "X-Webhook-Signature"
	EventTypeHeader = "X-Event-Type"
	EventIDHeader   = "X-Event-ID"

	popTimeout = 5 * time.Second
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину, которая забирает события из очереди Redis.
// Возвращаемый канал закрывается после остановки воркера.
func (w *WebhookWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.WithField("queue", events.QueueKey).Info("Starting webhook worker")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker")
				return
			}

			// BRPOP с таймаутом, чтобы периодически проверять ctx
			result, err := w.redisClient.BRPop(ctx, popTimeout, events.QueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop incident event from Redis")
				w.pause(ctx)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.handle(ctx, []byte(result[1]))
		}
	}()
	return done
}

func (w *WebhookWorker) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(w.cfg.WebhookBaseDelay):
	}
}

func (w *WebhookWorker) handle(ctx context.Context, payload []byte) {
	var event events.IncidentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"event_type":  event.Type,
		"incident_id": event.IncidentID,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	if err := w.Deliver(ctx, event, payload); err != nil {
		log.WithError(err).Error("Failed to deliver webhook")
		return
	}
	log.Info("Webhook delivered successfully")
}

// Deliver отправляет payload с повторами по экспоненциальной задержке.
// WebhookMaxRetries - общее число попыток. Ответ 4xx не повторяется.
func (w *WebhookWorker) Deliver(ctx context.Context, event events.IncidentEvent, payload []byte) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := w.send(ctx, event, payload)
		if err != nil {
			w.logger.WithError(err).
				WithField("event_id", event.ID).
				WithField("attempt", attempt).
				Warn("Webhook attempt failed")
		}
		return err
	}

	return backoff.Retry(operation, w.newBackOff(ctx))
}

func (w *WebhookWorker) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = w.cfg.WebhookBaseDelay
	eb.Multiplier = 2
	eb.RandomizationFactor = 0
	eb.MaxElapsedTime = 0
	eb.Reset()

	retries := w.cfg.WebhookMaxRetries - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)
}

func (w *WebhookWorker) send(ctx context.Context, event events.IncidentEvent, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("create webhook request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventTypeHeader, string(event.Type))
	req.Header.Set(EventIDHeader, event.ID.String())
	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(SignatureHeader, Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return backoff.Permanent(fmt.Errorf("webhook rejected with status %d", resp.StatusCode))
	default:
		return fmt.Errorf("webhook failed with status %d", resp.StatusCode)
	}
}

// Sign возвращает hex HMAC-SHA256 подпись payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
