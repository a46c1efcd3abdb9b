package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/incident_reporting/internal/config"
	"github.com/shenikar/incident_reporting/internal/events"
	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (events.IncidentEvent, []byte) {
	t.Helper()
	incident := &models.Incident{Type: "fire", Severity: models.SeverityHigh, Status: models.StatusOpen}
	event := events.NewIncidentEvent(events.TypeIncidentCreated, incident, time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC))
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, payload := testEvent(t)
	var got http.Header
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestWorker(server.URL).Deliver(context.Background(), event, payload)

	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "incident.created", got.Get(EventTypeHeader))
	assert.Equal(t, event.ID.String(), got.Get(EventIDHeader))
	assert.Equal(t, Sign(payload, "s3cret"), got.Get(SignatureHeader))
}

func TestDeliver_RetriesServerErrors(t *testing.T) {
	event, payload := testEvent(t)
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestWorker(server.URL).Deliver(context.Background(), event, payload)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	event, payload := testEvent(t)
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newTestWorker(server.URL).Deliver(context.Background(), event, payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_ClientErrorIsPermanent(t *testing.T) {
	event, payload := testEvent(t)
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	err := newTestWorker(server.URL).Deliver(context.Background(), event, payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandle_SkipsWithoutURL(t *testing.T) {
	_, payload := testEvent(t)
	worker := newTestWorker("")

	// Без URL доставка не выполняется и не паникует
	worker.handle(context.Background(), payload)
	worker.handle(context.Background(), []byte("not json"))
}

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		Sign([]byte("what do ya want for nothing?"), "Jefe"))
}
