package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting/internal/models"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func testEvent() IncidentEvent {
	at := time.Date(2024, time.May, 10, 10, 0, 0, 0, time.UTC)
	incident := &models.Incident{
		ID:       uuid.MustParse("6f1c2a7e-8a3b-4c7d-9e2f-1a2b3c4d5e6f"),
		Type:     "fire",
		Severity: models.SeverityHigh,
		Status:   models.StatusOpen,
	}
	return NewIncidentEvent(TypeIncidentCreated, incident, at)
}

func TestSerializeToMessage(t *testing.T) {
	event := testEvent()

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("6f1c2a7e-8a3b-4c7d-9e2f-1a2b3c4d5e6f"), msg.Key)
	assert.Contains(t, string(msg.Value), `"type":"incident.created"`)
	assert.Contains(t, string(msg.Value), `"incident_id":"6f1c2a7e-8a3b-4c7d-9e2f-1a2b3c4d5e6f"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("incident.created"), msg.Headers[0].Value)
	assert.Equal(t, "occurred_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2024-05-10T10:00:00Z"), msg.Headers[1].Value)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.Len(t, w.msgs, 1)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.ErrorContains(t, err, "broker down")
}

func TestNewIncidentEvent(t *testing.T) {
	event := testEvent()

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, event.Incident.ID, event.IncidentID)
	assert.Equal(t, time.UTC, event.Timestamp.Location())
}
