package mq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/civic_tracker/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	published []published
	err       error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func newTestPublisher(ch *fakeChannel) *RabbitPublisher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &RabbitPublisher{channel: ch, exchange: "civic.problems", logger: logger}
}

func TestRabbitPublisher_Publish(t *testing.T) {
	// Подготовка
	ch := &fakeChannel{}
	p := newTestPublisher(ch)
	event := models.ProblemEvent{
		Type:           models.EventTransitioned,
		ProblemID:      uuid.New(),
		Reference:      "RPT-2024-001",
		Status:         models.StatusAssigned,
		PreviousStatus: models.StatusAIProcessed,
		Priority:       models.PriorityHigh,
		Department:     "Roads Dept",
		Timestamp:      time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	// Действие
	err := p.Publish(context.Background(), event)

	// Проверки
	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "civic.problems", got.exchange)
	assert.Equal(t, "problem.transitioned", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, got.msg.DeliveryMode)

	var decoded models.ProblemEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, event, decoded)
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	p := newTestPublisher(&fakeChannel{err: errors.New("channel closed")})

	err := p.Publish(context.Background(), models.ProblemEvent{Type: models.EventCreated})

	assert.ErrorContains(t, err, "channel closed")
}

func TestRabbitPublisher_NilIsNoop(t *testing.T) {
	var p *RabbitPublisher

	assert.NoError(t, p.Publish(context.Background(), models.ProblemEvent{}))
	assert.NoError(t, p.Close())
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(ch)

	assert.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
