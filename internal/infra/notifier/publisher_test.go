package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/pkg/contextkeys"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error { c.closed = true; return nil }

type fakeMetrics struct {
	ok, failed int
}

func (m *fakeMetrics) ObserveNotification(_ string, err error) {
	if err != nil {
		m.failed++
		return
	}
	m.ok++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	m := &fakeMetrics{}
	p := newPublisher(ch, nil, "charter.events", m, nopLogger{})
	p.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	err := p.Publish(ctx, RoutingSubscriberCreated, SubscriberEvent{Email: "a@b.co"})
	require.NoError(t, err)

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "charter.events", sent.exchange)
	assert.Equal(t, RoutingSubscriberCreated, sent.key)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, "trace-1", sent.msg.Headers["x-trace-id"])
	assert.NotEmpty(t, sent.msg.MessageId)

	var body SubscriberEvent
	require.NoError(t, json.Unmarshal(sent.msg.Body, &body))
	assert.Equal(t, "a@b.co", body.Email)
	assert.Equal(t, 1, m.ok)
}

func TestPublisher_PublishError(t *testing.T) {
	m := &fakeMetrics{}
	p := newPublisher(&fakeChannel{err: errors.New("channel closed")}, nil, "x", m, nopLogger{})

	err := p.Publish(context.Background(), RoutingContactCreated, ContactEvent{ID: 1})
	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, 1, m.failed)
}

func TestPublisher_MarshalError(t *testing.T) {
	p := newPublisher(&fakeChannel{}, nil, "x", nil, nopLogger{})

	err := p.Publish(context.Background(), RoutingContactCreated, func() {})
	assert.ErrorIs(t, err, ErrMarshal)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, nil, "x", nil, nopLogger{})

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNop(t *testing.T) {
	n := NewNop(nopLogger{})
	assert.NoError(t, n.Publish(context.Background(), RoutingBookingCreated, BookingEvent{}))
	assert.NoError(t, n.Close())
}
