package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-CharterService/pkg/contextkeys"
)

const publishTimeout = 10 * time.Second

// Publisher публикует события в topic exchange RabbitMQ
type Publisher struct {
	ch       channel
	conn     io.Closer
	exchange string
	metrics  Metrics
	logger   Logger
	now      func() time.Time
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange string, metrics Metrics, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %q: %v", ErrConnect, exchange, err)
	}

	logger.Info("Notifier: connected, exchange=%s", exchange)

	return newPublisher(ch, conn, exchange, metrics, logger), nil
}

func newPublisher(ch channel, conn io.Closer, exchange string, metrics Metrics, logger Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		conn:     conn,
		exchange: exchange,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish отправляет событие как persistent JSON сообщение
// trace id из контекста передается в заголовке x-trace-id
func (p *Publisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrMarshal, routingKey, err)
		p.observe(routingKey, err)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    p.now(),
		Type:         routingKey,
		Headers:      amqp.Table{},
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.ch.PublishWithContext(publishCtx, p.exchange, routingKey, false, false, msg); err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
		p.observe(routingKey, err)
		return err
	}

	p.observe(routingKey, nil)
	p.logger.Info("Notifier: published %s id=%s", routingKey, msg.MessageId)
	return nil
}

func (p *Publisher) observe(routingKey string, err error) {
	if p.metrics != nil {
		p.metrics.ObserveNotification(routingKey, err)
	}
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Nop используется, когда брокер выключен в конфигурации
type Nop struct {
	logger Logger
}

// NewNop создает публикатор, который только логирует события
func NewNop(logger Logger) *Nop {
	return &Nop{logger: logger}
}

// Publish ничего не отправляет
func (n *Nop) Publish(_ context.Context, routingKey string, _ interface{}) error {
	n.logger.Info("Notifier: broker disabled, skipping %s", routingKey)
	return nil
}

// Close ничего не делает
func (n *Nop) Close() error { return nil }
