package notifier

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel подмножество *amqp.Channel, используемое публикатором
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Metrics учитывает результат публикации
type Metrics interface {
	ObserveNotification(routingKey string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
