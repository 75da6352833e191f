package subscribers

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// SubscriberRepository интерфейс репозитория подписчиков
type SubscriberRepository interface {
	Create(ctx context.Context, email string) (*domain.Subscriber, error)
	DeleteByEmail(ctx context.Context, email string) error
	List(ctx context.Context) ([]domain.Subscriber, error)
}

// Notifier публикует событие о новой подписке
type Notifier interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
