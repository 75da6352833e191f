package contacts

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений обратной связи
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

// Notifier публикует событие о новом сообщении
type Notifier interface {
	Publish(ctx context.Context, routingKey string, event interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
