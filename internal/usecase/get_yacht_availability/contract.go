package get_yacht_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает активные бронирования яхты, пересекающиеся с интервалом
	GetOverlapping(ctx context.Context, yachtID int64, start, end time.Time) ([]*domain.Booking, error)
}

// YachtSource источник данных о яхтах
type YachtSource interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
