package yachts

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// YachtSource источник опубликованного каталога (Postgres или датасет)
type YachtSource interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// LocationSource источник списка локаций
type LocationSource interface {
	ListLocations(ctx context.Context) ([]domain.LocationSummary, error)
}

// YachtRepository интерфейс репозитория яхт для администрирования
type YachtRepository interface {
	ListAll(ctx context.Context) ([]domain.Yacht, error)
	Create(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error)
	Update(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
