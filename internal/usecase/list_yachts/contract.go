package list_yachts

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// YachtSource источник каталога: Postgres или статический набор данных
type YachtSource interface {
	ListYachts(ctx context.Context) ([]domain.Yacht, error)
}

// Metrics метрики выдачи каталога
type Metrics interface {
	ObserveCatalog(source string, resultSize int, activeDimensions []string)
	ObserveCatalogError(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
