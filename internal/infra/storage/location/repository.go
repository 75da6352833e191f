package location

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CharterService/pkg/psqlbuilder"
)

// Repository читает базы яхт (город/страна) из каталога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListLocations возвращает различные пары город/страна опубликованных яхт с количеством яхт
// Яхты без города и страны не учитываются
func (r *Repository) ListLocations(ctx context.Context) ([]domain.LocationSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(city, '') AS city",
		"COALESCE(country, '') AS country",
		"COUNT(*) AS yacht_count",
	).
		From("yachts").
		Where(squirrel.Eq{"is_published": true}).
		Where(squirrel.Or{
			squirrel.NotEq{"COALESCE(city, '')": ""},
			squirrel.NotEq{"COALESCE(country, '')": ""},
		}).
		GroupBy("1", "2").
		OrderBy("country ASC", "city ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]domain.LocationSummary, 0)
	for rows.Next() {
		var l domain.LocationSummary
		if err := rows.Scan(&l.City, &l.Country, &l.YachtCount); err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}
