package yacht

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CharterService/pkg/psqlbuilder"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var yachtColumns = []string{
	"id",
	"slug",
	"name",
	"description",
	"city",
	"country",
	"length_feet",
	"guest_capacity",
	"cabins",
	"price_tiers",
	"amenity_codes",
	"image_urls",
	"is_published",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога яхт
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория яхт
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListYachts возвращает опубликованные яхты в порядке каталога
func (r *Repository) ListYachts(ctx context.Context) ([]domain.Yacht, error) {
	return r.list(ctx, "ListYachts", true)
}

// ListAll возвращает все яхты, включая неопубликованные
func (r *Repository) ListAll(ctx context.Context) ([]domain.Yacht, error) {
	return r.list(ctx, "ListAll", false)
}

func (r *Repository) list(ctx context.Context, op string, onlyPublished bool) ([]domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		OrderBy("id ASC")

	if onlyPublished {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_published": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	yachts := make([]domain.Yacht, 0)
	for rows.Next() {
		y, err := scanYacht(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		yachts = append(yachts, *y)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return yachts, nil
}

// GetByID получает яхту по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(yachtColumns...).
		From("yachts").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	y, err := scanYacht(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrYachtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan yacht: %v", ErrScanRow, err)
	}

	return y, nil
}

// Create создает яхту
func (r *Repository) Create(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("yachts").
		SetMap(writeMap(y)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&y.ID, &y.CreatedAt, &y.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return y, nil
}

// Update перезаписывает редактируемые поля яхты
func (r *Repository) Update(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("yachts").
		SetMap(writeMap(y)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": y.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&y.CreatedAt, &y.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrYachtNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return y, nil
}

// Upsert создает яхту или обновляет существующую с тем же slug
// Используется импортом датасета
func (r *Repository) Upsert(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("yachts").
		SetMap(writeMap(y)).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			city = EXCLUDED.city,
			country = EXCLUDED.country,
			length_feet = EXCLUDED.length_feet,
			guest_capacity = EXCLUDED.guest_capacity,
			cabins = EXCLUDED.cabins,
			price_tiers = EXCLUDED.price_tiers,
			amenity_codes = EXCLUDED.amenity_codes,
			image_urls = EXCLUDED.image_urls,
			is_published = EXCLUDED.is_published,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&y.ID, &y.CreatedAt, &y.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return y, nil
}

// Delete удаляет яхту
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("yachts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if hasCode(err, foreignKeyViolation) {
			return ErrYachtHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrYachtNotFound
	}

	return nil
}

func writeMap(y *domain.Yacht) map[string]interface{} {
	return map[string]interface{}{
		"slug":           y.Slug,
		"name":           y.Name,
		"description":    y.Description,
		"city":           y.Location.City,
		"country":        y.Location.Country,
		"length_feet":    y.LengthFeet,
		"guest_capacity": y.GuestCapacity,
		"cabins":         y.Cabins,
		"price_tiers":    priceTiers(y.PriceTiers),
		"amenity_codes":  pq.Array(nonNil(y.AmenityCodes)),
		"image_urls":     pq.Array(nonNil(y.ImageURLs)),
		"is_published":   y.IsPublished,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanYacht(row rowScanner) (*domain.Yacht, error) {
	var y domain.Yacht
	var city, country, description sql.NullString
	var length sql.NullFloat64
	var guests, cabins sql.NullInt64
	var tiers priceTiers

	err := row.Scan(
		&y.ID,
		&y.Slug,
		&y.Name,
		&description,
		&city,
		&country,
		&length,
		&guests,
		&cabins,
		&tiers,
		pq.Array(&y.AmenityCodes),
		pq.Array(&y.ImageURLs),
		&y.IsPublished,
		&y.CreatedAt,
		&y.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Отсутствующие числовые поля в фильтрах считаются нулем
	y.Description = description.String
	y.Location = domain.Location{City: city.String, Country: country.String}
	y.LengthFeet = length.Float64
	y.GuestCapacity = int(guests.Int64)
	y.Cabins = int(cabins.Int64)
	y.PriceTiers = tiers

	return &y, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
