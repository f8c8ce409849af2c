package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var serviceColumns = []string{
	"id",
	"name",
	"price_rub",
	"duration_min",
	"duration_max",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	query, args, err := psqlbuilder.Insert(domain.ServicesTable).
		Columns("id", "name", "price_rub", "duration_min", "duration_max").
		Values(service.ID, service.Name, service.PriceRub, service.DurationMin, service.DurationMax).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateService, service.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(domain.ServicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// List возвращает все услуги в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(domain.ServicesTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Count возвращает количество услуг в каталоге
func (r *Repository) Count(ctx context.Context) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(domain.ServicesTable).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет поля услуги
func (r *Repository) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	query, args, err := psqlbuilder.Update(domain.ServicesTable).
		Set("name", service.Name).
		Set("price_rub", service.PriceRub).
		Set("duration_min", service.DurationMin).
		Set("duration_max", service.DurationMax).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// Delete удаляет услугу
// Уже созданные бронирования хранят копию названия и длительности, поэтому не затрагиваются
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(domain.ServicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.PriceRub,
		&service.DurationMin,
		&service.DurationMax,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return &service, nil
}
