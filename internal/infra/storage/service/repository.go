package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const (
	servicesTable = "services"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
	uniqueViolation = "23505"
)

var serviceColumns = []string{
	"id",
	"company_id",
	"name",
	"category",
	"duration_minutes",
	"price",
	"description",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает активную услугу
// Если в контексте передана активная транзакция, использует её.
// Если у компании уже есть активная услуга с таким же названием (без учета регистра и пробелов
// по краям), возвращает ErrDuplicateService
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(servicesTable).
		Columns(
			"company_id",
			"name",
			"category",
			"duration_minutes",
			"price",
			"description",
			"is_active",
		).
		Values(
			service.CompanyID,
			service.Name,
			service.Category,
			service.DurationMinutes,
			service.Price,
			service.Description,
			true,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&createdAt,
		&updatedAt,
	)

	// ON CONFLICT DO NOTHING не возвращает строк
	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateService, service.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.IsActive = true
	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// ListActiveNames возвращает названия активных услуг компании
// Удаленные (неактивные) услуги не мешают повторному импорту того же названия
func (r *Repository) ListActiveNames(ctx context.Context, companyID int64) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name").
		From(servicesTable).
		Where(squirrel.Eq{"company_id": companyID, "is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveNames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveNames - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: ListActiveNames - scan row: %v", ErrScanRow, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveNames - rows error: %v", ErrScanRow, err)
	}

	return names, nil
}

// GetByIDs получает активные услуги компании по списку ID
// Если хотя бы одна услуга не найдена, возвращает ErrServiceNotFound
func (r *Repository) GetByIDs(ctx context.Context, companyID int64, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"company_id": companyID, "is_active": true, "id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var (
			service              domain.Service
			category, desc       sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&service.ID,
			&service.CompanyID,
			&service.Name,
			&category,
			&service.DurationMinutes,
			&service.Price,
			&desc,
			&service.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}

		service.Category = nullStringPtr(category)
		service.Description = nullStringPtr(desc)
		service.CreatedAt = createdAt.Time
		service.UpdatedAt = updatedAt.Time

		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	if missing := missingIDs(ids, services); len(missing) > 0 {
		return nil, fmt.Errorf("%w: ids %v", ErrServiceNotFound, missing)
	}

	return services, nil
}

// missingIDs возвращает запрошенные ID, которых нет среди найденных услуг
func missingIDs(requested []int64, found []*domain.Service) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, s := range found {
		present[s.ID] = struct{}{}
	}

	missing := make([]int64, 0)
	seen := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
