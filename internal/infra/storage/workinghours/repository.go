package workinghours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/dbmetrics"
	"github.com/elitecuts/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с переопределениями рабочих часов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает переопределение рабочих часов или обновляет флаг доступности,
// если запись с таким ключом (date, start_time, end_time) уже существует.
// Повторная установка того же окна — идемпотентная операция.
func (r *Repository) Upsert(ctx context.Context, override *domain.WorkingHoursOverride) (*domain.WorkingHoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(
			"date",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			override.Date,
			override.StartTime,
			override.EndTime,
			override.IsAvailable,
		).
		Suffix("ON CONFLICT (date, start_time, end_time) DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// ListByDate получает все переопределения рабочих часов на конкретную дату
// Пустой результат означает, что дата полностью открыта (политика по умолчанию).
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.WorkingHoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// ListClosedByDate получает только закрытые окна на конкретную дату
// Используется при проверке допустимости нового бронирования.
func (r *Repository) ListClosedByDate(ctx context.Context, date time.Time) ([]*domain.WorkingHoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"is_available": false}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// ListAll получает все переопределения рабочих часов
// Используется админ-панелью для отображения расписания.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.WorkingHoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		OrderBy("date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// DeleteBefore физически удаляет переопределения с датой строго раньше cutoff
// Используется фоновой очисткой, возвращает количество удалённых строк.
func (r *Repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Lt{"date": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanOverrides сканирует результаты запроса в слайс переопределений
func (r *Repository) scanOverrides(rows *sql.Rows) ([]*domain.WorkingHoursOverride, error) {
	overrides := make([]*domain.WorkingHoursOverride, 0)

	for rows.Next() {
		var override domain.WorkingHoursOverride
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&override.ID,
			&override.Date,
			&override.StartTime,
			&override.EndTime,
			&override.IsAvailable,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanOverrides - scan row: %v", ErrScanRow, err)
		}

		override.CreatedAt = createdAt.Time
		override.UpdatedAt = updatedAt.Time

		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}
