package window

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldReservationService/pkg/psqlbuilder"
)

const pqForeignKeyViolation = "23503"

var columns = []string{
	"id",
	"field_id",
	"kind",
	"start_date",
	"end_date",
	"title",
	"description",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает окна по фильтру, отсортированные по началу.
// При заданном FieldID возвращаются и глобальные окна (field_id IS NULL).
// Range отбирает окна, пересекающиеся с [Start, End)
func (r *Repository) List(ctx context.Context, filter domain.WindowFilter) ([]*domain.CalendarWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("calendar_windows").
		OrderBy("start_date ASC", "id ASC")

	if filter.FieldID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"field_id": *filter.FieldID},
			squirrel.Eq{"field_id": nil},
		})
	}
	if filter.Range != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_date": filter.Range.End}).
			Where(squirrel.Gt{"end_date": filter.Range.Start})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.CalendarWindow, 0)
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// GetByID получает окно по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarWindow, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate получает окно по ID с блокировкой строки.
// Вызывать внутри транзакции: конкурирующие вставки бронирований с FOR SHARE подождут
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.CalendarWindow, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repository) get(ctx context.Context, id int64, lock string) (*domain.CalendarWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("calendar_windows").
		Where(squirrel.Eq{"id": id})

	if lock != "" {
		selectBuilder = selectBuilder.Suffix(lock)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	w, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	return w, nil
}

// Create создает окно календаря
func (r *Repository) Create(ctx context.Context, w *domain.CalendarWindow) (*domain.CalendarWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_windows").
		Columns(
			"field_id",
			"kind",
			"start_date",
			"end_date",
			"title",
			"description",
			"created_by",
		).
		Values(
			w.FieldID,
			w.Kind,
			w.StartDate,
			w.EndDate,
			w.Title,
			w.Description,
			w.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return w, nil
}

// Update обновляет изменяемые поля окна
func (r *Repository) Update(ctx context.Context, w *domain.CalendarWindow) (*domain.CalendarWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_windows").
		Set("field_id", w.FieldID).
		Set("kind", w.Kind).
		Set("start_date", w.StartDate).
		Set("end_date", w.EndDate).
		Set("title", w.Title).
		Set("description", w.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": w.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update", err)
	}

	return updated, nil
}

// Delete удаляет окно. Ссылки из бронирований обнуляются (ON DELETE SET NULL),
// проверку активных бронирований делает сервис календаря
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// Count возвращает общее количество окон календаря
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("calendar_windows").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return ErrFieldNotFound
	}
	return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.CalendarWindow, error) {
	var w domain.CalendarWindow

	err := row.Scan(
		&w.ID,
		&w.FieldID,
		&w.Kind,
		&w.StartDate,
		&w.EndDate,
		&w.Title,
		&w.Description,
		&w.CreatedBy,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &w, nil
}
