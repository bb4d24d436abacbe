package reservation

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

const (
	pqExclusionViolation  = "23P01"
	pqForeignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"field_id",
	"window_id",
	"user_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"start_time",
	"end_time",
	"player_count",
	"notes",
	"status",
	"confirmed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db        DBExecutor
	txManager TxManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, txManager TxManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// TryInsert атомарно проверяет пересечения и создаёт бронирование в статусе pending.
//
// Порядок внутри одной транзакции:
// 1. FOR UPDATE на строку поля - писатели одного поля выстраиваются в очередь,
// писатели разных полей друг друга не блокируют
// 2. FOR SHARE на окно календаря (если указано) - окно нельзя удалить, пока идёт вставка
// 3. поиск активных бронирований с пересечением [start, end)
// 4. INSERT ... RETURNING
//
// Exclusion constraint в БД страхует ту же инварианту: его нарушение тоже ErrConflict.
func (r *Repository) TryInsert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		if err := r.lockField(ctx, res.FieldID); err != nil {
			return err
		}

		if res.WindowID != nil {
			if err := r.lockWindow(ctx, *res.WindowID, res.FieldID); err != nil {
				return err
			}
		}

		conflict, err := r.hasOverlap(ctx, res.FieldID, res.Range())
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		return r.insert(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) lockField(ctx context.Context, fieldID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("fields").
		Where(squirrel.Eq{"id": fieldID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: lockField - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFieldNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: lockField - lock field row: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) lockWindow(ctx context.Context, windowID, fieldID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("field_id").
		From("calendar_windows").
		Where(squirrel.Eq{"id": windowID}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: lockWindow - build select query: %v", ErrBuildQuery, err)
	}

	var windowField sql.NullInt64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&windowField)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrWindowNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: lockWindow - lock window row: %v", ErrExecQuery, err)
	}

	// Глобальное окно подходит любому полю
	if windowField.Valid && windowField.Int64 != fieldID {
		return ErrWindowFieldMismatch
	}

	return nil
}

func (r *Repository) hasOverlap(ctx context.Context, fieldID int64, tr domain.TimeRange) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{"field_id": fieldID, "status": activeStatuses()}).
		Where(squirrel.Lt{"start_time": tr.End}).
		Where(squirrel.Gt{"end_time": tr.Start}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: hasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: hasOverlap - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

func (r *Repository) insert(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	res.Status = domain.StatusPending
	res.ConfirmedAt = nil

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"field_id",
			"window_id",
			"user_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"start_time",
			"end_time",
			"player_count",
			"notes",
			"status",
		).
		Values(
			res.FieldID,
			res.WindowID,
			res.UserID,
			res.GuestName,
			res.GuestEmail,
			res.GuestPhone,
			res.StartTime,
			res.EndTime,
			res.PlayerCount,
			res.Notes,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqExclusionViolation:
				return ErrConflict
			case pqForeignKeyViolation:
				if strings.Contains(pqErr.Constraint, "window") {
					return ErrWindowNotFound
				}
				return ErrFieldNotFound
			}
		}
		return fmt.Errorf("%w: insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования по фильтру, отсортированные по времени начала.
// Start/End отбирают бронирования, пересекающиеся с [Start, End)
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		OrderBy("start_time ASC", "id ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.FieldID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": *filter.FieldID})
	}
	if filter.Start != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.Start})
	}
	if filter.End != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.End})
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

	return scanReservations(rows)
}

// ListActiveInRange получает pending/confirmed бронирования, пересекающиеся с tr.
// fieldID == nil - по всем полям
func (r *Repository) ListActiveInRange(ctx context.Context, fieldID *int64, tr domain.TimeRange) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"start_time": tr.End}).
		Where(squirrel.Gt{"end_time": tr.Start}).
		OrderBy("start_time ASC", "id ASC")

	if fieldID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": *fieldID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus меняет статус с from на to (compare-and-set).
// confirmed_at проставляется при переходе в confirmed и не сбрасывается при отмене.
// Пересечения не перепроверяются: pending уже держит свой интервал.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + joinColumns())

	if to == domain.StatusConfirmed {
		updateBuilder = updateBuilder.Set("confirmed_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// Строки нет либо статус уже другой
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStatusChanged
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Delete удаляет бронирование (административная операция, мимо жизненного цикла статусов)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// CountActiveByWindow считает pending/confirmed бронирования, ссылающиеся на окно
func (r *Repository) CountActiveByWindow(ctx context.Context, windowID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"window_id": windowID, "status": activeStatuses()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByWindow - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByWindow - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus возвращает количество бронирований в каждом статусе
func (r *Repository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("reservations").
		GroupBy("status").
		OrderBy("status ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.StatusCount, 0, len(domain.ActiveStatuses)+1)
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation

	err := row.Scan(
		&res.ID,
		&res.FieldID,
		&res.WindowID,
		&res.UserID,
		&res.GuestName,
		&res.GuestEmail,
		&res.GuestPhone,
		&res.StartTime,
		&res.EndTime,
		&res.PlayerCount,
		&res.Notes,
		&res.Status,
		&res.ConfirmedAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
