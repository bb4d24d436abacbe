package get_day_slots

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// WindowRepository интерфейс репозитория окон календаря
type WindowRepository interface {
	List(ctx context.Context, filter domain.WindowFilter) ([]*domain.CalendarWindow, error)
}

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	ListActiveInRange(ctx context.Context, fieldID *int64, tr domain.TimeRange) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
