package calendar

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// WindowRepository интерфейс репозитория окон календаря
type WindowRepository interface {
	List(ctx context.Context, filter domain.WindowFilter) ([]*domain.CalendarWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.CalendarWindow, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.CalendarWindow, error)
	Create(ctx context.Context, w *domain.CalendarWindow) (*domain.CalendarWindow, error)
	Update(ctx context.Context, w *domain.CalendarWindow) (*domain.CalendarWindow, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationCounter считает активные бронирования окна
type ReservationCounter interface {
	CountActiveByWindow(ctx context.Context, windowID int64) (int, error)
}

// FieldCatalog поиск поля в каталоге
type FieldCatalog interface {
	GetField(ctx context.Context, id int64) (*domain.Field, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
