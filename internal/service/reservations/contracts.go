package reservations

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
}

// WindowCounter считает окна календаря для статистики
type WindowCounter interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
