package change_status

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) (*domain.Reservation, error)
}

// Notifier ставит в очередь уведомления о бронированиях
type Notifier interface {
	NotifyReservation(ctx context.Context, event notification.Event, res *domain.Reservation)
}

// MetricsRecorder считает переходы статусов
type MetricsRecorder interface {
	IncStatusTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
