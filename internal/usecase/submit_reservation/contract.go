package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	TryInsert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// FieldCatalog интерфейс каталога полей
type FieldCatalog interface {
	GetField(ctx context.Context, id int64) (*domain.Field, error)
}

// Notifier ставит в очередь уведомления о бронированиях
type Notifier interface {
	NotifyReservation(ctx context.Context, event notification.Event, res *domain.Reservation)
}

// MetricsRecorder считает попытки бронирования по результату
type MetricsRecorder interface {
	IncReservationSubmitted(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
