package update_window

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

type CalendarService interface {
	UpdateWindow(ctx context.Context, id int64, req *models.WindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
