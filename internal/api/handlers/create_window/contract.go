package create_window

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

type CalendarService interface {
	CreateWindow(ctx context.Context, req *models.WindowRequest, staffID string) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
