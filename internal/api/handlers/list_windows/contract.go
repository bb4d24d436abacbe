package list_windows

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

type CalendarService interface {
	ListWindows(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
