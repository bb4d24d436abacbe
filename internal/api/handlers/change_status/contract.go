package change_status

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	changeStatus "github.com/m04kA/SMC-FieldReservationService/internal/usecase/change_status"
)

type ChangeStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
