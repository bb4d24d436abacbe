package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	submitReservation "github.com/m04kA/SMC-FieldReservationService/internal/usecase/submit_reservation"
)

type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
