package change_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
)

// UseCase use case для смены статуса бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, notifier Notifier, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит бронирование в новый статус по графу переходов.
// Обновление выполняется как compare-and-set по текущему статусу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	// 1. Проверяем целевой статус
	target, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		uc.logger.Warn("ChangeStatus: invalid status %q for reservation id=%d", req.Status, req.ReservationID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// 2. Загружаем бронирование
	current, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ChangeStatus: reservation id=%d not found", req.ReservationID)
			return nil, ErrNotFound
		}
		uc.logger.Error("ChangeStatus: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Проверяем допустимость перехода
	if err := domain.ValidateTransition(current.Status, target); err != nil {
		uc.logger.Warn("ChangeStatus: reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}

	// 4. Compare-and-set; проигранная гонка означает, что переход уже недопустим
	updated, err := uc.reservationRepo.UpdateStatus(ctx, req.ReservationID, current.Status, target)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			uc.logger.Warn("ChangeStatus: reservation id=%d deleted concurrently", req.ReservationID)
			return nil, ErrNotFound
		case errors.Is(err, reservationRepo.ErrStatusChanged):
			uc.logger.Warn("ChangeStatus: reservation id=%d status changed concurrently", req.ReservationID)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		default:
			uc.logger.Error("ChangeStatus: failed to update reservation id=%d: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncStatusTransition(string(current.Status), string(target))
	uc.logger.Info("ChangeStatus: reservation id=%d %s -> %s by staff=%s",
		req.ReservationID, current.Status, target, req.StaffID)
	if current.Status.IsActive() && !target.IsActive() {
		uc.logger.Info("ChangeStatus: slot [%s, %s) on field=%d released",
			updated.StartTime.Format(domain.DateTimeFormat), updated.EndTime.Format(domain.DateTimeFormat), updated.FieldID)
	}

	// 5. Уведомление гостю
	if event, ok := notification.EventForStatus(target); ok {
		uc.notifier.NotifyReservation(context.WithoutCancel(ctx), event, updated)
	}

	return updated, nil
}
