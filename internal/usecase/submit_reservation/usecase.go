package submit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/pkg/ptr"
)

// UseCase use case для приема заявки на бронирование
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         FieldCatalog
	notifier        Notifier
	metrics         MetricsRecorder
	opts            Options
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog FieldCatalog,
	notifier Notifier,
	metrics MetricsRecorder,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.MaxNotesLength <= 0 {
		opts.MaxNotesLength = domain.MaxNotesLength
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		notifier:        notifier,
		metrics:         metrics,
		opts:            opts,
		logger:          logger,
	}
}

// Execute проверяет заявку и атомарно занимает интервал на поле.
// Созданное бронирование всегда в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	// 1. Валидация входных данных
	tr, err := validateRequest(req, uc.opts.MaxNotesLength)
	if err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return nil, err
	}

	uc.logger.Info("SubmitReservation: field=%d, range=[%s, %s), guest=%s",
		req.FieldID, tr.Start.Format(domain.DateTimeFormat), tr.End.Format(domain.DateTimeFormat), req.GuestEmail)

	// 2. Проверяем поле в каталоге
	field, err := uc.catalog.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, catalog.ErrFieldNotFound) {
			uc.logger.Warn("SubmitReservation: field id=%d not found", req.FieldID)
			uc.metrics.IncReservationSubmitted(outcomeRejected)
			return nil, ErrUnknownResource
		}
		uc.logger.Error("SubmitReservation: failed to get field id=%d: %v", req.FieldID, err)
		uc.metrics.IncReservationSubmitted(outcomeError)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if !field.IsActive {
		uc.logger.Warn("SubmitReservation: field id=%d is not active", req.FieldID)
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return nil, ErrInactiveResource
	}

	// 3. Проверяем вместимость
	if err := validateCapacity(req, field); err != nil {
		uc.logger.Warn("SubmitReservation: %v", err)
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return nil, err
	}

	// 4. Атомарная проверка пересечений и вставка
	created, err := uc.reservationRepo.TryInsert(ctx, &domain.Reservation{
		FieldID:     req.FieldID,
		WindowID:    req.WindowID,
		UserID:      req.UserID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		StartTime:   tr.Start,
		EndTime:     tr.End,
		PlayerCount: req.PlayerCount,
		Notes:       req.Notes,
		Status:      domain.StatusPending,
	})
	if err != nil {
		return nil, uc.mapInsertError(req, err)
	}

	uc.metrics.IncReservationSubmitted(outcomeCreated)
	uc.logger.Info("SubmitReservation: reservation id=%d created for field=%d (%s)", created.ID, created.FieldID, tr.Duration())

	// 5. Уведомление гостю (не зависит от отмены запроса)
	uc.notifier.NotifyReservation(context.WithoutCancel(ctx), notification.EventReceived, created)

	return created, nil
}

func (uc *UseCase) mapInsertError(req *Request, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrConflict):
		uc.logger.Warn("SubmitReservation: slot taken on field=%d", req.FieldID)
		uc.metrics.IncReservationSubmitted(outcomeSlotTaken)
		return ErrSlotTaken
	case errors.Is(err, reservationRepo.ErrFieldNotFound):
		uc.logger.Warn("SubmitReservation: field id=%d disappeared", req.FieldID)
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return ErrUnknownResource
	case errors.Is(err, reservationRepo.ErrWindowNotFound):
		uc.logger.Warn("SubmitReservation: window id=%d not found", ptr.Value(req.WindowID))
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return ErrWindowNotFound
	case errors.Is(err, reservationRepo.ErrWindowFieldMismatch):
		uc.logger.Warn("SubmitReservation: window id=%d does not apply to field=%d", ptr.Value(req.WindowID), req.FieldID)
		uc.metrics.IncReservationSubmitted(outcomeRejected)
		return fmt.Errorf("%w: window belongs to another field", ErrValidationFailed)
	default:
		uc.logger.Error("SubmitReservation: failed to insert reservation: %v", err)
		uc.metrics.IncReservationSubmitted(outcomeError)
		return fmt.Errorf("%w: failed to insert reservation: %v", ErrInternal, err)
	}
}
