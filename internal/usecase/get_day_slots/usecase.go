package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/ptr"
)

// UseCase use case для получения занятости поля за день
type UseCase struct {
	windowRepo      WindowRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case; location - тайм-зона по умолчанию
func NewUseCase(
	windowRepo WindowRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		windowRepo:      windowRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		location:        location,
		logger:          logger,
	}
}

// Execute возвращает открытые окна и занятые интервалы за день.
// Оба чтения выполняются в одном снимке данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Границы дня
	day, err := resolveDay(req, uc.location)
	if err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetDaySlots: date=%s, field=%d, tz=%s",
		req.Date, ptr.Value(req.FieldID), day.Start.Location())

	var (
		windows      []*domain.CalendarWindow
		reservations []*domain.Reservation
	)

	// 2. Читаем окна и бронирования в read-only транзакции
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		kind := domain.WindowAvailable

		var err error
		windows, err = uc.windowRepo.List(txCtx, domain.WindowFilter{
			FieldID: req.FieldID,
			Range:   &day,
			Kind:    &kind,
		})
		if err != nil {
			return fmt.Errorf("failed to list windows: %w", err)
		}

		reservations, err = uc.reservationRepo.ListActiveInRange(txCtx, req.FieldID, day)
		if err != nil {
			return fmt.Errorf("failed to list reservations: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		Date:             day.Start.Format(domain.DateFormat),
		FieldID:          req.FieldID,
		Day:              day,
		OpenWindows:      windows,
		HeldReservations: reservations,
	}, nil
}
