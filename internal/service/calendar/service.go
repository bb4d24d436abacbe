package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	windowRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/window"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
)

// Service сервис окон календаря
type Service struct {
	windowRepo WindowRepository
	counter    ReservationCounter
	catalog    FieldCatalog
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	windowRepo WindowRepository,
	counter ReservationCounter,
	catalog FieldCatalog,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		windowRepo: windowRepo,
		counter:    counter,
		catalog:    catalog,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListWindows получает окна по фильтру, отсортированные по началу
func (s *Service) ListWindows(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	filter, err := parseListRequest(req)
	if err != nil {
		s.logger.Warn("ListWindows: invalid filter: %v", err)
		return nil, err
	}

	windows, err := s.windowRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListWindows: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// GetWindow получает окно по ID
func (s *Service) GetWindow(ctx context.Context, id int64) (*models.WindowResponse, error) {
	w, err := s.windowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetWindow", id, err)
	}
	return models.FromDomainWindow(w), nil
}

// CreateWindow создает окно от имени сотрудника
func (s *Service) CreateWindow(ctx context.Context, req *models.WindowRequest, staffID string) (*models.WindowResponse, error) {
	if err := validateWindowRequest(req); err != nil {
		s.logger.Warn("CreateWindow: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkField(ctx, req.FieldID); err != nil {
		return nil, err
	}

	w := req.ToDomain()
	if staffID != "" {
		w.CreatedBy = &staffID
	}

	created, err := s.windowRepo.Create(ctx, w)
	if err != nil {
		return nil, s.mapRepoError("CreateWindow", 0, err)
	}

	s.logger.Info("CreateWindow: window id=%d kind=%s created by staff=%s", created.ID, created.Kind, staffID)
	return models.FromDomainWindow(created), nil
}

// UpdateWindow заменяет изменяемые поля окна.
// Окно с pending/confirmed бронированиями нельзя перевести на другое поле или сменить его вид;
// проверка идёт под FOR UPDATE на строку окна, как в DeleteWindow
func (s *Service) UpdateWindow(ctx context.Context, id int64, req *models.WindowRequest) (*models.WindowResponse, error) {
	if err := validateWindowRequest(req); err != nil {
		s.logger.Warn("UpdateWindow: validation failed for window id=%d: %v", id, err)
		return nil, err
	}

	if err := s.checkField(ctx, req.FieldID); err != nil {
		return nil, err
	}

	w := req.ToDomain()
	w.ID = id

	var updated *domain.CalendarWindow
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем окно
		current, err := s.windowRepo.GetForUpdate(txCtx, id)
		if err != nil {
			return s.mapRepoError("UpdateWindow", id, err)
		}

		// 2. Смена поля или вида отрывает окно от его бронирований
		if detachesReservations(current, w) {
			count, err := s.counter.CountActiveByWindow(txCtx, id)
			if err != nil {
				s.logger.Error("UpdateWindow: failed to count reservations for window id=%d: %v", id, err)
				return fmt.Errorf("%w: UpdateWindow - count reservations: %v", ErrInternal, err)
			}
			if count > 0 {
				return &WindowInUseError{WindowID: id, ReservationCount: count}
			}
		}

		// 3. Обновляем
		updated, err = s.windowRepo.Update(txCtx, w)
		if err != nil {
			return s.mapRepoError("UpdateWindow", id, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrWindowInUse) {
			s.logger.Warn("UpdateWindow: %v", err)
		}
		return nil, err
	}

	s.logger.Info("UpdateWindow: window id=%d updated", id)
	return models.FromDomainWindow(updated), nil
}

// detachesReservations true, если после изменения окно может перестать покрывать
// ссылающиеся на него бронирования. Превращение окна поля в глобальное допустимо
func detachesReservations(current, next *domain.CalendarWindow) bool {
	if current.Kind != next.Kind {
		return true
	}
	if next.FieldID == nil {
		return false
	}
	return current.FieldID == nil || *current.FieldID != *next.FieldID
}

// DeleteWindow удаляет окно, если на него не ссылаются pending/confirmed бронирования.
// Проверка и удаление идут в одной транзакции под FOR UPDATE на строку окна,
// TryInsert берёт на ту же строку FOR SHARE
func (s *Service) DeleteWindow(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем окно
		if _, err := s.windowRepo.GetForUpdate(txCtx, id); err != nil {
			return s.mapRepoError("DeleteWindow", id, err)
		}

		// 2. Считаем активные бронирования
		count, err := s.counter.CountActiveByWindow(txCtx, id)
		if err != nil {
			s.logger.Error("DeleteWindow: failed to count reservations for window id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteWindow - count reservations: %v", ErrInternal, err)
		}
		if count > 0 {
			return &WindowInUseError{WindowID: id, ReservationCount: count}
		}

		// 3. Удаляем; ссылки отменённых бронирований обнулятся
		if err := s.windowRepo.Delete(txCtx, id); err != nil {
			return s.mapRepoError("DeleteWindow", id, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrWindowInUse) {
			s.logger.Warn("DeleteWindow: %v", err)
		}
		return err
	}

	s.logger.Info("DeleteWindow: window id=%d deleted", id)
	return nil
}

func (s *Service) checkField(ctx context.Context, fieldID *int64) error {
	if fieldID == nil {
		return nil
	}

	if _, err := s.catalog.GetField(ctx, *fieldID); err != nil {
		if errors.Is(err, catalog.ErrFieldNotFound) {
			s.logger.Warn("calendar: field id=%d not found", *fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("calendar: failed to get field id=%d: %v", *fieldID, err)
		return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, windowRepo.ErrWindowNotFound):
		s.logger.Warn("%s: window id=%d not found", op, id)
		return ErrWindowNotFound
	case errors.Is(err, windowRepo.ErrFieldNotFound):
		return ErrFieldNotFound
	default:
		s.logger.Error("%s: repository error for window id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
