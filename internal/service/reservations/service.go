package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
)

// Service сервис чтения и администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	windowCounter   WindowCounter
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, windowCounter WindowCounter, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		windowCounter:   windowCounter,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает бронирования по фильтру (статус, поле, период)
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Delete физически удаляет бронирование из любого статуса
func (s *Service) Delete(ctx context.Context, id int64, staffID string) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted by staff=%s", id, staffID)
	return nil
}

// Stats количество бронирований по статусам и число окон календаря
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	counts, err := s.reservationRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	windows, err := s.windowCounter.Count(ctx)
	if err != nil {
		s.logger.Error("Stats: window repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - window repository error: %v", ErrInternal, err)
	}

	resp := models.FromStatusCounts(counts)
	resp.TotalWindows = windows
	return resp, nil
}
