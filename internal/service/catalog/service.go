package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

// Service каталог полей с кэшем поиска по ID
type Service struct {
	fieldRepo FieldRepository
	cache     *cache.Cache
	ttl       time.Duration
	logger    Logger
}

// NewService создает сервис каталога. ttl <= 0 отключает кэширование
func NewService(fieldRepo FieldRepository, ttl time.Duration, logger Logger) *Service {
	cleanup := 2 * ttl
	if ttl <= 0 {
		cleanup = time.Minute
	}
	return &Service{
		fieldRepo: fieldRepo,
		cache:     cache.New(ttl, cleanup),
		ttl:       ttl,
		logger:    logger,
	}
}

// GetField получает поле по ID. Отсутствующие поля не кэшируются
func (s *Service) GetField(ctx context.Context, id int64) (*domain.Field, error) {
	key := cacheKey(id)

	if s.ttl > 0 {
		if cached, found := s.cache.Get(key); found {
			return cached.(*domain.Field), nil
		}
	}

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetField: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetField - repository error: %v", ErrInternal, err)
	}

	if s.ttl > 0 {
		s.cache.Set(key, field, s.ttl)
	}

	return field, nil
}

// GetFieldResponse получает поле в формате ответа API
func (s *Service) GetFieldResponse(ctx context.Context, id int64) (*models.FieldResponse, error) {
	field, err := s.GetField(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainField(field), nil
}

// ListFields получает список полей
func (s *Service) ListFields(ctx context.Context, activeOnly bool) (*models.FieldListResponse, error) {
	fields, err := s.fieldRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListFields: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFields - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListFields: fetched %d fields (activeOnly=%t)", len(fields), activeOnly)
	return models.FromDomainFieldList(fields), nil
}

// CreateField создает поле от имени сотрудника
func (s *Service) CreateField(ctx context.Context, req *models.FieldRequest, staffID string) (*models.FieldResponse, error) {
	if err := validateFieldRequest(req); err != nil {
		s.logger.Warn("CreateField: validation failed: %v", err)
		return nil, err
	}

	created, err := s.fieldRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateField: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateField - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateField: field id=%d %q created by staff=%s", created.ID, created.Name, staffID)
	return models.FromDomainField(created), nil
}

// UpdateField заменяет данные поля и сбрасывает его запись в кэше
func (s *Service) UpdateField(ctx context.Context, id int64, req *models.FieldRequest) (*models.FieldResponse, error) {
	if err := validateFieldRequest(req); err != nil {
		s.logger.Warn("UpdateField: validation failed for field id=%d: %v", id, err)
		return nil, err
	}

	f := req.ToDomain()
	f.ID = id

	updated, err := s.fieldRepo.Update(ctx, f)
	if err != nil {
		return nil, s.mapWriteError("UpdateField", id, err)
	}
	s.Invalidate(id)

	s.logger.Info("UpdateField: field id=%d updated (active=%t)", id, updated.IsActive)
	return models.FromDomainField(updated), nil
}

// DeleteField удаляет поле без окон и бронирований и сбрасывает его запись в кэше
func (s *Service) DeleteField(ctx context.Context, id int64, staffID string) error {
	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		return s.mapWriteError("DeleteField", id, err)
	}
	s.Invalidate(id)

	s.logger.Info("DeleteField: field id=%d deleted by staff=%s", id, staffID)
	return nil
}

func (s *Service) mapWriteError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, fieldRepo.ErrFieldNotFound):
		s.logger.Warn("%s: field id=%d not found", op, id)
		return ErrFieldNotFound
	case errors.Is(err, fieldRepo.ErrFieldInUse):
		s.logger.Warn("%s: field id=%d is referenced by windows or reservations", op, id)
		return ErrFieldInUse
	default:
		s.logger.Error("%s: repository error for field id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// Invalidate удаляет поле из кэша
func (s *Service) Invalidate(id int64) {
	s.cache.Delete(cacheKey(id))
}

func cacheKey(id int64) string {
	return "field:" + strconv.FormatInt(id, 10)
}
