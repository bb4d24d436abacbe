package catalog

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Field, error)
	Create(ctx context.Context, f *domain.Field) (*domain.Field, error)
	Update(ctx context.Context, f *domain.Field) (*domain.Field, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
